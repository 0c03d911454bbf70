package htmlfix

import (
	"fmt"
	"regexp"
	"strings"
)

// FixHomeLinksTree rewrites absolute links to the old WordPress home
// page (`href="https://www.<domain>/"`) into a relative home link
// appropriate for each file's depth: "./" at the root, "../../" two
// directories down, and so on.
func FixHomeLinksTree(root string, domain string) ([]string, error) {
	if domain == "" {
		return nil, fmt.Errorf("htmlfix: no domain given for home-link fixing")
	}

	homePattern := regexp.MustCompile(`href="https?://(www\.)?` + regexp.QuoteMeta(domain) + `/"`)

	return RewriteTree(root, func(relativePath string, content string) string {
		home := "."
		if depth := depthOf(relativePath); depth > 0 {
			home = strings.TrimSuffix(strings.Repeat("../", depth), "/")
		}
		return homePattern.ReplaceAllString(content, `href="`+home+`/"`)
	})
}
