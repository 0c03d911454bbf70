package htmlfix

import (
	"regexp"
	"strings"
)

var (
	attrRefPattern = regexp.MustCompile(`(href|src)="([^"]*)"`)
	cssURLPattern  = regexp.MustCompile(`url\("([^"]*)"`)
)

// references that must never be made relative
var keepAbsolutePrefixes = []string{"http", "https", "mailto", "tel", "#"}

// RelativizeContent rewrites root-relative references (`/...`) in href,
// src and CSS url() into path-relative ones for a file `depth`
// directories below the site root.  Scheme-qualified URLs, mailto:,
// tel: and fragment references are left untouched.
func RelativizeContent(content string, depth int) string {
	prefix := ""
	if depth > 0 {
		prefix = strings.Repeat("../", depth)
	}

	rewrite := func(ref string) (string, bool) {
		rest, found := strings.CutPrefix(ref, "/")
		if !found {
			return ref, false
		}
		for _, keep := range keepAbsolutePrefixes {
			if strings.HasPrefix(rest, keep) {
				return ref, false
			}
		}
		return prefix + rest, true
	}

	content = attrRefPattern.ReplaceAllStringFunc(content, func(match string) string {
		sub := attrRefPattern.FindStringSubmatch(match)
		if value, changed := rewrite(sub[2]); changed {
			return sub[1] + `="` + value + `"`
		}
		return match
	})

	content = cssURLPattern.ReplaceAllStringFunc(content, func(match string) string {
		sub := cssURLPattern.FindStringSubmatch(match)
		if value, changed := rewrite(sub[1]); changed {
			return `url("` + value + `"`
		}
		return match
	})

	return content
}

// RelativizeTree rewrites every HTML file under root, computing each
// file's depth from its position in the tree.
func RelativizeTree(root string) ([]string, error) {
	return RewriteTree(root, func(relativePath string, content string) string {
		return RelativizeContent(content, depthOf(relativePath))
	})
}
