package wxr

import (
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/url"
	"os"
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugCollapse = regexp.MustCompile(`[\s-]+`)
)

// Slugify derives a URL-safe identifier from a title: lower-case, strip
// everything that isn't a letter, digit, space or hyphen, collapse runs
// of whitespace and hyphens, trim hyphens off the ends.
func Slugify(title string) string {
	str := strings.ToLower(title)
	str = slugStrip.ReplaceAllString(str, "")
	str = slugCollapse.ReplaceAllString(str, "-")

	return strings.Trim(str, "-")
}

// ParseFile reads a WXR export document from disk.
func ParseFile(path string) (*Export, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wxr: couldn't open export file %s: %w", path, err)
	}
	defer f.Close()

	export, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("wxr: couldn't parse %s: %w", path, err)
	}

	return export, nil
}

// Parse decodes a WXR document and builds the in-memory model.  Items
// whose wp:post_type is not page, post or attachment are dropped.
// Malformed XML or a document without a channel element is fatal; a
// missing field on an individual item falls back to its documented
// default.
func Parse(r io.Reader) (*Export, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("wxr: malformed export document: %w", err)
	}

	if doc.Channel == nil {
		return nil, fmt.Errorf("wxr: export document has no channel element")
	}

	export := &Export{
		Site: Site{
			Title:       doc.Channel.Title,
			URL:         doc.Channel.Link,
			Description: doc.Channel.Description,
		},
		Pages:       []ContentItem{},
		Posts:       []ContentItem{},
		Attachments: []Attachment{},
	}

	for _, it := range doc.Channel.Items {
		switch it.PostType {
		case "page":
			export.Pages = append(export.Pages, parseContentItem(it, "page"))
		case "post":
			export.Posts = append(export.Posts, parseContentItem(it, "post"))
		case "attachment":
			export.Attachments = append(export.Attachments, parseAttachment(it))
		}
	}

	return export, nil
}

func parseContentItem(it item, itemType string) ContentItem {
	title := it.Title
	if title == "" {
		title = "Untitled"
	}
	title = html.UnescapeString(title)

	author := it.Creator
	if author == "" {
		author = "Unknown"
	}

	slug := it.PostName
	if slug == "" {
		slug = Slugify(title)
	}

	status := it.Status
	if status == "" {
		status = "draft"
	}

	return ContentItem{
		Title:   title,
		Slug:    slug,
		Link:    it.Link,
		Author:  author,
		Content: it.Content,
		Excerpt: it.Excerpt,
		Date:    it.PubDate,
		Status:  status,
		Type:    itemType,
	}
}

func parseAttachment(it item) Attachment {
	title := it.Title
	if title == "" {
		title = "Untitled"
	}

	return Attachment{
		Title:    html.UnescapeString(title),
		URL:      it.AttachmentURL,
		Filename: filenameFromURL(it.AttachmentURL),
	}
}

// filenameFromURL takes the basename of the URL's path component; the
// query string is discarded.  A URL without a usable path yields "".
func filenameFromURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	p := u.Path
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}

	return p
}
