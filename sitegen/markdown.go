package sitegen

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	mdplugin "github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"
	"github.com/darobbins85/wordpress-static/wxr"
	"gopkg.in/yaml.v3"
)

type markdownHeader struct {
	Title  string `yaml:"title"`
	Slug   string `yaml:"slug"`
	Link   string `yaml:"link,omitempty"`
	Author string `yaml:"author"`
	Date   string `yaml:"date,omitempty"`
	Status string `yaml:"status"`
	Type   string `yaml:"type"`
}

// writeMarkdownMirror renders the item a second time, as Markdown with
// a YAML front-matter header, under markdown/<pages|posts>/<slug>.md.
// Handy for grepping the exported content with local tools.
func (r *Renderer) writeMarkdownMirror(site wxr.Site, item wxr.ContentItem, subdir string) error {
	markdown, err := convertToMarkdown(site, item)
	if err != nil {
		return err
	}

	relative := path.Join("markdown", subdir, item.Slug+".md")
	return r.writeIntoStore(relative, []byte(markdown))
}

func convertToMarkdown(site wxr.Site, item wxr.ContentItem) (string, error) {
	// md.NewConverter only accepts a hostname, not a base URI, so
	// scheme resolution happens in the GetAbsoluteURL hook.  Adapted
	// from https://github.com/JohannesKaufmann/html-to-markdown/issues/44
	siteURL, err := url.Parse(site.URL)
	if err != nil {
		siteURL = &url.URL{}
	}

	opt := &md.Options{
		GetAbsoluteURL: func(selec *goquery.Selection, rawURL string, domain string) string {
			if domain == "" {
				return rawURL
			}

			u, err := url.Parse(rawURL)
			if err != nil {
				// we can't do anything with this url because it is invalid
				return rawURL
			}

			if u.Scheme == "data" {
				// this is a data uri (for example an inline base64 image)
				return rawURL
			}

			if u.Scheme == "" {
				u.Scheme = siteURL.Scheme
			}
			if u.Host == "" {
				u.Host = domain
			}

			return u.String()
		},
	}

	converter := md.NewConverter(siteURL.Host, true, opt)
	// Github flavoured Markdown knows about tables 👍
	converter.Use(mdplugin.GitHubFlavored())

	markdown, err := converter.ConvertString(item.Content)
	if err != nil {
		return "", fmt.Errorf("sitegen: failed to convert %s to Markdown: %w", item.Slug, err)
	}

	header := markdownHeader{
		Title:  item.Title,
		Slug:   item.Slug,
		Link:   item.Link,
		Author: item.Author,
		Date:   item.Date,
		Status: item.Status,
		Type:   item.Type,
	}

	yamlHeader, err := yaml.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("sitegen: couldn't marshal header YAML: %w", err)
	}

	body := fmt.Sprintf(`---
%s
---
%s
`,
		strings.TrimSpace(string(yamlHeader)),
		markdown)

	return body, nil
}
