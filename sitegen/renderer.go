// Package sitegen renders a parsed WordPress export into a static HTML
// site: one file per published page or post, a card-style index page, a
// fixed stylesheet, and the JSON artifacts the media downloader and any
// later inspection consume.
package sitegen

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/darobbins85/wordpress-static/wxr"
)

const excerptPreviewLength = 150

type Renderer struct {
	// Root of the output tree, e.g. "site".
	StorePath string

	// Also write a Markdown mirror of every rendered item.
	WriteMarkdown bool

	// Delete generated HTML files that this run didn't produce.
	Prune bool

	Logger *log.Logger

	// relative paths written during this run, for pruning
	freshFiles map[string]bool
}

type Summary struct {
	PublishedPages int
	PublishedPosts int
	Attachments    int
	Pruned         []string
}

// RenderSite writes the whole output tree.  All writes are plain
// overwrites; re-running on the same export produces the same files.
func (r *Renderer) RenderSite(export *wxr.Export) (*Summary, error) {
	r.freshFiles = map[string]bool{}

	for _, dir := range []string{"", "pages", "posts", "assets", "css"} {
		if err := os.MkdirAll(filepath.Join(r.StorePath, dir), 0750); err != nil {
			return nil, fmt.Errorf("sitegen: couldn't create directory %s: %w", dir, err)
		}
	}

	if err := writeJSON(filepath.Join(r.StorePath, "site-data.json"), export); err != nil {
		return nil, err
	}

	if err := r.writeIntoStore(path.Join("css", "style.css"), []byte(stylesheet)); err != nil {
		return nil, err
	}

	summary := &Summary{Attachments: len(export.Attachments)}
	seenSlugs := map[string]string{}

	for _, page := range export.Pages {
		if page.Status != "publish" {
			continue
		}
		if err := r.renderItem(export.Site, page, "pages", seenSlugs); err != nil {
			return nil, err
		}
		summary.PublishedPages++
	}

	for _, post := range export.Posts {
		if post.Status != "publish" {
			continue
		}
		if err := r.renderItem(export.Site, post, "posts", seenSlugs); err != nil {
			return nil, err
		}
		summary.PublishedPosts++
	}

	if err := r.renderIndex(export); err != nil {
		return nil, err
	}

	if err := writeJSON(filepath.Join(r.StorePath, "attachments.json"), export.Attachments); err != nil {
		return nil, err
	}

	if r.Prune {
		pruned, err := r.pruneStaleHTML()
		if err != nil {
			return nil, err
		}
		summary.Pruned = pruned
	}

	return summary, nil
}

func (r *Renderer) renderItem(site wxr.Site, item wxr.ContentItem, subdir string, seenSlugs map[string]string) error {
	relative := path.Join(subdir, item.Slug+".html")
	if previous, ok := seenSlugs[relative]; ok {
		// inherited behavior: later items silently win, so at least say so
		fmt.Fprintf(os.Stderr, "🚨 WARNING: Duplicate slug %q: %q overwrites %q!\n", item.Slug, item.Title, previous)
	}
	seenSlugs[relative] = item.Title

	var content bytes.Buffer
	if err := articleTmpl.Execute(&content, articleData{
		Title: item.Title,
		Date:  item.Date,
		// the export is the site owner's own content, emit it verbatim
		Body: template.HTML(item.Content),
	}); err != nil {
		return fmt.Errorf("sitegen: couldn't render article %s: %w", item.Slug, err)
	}

	html, err := renderLayout(item.Title, site, content.String())
	if err != nil {
		return err
	}

	if err := r.writeIntoStore(relative, html); err != nil {
		return err
	}

	if r.WriteMarkdown {
		if err := r.writeMarkdownMirror(site, item, subdir); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) renderIndex(export *wxr.Export) error {
	data := indexData{
		Site:      export.Site,
		HavePages: len(export.Pages) > 0,
		HavePosts: len(export.Posts) > 0,
	}

	for _, page := range export.Pages {
		if page.Status != "publish" {
			continue
		}
		data.PageCards = append(data.PageCards, card{
			Href:    "/pages/" + page.Slug + ".html",
			Title:   page.Title,
			Excerpt: template.HTML(excerptPreview(page.Excerpt)),
		})
	}

	for _, post := range export.Posts {
		if post.Status != "publish" {
			continue
		}
		data.PostCards = append(data.PostCards, card{
			Href:    "/posts/" + post.Slug + ".html",
			Title:   post.Title,
			Date:    post.Date,
			Excerpt: template.HTML(excerptPreview(post.Excerpt)),
		})
	}

	var content bytes.Buffer
	if err := indexTmpl.Execute(&content, data); err != nil {
		return fmt.Errorf("sitegen: couldn't render index: %w", err)
	}

	html, err := renderLayout("Home", export.Site, content.String())
	if err != nil {
		return err
	}

	return r.writeIntoStore("index.html", html)
}

// excerptPreview cuts the excerpt to its first 150 characters.  The cut
// is by rune, so a multi-byte character is never split, but an HTML tag
// in the excerpt may be.
func excerptPreview(excerpt string) string {
	if excerpt == "" {
		return "Read more..."
	}

	runes := []rune(excerpt)
	if len(runes) > excerptPreviewLength {
		runes = runes[:excerptPreviewLength]
	}

	return string(runes)
}
