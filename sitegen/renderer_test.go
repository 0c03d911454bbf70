package sitegen

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darobbins85/wordpress-static/wxr"
)

func demoExport() *wxr.Export {
	return &wxr.Export{
		Site: wxr.Site{
			Title:       "Demo",
			URL:         "https://demo.example.com",
			Description: "Just a demo",
		},
		Pages: []wxr.ContentItem{
			{
				Title:   "About Us",
				Slug:    "about-us",
				Author:  "alice",
				Content: "<p>We are a demo.</p>",
				Excerpt: "A short excerpt.",
				Date:    "Mon, 01 Jan 2024 10:00:00 +0000",
				Status:  "publish",
				Type:    "page",
			},
			{
				Title:  "Hidden",
				Slug:   "hidden",
				Author: "alice",
				Status: "draft",
				Type:   "page",
			},
		},
		Posts: []wxr.ContentItem{
			{
				Title:   "Hello World",
				Slug:    "hello-world",
				Author:  "bob",
				Content: "<p>First!</p>",
				Date:    "Tue, 02 Jan 2024 10:00:00 +0000",
				Status:  "publish",
				Type:    "post",
			},
		},
		Attachments: []wxr.Attachment{
			{Title: "photo", URL: "https://demo.example.com/photo.jpg", Filename: "photo.jpg"},
		},
	}
}

func renderDemo(t *testing.T) (string, *Summary) {
	t.Helper()

	store := t.TempDir()
	renderer := &Renderer{StorePath: store}
	summary, err := renderer.RenderSite(demoExport())
	require.NoError(t, err)

	return store, summary
}

func TestRenderSiteLayout(t *testing.T) {
	store, summary := renderDemo(t)

	assert.Equal(t, 1, summary.PublishedPages)
	assert.Equal(t, 1, summary.PublishedPosts)
	assert.Equal(t, 1, summary.Attachments)

	for _, expected := range []string{
		"index.html",
		"site-data.json",
		"attachments.json",
		filepath.Join("css", "style.css"),
		filepath.Join("pages", "about-us.html"),
		filepath.Join("posts", "hello-world.html"),
	} {
		_, err := os.Stat(filepath.Join(store, expected))
		assert.NoError(t, err, "expected %s to exist", expected)
	}

	// assets dir exists for the downloader to fill in later
	info, err := os.Stat(filepath.Join(store, "assets"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRenderOnlyPublishedItems(t *testing.T) {
	store, _ := renderDemo(t)

	entries, err := os.ReadDir(filepath.Join(store, "pages"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "draft pages must not be rendered")
	assert.Equal(t, "about-us.html", entries[0].Name())
}

func TestRenderPageContents(t *testing.T) {
	store, _ := renderDemo(t)

	page, err := os.ReadFile(filepath.Join(store, "pages", "about-us.html"))
	require.NoError(t, err)

	assert.Contains(t, string(page), "<h1>About Us</h1>")
	assert.Contains(t, string(page), "<p>We are a demo.</p>", "body HTML is emitted verbatim")
	assert.Contains(t, string(page), "Published: Mon, 01 Jan 2024 10:00:00 +0000")
	assert.Contains(t, string(page), `<title>About Us - Demo</title>`)
}

func TestRenderIndexContents(t *testing.T) {
	store, _ := renderDemo(t)

	index, err := os.ReadFile(filepath.Join(store, "index.html"))
	require.NoError(t, err)

	assert.Contains(t, string(index), `href="/pages/about-us.html"`)
	assert.Contains(t, string(index), "About Us")
	assert.Contains(t, string(index), `href="/posts/hello-world.html"`)
	assert.Contains(t, string(index), "Welcome to Demo")
	assert.NotContains(t, string(index), "Hidden", "draft items must not appear on the index")
	assert.Contains(t, string(index), "Read more...", "empty excerpts fall back to a placeholder")
}

func TestSiteDataRoundTrip(t *testing.T) {
	store, _ := renderDemo(t)

	source, err := os.ReadFile(filepath.Join(store, "site-data.json"))
	require.NoError(t, err)

	var reread wxr.Export
	require.NoError(t, json.Unmarshal(source, &reread))
	assert.Equal(t, demoExport(), &reread)
}

func TestAttachmentsArtifact(t *testing.T) {
	store, _ := renderDemo(t)

	source, err := os.ReadFile(filepath.Join(store, "attachments.json"))
	require.NoError(t, err)

	var attachments []wxr.Attachment
	require.NoError(t, json.Unmarshal(source, &attachments))
	require.Len(t, attachments, 1)
	assert.Equal(t, "photo.jpg", attachments[0].Filename)
	assert.Equal(t, "https://demo.example.com/photo.jpg", attachments[0].URL)
}

func TestDuplicateSlugOverwrites(t *testing.T) {
	export := demoExport()
	export.Pages = append(export.Pages, wxr.ContentItem{
		Title:   "About Us Again",
		Slug:    "about-us",
		Content: "<p>Second version.</p>",
		Status:  "publish",
		Type:    "page",
	})

	store := t.TempDir()
	renderer := &Renderer{StorePath: store}
	_, err := renderer.RenderSite(export)
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(store, "pages", "about-us.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "Second version", "later item wins on slug collision")
}

func TestPruneRemovesStaleFiles(t *testing.T) {
	store := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(store, "pages"), 0750))
	stale := filepath.Join(store, "pages", "gone.html")
	require.NoError(t, os.WriteFile(stale, []byte("<html></html>"), 0644))

	renderer := &Renderer{StorePath: store, Prune: true}
	summary, err := renderer.RenderSite(demoExport())
	require.NoError(t, err)

	assert.Equal(t, []string{"pages/gone.html"}, summary.Pruned)
	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))

	// the freshly rendered page survives
	_, err = os.Stat(filepath.Join(store, "pages", "about-us.html"))
	assert.NoError(t, err)
}

func TestExcerptPreview(t *testing.T) {
	assert.Equal(t, "Read more...", excerptPreview(""))
	assert.Equal(t, "short", excerptPreview("short"))

	long := strings.Repeat("ab", 200)
	assert.Equal(t, 150, len([]rune(excerptPreview(long))))
	assert.Equal(t, long[:150], excerptPreview(long))

	// multi-byte text is cut between runes, never through one
	wide := strings.Repeat("日", 200)
	cut := excerptPreview(wide)
	assert.Equal(t, 150, len([]rune(cut)))
	assert.Equal(t, strings.Repeat("日", 150), cut)
}
