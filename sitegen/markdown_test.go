package sitegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darobbins85/wordpress-static/wxr"
)

func TestConvertToMarkdown(t *testing.T) {
	site := wxr.Site{Title: "Demo", URL: "https://demo.example.com"}
	item := wxr.ContentItem{
		Title:   "About Us",
		Slug:    "about-us",
		Author:  "alice",
		Content: `<p>We are <strong>bold</strong>. See <a href="/pages/contact.html">contact</a>.</p>`,
		Status:  "publish",
		Type:    "page",
	}

	markdown, err := convertToMarkdown(site, item)
	require.NoError(t, err)

	assert.True(t, len(markdown) > 0 && markdown[0] == '-', "starts with front matter fence")
	assert.Contains(t, markdown, "title: About Us")
	assert.Contains(t, markdown, "slug: about-us")
	assert.Contains(t, markdown, "author: alice")
	assert.Contains(t, markdown, "**bold**")
	// relative links are resolved against the site URL
	assert.Contains(t, markdown, "https://demo.example.com/pages/contact.html")
}

func TestRenderSiteWritesMarkdownMirror(t *testing.T) {
	store := t.TempDir()
	renderer := &Renderer{StorePath: store, WriteMarkdown: true}
	_, err := renderer.RenderSite(demoExport())
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(store, "markdown", "pages", "about-us.md"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "title: About Us")
	assert.Contains(t, string(page), "We are a demo.")

	post, err := os.ReadFile(filepath.Join(store, "markdown", "posts", "hello-world.md"))
	require.NoError(t, err)
	assert.Contains(t, string(post), "title: Hello World")

	// draft items don't get a mirror either
	_, err = os.Stat(filepath.Join(store, "markdown", "pages", "hidden.md"))
	assert.True(t, os.IsNotExist(err))
}
