package htmlfix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativizeContentDepths(t *testing.T) {
	content := `<a href="/pages/x.html">x</a>`

	assert.Equal(t, `<a href="pages/x.html">x</a>`, RelativizeContent(content, 0))
	assert.Equal(t, `<a href="../pages/x.html">x</a>`, RelativizeContent(content, 1))
	assert.Equal(t, `<a href="../../../pages/x.html">x</a>`, RelativizeContent(content, 3))
}

func TestRelativizeContentLeavesAbsoluteReferences(t *testing.T) {
	for _, untouched := range []string{
		`<a href="https://external.com/page">ext</a>`,
		`<a href="http://external.com/page">ext</a>`,
		`<a href="mailto:someone@example.com">mail</a>`,
		`<a href="tel:+15551234567">call</a>`,
		`<a href="#section">jump</a>`,
		`<a href="pages/x.html">already relative</a>`,
	} {
		assert.Equal(t, untouched, RelativizeContent(untouched, 2))
	}
}

func TestRelativizeContentSrcAndCSS(t *testing.T) {
	content := `<img src="/assets/images/photo.jpg"><style>body { background: url("/assets/images/bg.png"); }</style>`
	expected := `<img src="../assets/images/photo.jpg"><style>body { background: url("../assets/images/bg.png"); }</style>`
	assert.Equal(t, expected, RelativizeContent(content, 1))
}

func TestRelativizeTree(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pages"), 0750))

	index := filepath.Join(root, "index.html")
	page := filepath.Join(root, "pages", "about.html")
	plain := filepath.Join(root, "pages", "plain.html")
	require.NoError(t, os.WriteFile(index, []byte(`<link href="/css/style.css">`), 0644))
	require.NoError(t, os.WriteFile(page, []byte(`<link href="/css/style.css">`), 0644))
	require.NoError(t, os.WriteFile(plain, []byte(`<p>nothing to do</p>`), 0644))

	changed, err := RelativizeTree(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"index.html", "pages/about.html"}, changed,
		"unchanged files are not reported or rewritten")

	rootContent, err := os.ReadFile(index)
	require.NoError(t, err)
	assert.Equal(t, `<link href="css/style.css">`, string(rootContent))

	pageContent, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Equal(t, `<link href="../css/style.css">`, string(pageContent))
}

func TestRelativizeTreeMissingRoot(t *testing.T) {
	changed, err := RelativizeTree(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, changed)
}
