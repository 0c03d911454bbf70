package sitegen

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/darobbins85/wordpress-static/wxr"
)

// The navigation is deliberately fixed; it is not derived from the
// parsed content.
type navLink struct {
	Href  string
	Label string
}

var defaultNav = []navLink{
	{"/", "Home"},
	{"/pages/about.html", "About"},
	{"/pages/contact.html", "Contact"},
}

type layoutData struct {
	Title   string
	Site    wxr.Site
	Nav     []navLink
	Content template.HTML
}

type articleData struct {
	Title string
	Date  string
	Body  template.HTML
}

type card struct {
	Href    string
	Title   string
	Date    string
	Excerpt template.HTML
}

type indexData struct {
	Site      wxr.Site
	HavePages bool
	HavePosts bool
	PageCards []card
	PostCards []card
}

var layoutTmpl = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - {{.Site.Title}}</title>
    <link rel="stylesheet" href="/css/style.css">
</head>
<body>
    <header>
        <div class="container">
            <h1>{{.Site.Title}}</h1>
            <p>{{.Site.Description}}</p>
        </div>
    </header>

    <nav>
        <ul>
{{- range .Nav}}
            <li><a href="{{.Href}}">{{.Label}}</a></li>
{{- end}}
        </ul>
    </nav>

    <main>
        <div class="container">
{{.Content}}
        </div>
    </main>

    <footer>
        <div class="container">
            <p>&copy; 2024 {{.Site.Title}}. All rights reserved.</p>
        </div>
    </footer>
</body>
</html>
`))

var articleTmpl = template.Must(template.New("article").Parse(`            <article>
                <h1>{{.Title}}</h1>
                <div class="meta">Published: {{.Date}}</div>
                <div class="content">
{{.Body}}
                </div>
            </article>`))

var indexTmpl = template.Must(template.New("index").Parse(`            <article>
                <h1>Welcome to {{.Site.Title}}</h1>
{{- if .HavePages}}
                <h2>Pages</h2>
                <div class="page-list">
{{- range .PageCards}}
                    <div class="page-card">
                        <h3><a href="{{.Href}}">{{.Title}}</a></h3>
                        <p>{{.Excerpt}}</p>
                    </div>
{{- end}}
                </div>
{{- end}}
{{- if .HavePosts}}
                <h2>Recent Posts</h2>
                <div class="page-list">
{{- range .PostCards}}
                    <div class="page-card">
                        <h3><a href="{{.Href}}">{{.Title}}</a></h3>
                        <p class="meta">{{.Date}}</p>
                        <p>{{.Excerpt}}</p>
                    </div>
{{- end}}
                </div>
{{- end}}
            </article>`))

func renderLayout(title string, site wxr.Site, content string) ([]byte, error) {
	var buf bytes.Buffer
	err := layoutTmpl.Execute(&buf, layoutData{
		Title:   title,
		Site:    site,
		Nav:     defaultNav,
		Content: template.HTML(content),
	})
	if err != nil {
		return nil, fmt.Errorf("sitegen: couldn't render layout for %q: %w", title, err)
	}

	return buf.Bytes(), nil
}
