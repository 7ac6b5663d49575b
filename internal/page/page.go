// Package page holds the site's presentation components. Each component
// renders a fixed markup fragment from literal data declared next to it.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Component is a stateless page that renders to a markup fragment.
type Component interface {
	// Slug identifies the page in URLs and navigation.
	Slug() string
	// Title is the navigation label.
	Title() string
	// Render returns the page body, without any document wrapper.
	Render() (template.HTML, error)
}

// mustParse parses one embedded template. It panics at init if the file is
// missing or malformed.
func mustParse(name string) *template.Template {
	return template.Must(template.New(name).ParseFS(templateFS, "templates/"+name))
}

func execute(t *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute %s: %w", t.Name(), err)
	}
	return template.HTML(buf.String()), nil
}
