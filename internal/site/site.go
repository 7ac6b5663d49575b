// Package site assembles page components into full HTML documents: it owns
// the navigation order, slug lookup and the shared layout.
package site

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"

	"mcpsite/internal/model"
	"mcpsite/internal/page"
)

//go:embed templates/layout.html
var templateFS embed.FS

// ErrPageNotFound is returned when a slug matches no page.
var ErrPageNotFound = errors.New("page not found")

// Name is the short site name used in document titles.
const Name = "MCP"

// layoutData is passed to layout.html.
type layoutData struct {
	Title   string
	Site    string
	Active  string
	Nav     []model.PageInfo
	Content template.HTML
}

// Site renders the registered pages inside the shared layout.
type Site struct {
	pages  []page.Component
	layout *template.Template
}

// New returns a Site serving Home, About and Applications, in that nav order.
func New() (*Site, error) {
	layout, err := template.New("layout.html").ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	return &Site{
		pages:  []page.Component{page.Home{}, page.About{}, page.Applications{}},
		layout: layout,
	}, nil
}

// Pages returns the navigation entries in display order.
func (s *Site) Pages() []model.PageInfo {
	out := make([]model.PageInfo, 0, len(s.pages))
	for _, p := range s.pages {
		out = append(out, model.PageInfo{Slug: p.Slug(), Title: p.Title(), Path: Path(p.Slug())})
	}
	return out
}

// Lookup selects a page by slug. The empty slug selects the first page.
func (s *Site) Lookup(slug string) (page.Component, bool) {
	if slug == "" && len(s.pages) > 0 {
		return s.pages[0], true
	}
	for _, p := range s.pages {
		if p.Slug() == slug {
			return p, true
		}
	}
	return nil, false
}

// Render returns the complete HTML document for slug.
func (s *Site) Render(slug string) ([]byte, error) {
	p, ok := s.Lookup(slug)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, slug)
	}

	content, err := p.Render()
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", p.Slug(), err)
	}

	var buf bytes.Buffer
	err = s.layout.Execute(&buf, layoutData{
		Title:   p.Title(),
		Site:    Name,
		Active:  p.Slug(),
		Nav:     s.Pages(),
		Content: content,
	})
	if err != nil {
		return nil, fmt.Errorf("render layout for %s: %w", p.Slug(), err)
	}
	return buf.Bytes(), nil
}

// Path maps a slug to its URL path. The home page lives at the root.
func Path(slug string) string {
	if slug == "home" {
		return "/"
	}
	return "/" + slug
}
