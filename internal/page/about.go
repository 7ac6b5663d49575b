package page

import (
	"html/template"

	"mcpsite/internal/model"
)

var aboutTemplate = mustParse("about.html")

var (
	aboutHero = model.Hero{
		Title: "À propos des MCP",
		Image: model.Image{
			URL: "https://images.pexels.com/photos/2280571/pexels-photo-2280571.jpeg",
			Alt: "Technologie MCP",
		},
	}

	aboutIntro = "Les Matériaux à Changement de Phase (MCP) sont des substances qui absorbent et libèrent de l'énergie thermique " +
		"lors du changement de phase, généralement de l'état solide à l'état liquide et vice versa."

	aboutCards = []model.Card{
		{
			Title: "Principe de Fonctionnement",
			Image: model.Image{
				URL: "https://images.pexels.com/photos/247763/pexels-photo-247763.jpeg",
				Alt: "Principe de fonctionnement",
			},
			Text: "Lors du changement de phase, les MCP peuvent stocker et libérer de grandes quantités d'énergie à température " +
				"constante, ce qui en fait des solutions idéales pour la gestion thermique.",
		},
		{
			Title: "Types de MCP",
			Image: model.Image{
				URL: "https://images.pexels.com/photos/2150/sky-space-dark-galaxy.jpg",
				Alt: "Types de MCP",
			},
			Items: []string{"MCP organiques", "MCP inorganiques", "Eutectiques"},
		},
	}
)

// About explains how phase-change materials work and lists their families.
type About struct{}

func (About) Slug() string  { return "about" }
func (About) Title() string { return "À propos" }

func (About) Render() (template.HTML, error) {
	return execute(aboutTemplate, struct {
		Hero  model.Hero
		Intro string
		Cards []model.Card
	}{aboutHero, aboutIntro, aboutCards})
}
