package page

import (
	"html/template"

	"mcpsite/internal/model"
)

var homeTemplate = mustParse("home.html")

// toneCard is a card with a Tailwind colour family for its background and heading.
type toneCard struct {
	model.Card
	Tone string
}

var (
	homeHero = model.Hero{
		Title: "Matériaux à Changement de Phase (MCP)",
		Image: model.Image{
			URL: "https://images.pexels.com/photos/2760243/pexels-photo-2760243.jpeg",
			Alt: "Matériaux à changement de phase",
		},
	}

	homeIntro = "Les Matériaux à Changement de Phase (MCP) sont des solutions innovantes pour le stockage d'énergie thermique, " +
		"permettant d'améliorer l'efficacité énergétique des bâtiments et des processus industriels."

	homeCards = []toneCard{
		{
			Tone: "blue",
			Card: model.Card{
				Title: "Avantages Clés",
				Image: model.Image{
					URL: "https://images.pexels.com/photos/3785927/pexels-photo-3785927.jpeg",
					Alt: "Avantages des MCP",
				},
				Items: []string{
					"Stockage d'énergie efficace",
					"Régulation thermique passive",
					"Économies d'énergie significatives",
					"Solution écologique",
				},
			},
		},
		{
			Tone: "green",
			Card: model.Card{
				Title: "Applications",
				Image: model.Image{
					URL: "https://images.pexels.com/photos/1216589/pexels-photo-1216589.jpeg",
					Alt: "Applications des MCP",
				},
				Items: []string{
					"Construction durable",
					"Transport de matériaux sensibles",
					"Systèmes de refroidissement",
					"Textile intelligent",
				},
			},
		},
	}
)

// Home is the landing page: banner, introduction, benefits and uses.
type Home struct{}

func (Home) Slug() string  { return "home" }
func (Home) Title() string { return "Accueil" }

// Render returns the landing page fragment.
func (Home) Render() (template.HTML, error) {
	return execute(homeTemplate, struct {
		Hero  model.Hero
		Intro string
		Cards []toneCard
	}{homeHero, homeIntro, homeCards})
}
