package page

import (
	"html/template"

	"mcpsite/internal/model"
)

var applicationsTemplate = mustParse("applications.html")

var (
	applicationsHero = model.Hero{
		Title: "Applications des MCP",
		Image: model.Image{
			URL: "https://images.pexels.com/photos/1117452/pexels-photo-1117452.jpeg",
			Alt: "Applications MCP",
		},
	}

	applications = []model.Application{
		{
			Title:       "Construction",
			Description: "Intégration dans les matériaux de construction pour une régulation thermique passive.",
			Examples:    []string{"Murs", "Plafonds", "Planchers chauffants"},
			Image:       "https://images.pexels.com/photos/159306/construction-site-build-construction-work-159306.jpeg",
		},
		{
			Title:       "Transport",
			Description: "Protection thermique pour le transport de produits sensibles.",
			Examples:    []string{"Conteneurs réfrigérés", "Emballages isothermes", "Transport médical"},
			Image:       "https://images.pexels.com/photos/2199293/pexels-photo-2199293.jpeg",
		},
		{
			Title:       "Textile",
			Description: "Vêtements et textiles techniques pour le confort thermique.",
			Examples:    []string{"Vêtements de sport", "Équipements de protection", "Literie"},
			Image:       "https://images.pexels.com/photos/325876/pexels-photo-325876.jpeg",
		},
	}
)

// Applications renders one card per application domain, in declared order.
type Applications struct{}

func (Applications) Slug() string  { return "applications" }
func (Applications) Title() string { return "Applications" }

func (Applications) Render() (template.HTML, error) {
	return execute(applicationsTemplate, struct {
		Hero         model.Hero
		Applications []model.Application
	}{applicationsHero, applications})
}

// ApplicationList returns a copy of the application records.
func ApplicationList() []model.Application {
	out := make([]model.Application, len(applications))
	for i, a := range applications {
		a.Examples = append([]string(nil), a.Examples...)
		out[i] = a
	}
	return out
}
