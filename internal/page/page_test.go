package page

import (
	"html"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cards splits a fragment into the markup of each card, in order.
func cards(out string) []string {
	parts := strings.Split(out, "data-card")
	return parts[1:]
}

// listItems returns the text of every <li> in s, in order.
func listItems(s string) []string {
	var items []string
	for _, chunk := range strings.Split(s, "<li>")[1:] {
		end := strings.Index(chunk, "</li>")
		if end < 0 {
			continue
		}
		items = append(items, chunk[:end])
	}
	return items
}

func escapeAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = html.EscapeString(s)
	}
	return out
}

func render(t *testing.T, c Component) string {
	t.Helper()
	out, err := c.Render()
	require.NoError(t, err)
	require.NotEmpty(t, out)
	return string(out)
}

func TestHomeRender(t *testing.T) {
	out := render(t, Home{})

	assert.Contains(t, out, "<h1 class=\"text-4xl font-bold text-white text-center px-4\">Matériaux à Changement de Phase (MCP)</h1>")
	assert.Contains(t, out, "Avantages Clés")
	assert.Contains(t, out, "Applications")
	assert.Contains(t, out, html.EscapeString(homeIntro))

	cs := cards(out)
	require.Len(t, cs, 2)
	assert.Contains(t, cs[0], ">Avantages Clés</h3>")
	assert.Contains(t, cs[0], "bg-blue-50")
	assert.Equal(t, escapeAll(homeCards[0].Items), listItems(cs[0]))
	assert.Contains(t, cs[1], ">Applications</h3>")
	assert.Contains(t, cs[1], "bg-green-50")
	assert.Equal(t, escapeAll(homeCards[1].Items), listItems(cs[1]))
}

func TestAboutRender(t *testing.T) {
	out := render(t, About{})

	assert.Contains(t, out, "À propos des MCP")
	assert.Contains(t, out, "Principe de Fonctionnement")

	cs := cards(out)
	require.Len(t, cs, 2)
	assert.Contains(t, cs[0], ">Principe de Fonctionnement</h3>")
	assert.Contains(t, cs[0], html.EscapeString(aboutCards[0].Text))
	assert.NotContains(t, cs[0], "<ul")

	assert.Contains(t, cs[1], ">Types de MCP</h3>")
	assert.Equal(t, []string{"MCP organiques", "MCP inorganiques", "Eutectiques"}, listItems(cs[1]))
}

func TestApplicationsRender(t *testing.T) {
	out := render(t, Applications{})

	assert.Contains(t, out, "Applications des MCP")

	cs := cards(out)
	require.Len(t, cs, len(applications))
	for i, app := range applications {
		assert.Contains(t, cs[i], ">"+app.Title+"</h3>")
		assert.Contains(t, cs[i], html.EscapeString(app.Description))
		assert.Contains(t, cs[i], `src="`+app.Image+`"`)
		assert.Equal(t, escapeAll(app.Examples), listItems(cs[i]))
	}

	for _, title := range []string{"Construction", "Transport", "Textile"} {
		assert.Equal(t, 1, strings.Count(out, ">"+title+"</h3>"), title)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	for _, c := range []Component{Home{}, About{}, Applications{}} {
		t.Run(c.Slug(), func(t *testing.T) {
			first := render(t, c)
			second := render(t, c)
			assert.Equal(t, first, second)
		})
	}
}

func TestLiteralContentIsComplete(t *testing.T) {
	nonEmpty := func(t *testing.T, fields ...string) {
		t.Helper()
		for _, f := range fields {
			assert.NotEmpty(t, f)
		}
	}

	require.Len(t, applications, 3)
	for _, a := range applications {
		nonEmpty(t, a.Title, a.Description, a.Image)
		nonEmpty(t, a.Examples...)
	}
	for _, c := range homeCards {
		nonEmpty(t, c.Title, c.Tone, c.Image.URL, c.Image.Alt)
		nonEmpty(t, c.Items...)
	}
	for _, c := range aboutCards {
		nonEmpty(t, c.Title, c.Image.URL, c.Image.Alt)
	}
}

func TestApplicationListReturnsCopy(t *testing.T) {
	list := ApplicationList()
	require.Len(t, list, 3)
	assert.Equal(t, "Construction", list[0].Title)
	assert.Equal(t, "Transport", list[1].Title)
	assert.Equal(t, "Textile", list[2].Title)

	list[0].Title = "changed"
	list[0].Examples[0] = "changed"

	assert.Equal(t, "Construction", applications[0].Title)
	assert.Equal(t, "Murs", applications[0].Examples[0])
}
