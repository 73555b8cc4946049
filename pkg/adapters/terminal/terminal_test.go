package terminal

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
	"github.com/wadjakorntonsri/go-linkpage/pkg/core/render"
)

func page(links ...domain.Link) render.Page {
	return render.Page{
		Username: "ada",
		Name:     "Ada",
		Bio:      "maths",
		Theme:    domain.DefaultTheme(),
		Links:    links,
	}
}

func TestRenderShowsHeaderAndLinks(t *testing.T) {
	out := New(40).Render(render.RenderPage(page(
		domain.Link{ID: 1, Title: "Blog", URL: "https://ada.dev", Position: 0, IsActive: true},
		domain.Link{ID: 2, Title: "Code", URL: "https://github.com/ada", Icon: domain.IconPtr("github"), Position: 1, IsActive: true},
	)))

	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "maths")
	assert.Contains(t, out, "Blog")
	assert.Contains(t, out, "[github] Code")
	assert.Less(t, strings.Index(out, "Blog"), strings.Index(out, "Code"))
	assert.NotContains(t, out, render.EmptyLinksText)
}

func TestRenderEmptyPage(t *testing.T) {
	out := New(0).Render(render.RenderPage(page()))
	assert.Contains(t, out, render.EmptyLinksText)
}

func TestRenderLayouts(t *testing.T) {
	tests := []struct {
		layout domain.LinkLayout
		want   string
	}{
		{domain.LayoutIconOnly, "S"},
		{domain.LayoutThumbnail, "https://example.com"},
		{domain.LayoutCard, "Site"},
		{domain.LayoutMinimal, "Site"},
		{domain.LayoutFeatured, "Site"},
	}
	for _, tt := range tests {
		t.Run(string(tt.layout), func(t *testing.T) {
			out := New(40).Render(render.RenderPage(page(
				domain.Link{ID: 1, Title: "Site", URL: "https://example.com", Layout: tt.layout, IsActive: true},
			)))
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestLogoTitleIsUppercased(t *testing.T) {
	p := page()
	p.Theme.TitleStyle = domain.TitleLogo
	assert.Contains(t, New(40).Render(render.RenderPage(p)), "ADA")
}

func TestTermColor(t *testing.T) {
	tests := []struct {
		in   string
		want lipgloss.Color
		ok   bool
	}{
		{"#FF0000", "#ff0000", true},
		{"#f00", "#ff0000", true},
		{"#00ff0080", "#00ff00", true},
		{"rgb(0, 0, 255)", "#0000ff", true},
		{"rgba(255,255,255,0.3)", "#ffffff", true},
		{"transparent", "", false},
		{"linear-gradient(#000, #fff)", "", false},
		{"#zzzzzz", "", false},
		{"rgb(300, 0, 0)", "", false},
	}
	for _, tt := range tests {
		got, ok := TermColor(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
