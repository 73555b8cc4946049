package render

import (
	"sort"

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
)

// EmptyLinksText is shown when a page has no active links.
const EmptyLinksText = "Your links will appear here"

// Page is everything a rendered page depends on.
type Page struct {
	Username        string
	Name            string
	Bio             string
	ProfileImageURL string
	Theme           domain.Theme
	Links           []domain.Link
}

// PageFor builds the page input for a stored profile.
func PageFor(p domain.Profile) Page {
	return Page{
		Username:        p.Username,
		Name:            p.Name,
		Bio:             p.Bio,
		ProfileImageURL: p.ProfileImageURL,
		Theme:           p.Theme,
		Links:           p.Links,
	}
}

func (p Page) displayName() string {
	return domain.User{Username: p.Username, Name: p.Name}.DisplayName()
}

// VisibleLinks returns the active links ordered by position.
func (p Page) VisibleLinks() []domain.Link {
	out := make([]domain.Link, 0, len(p.Links))
	for _, l := range p.Links {
		if l.IsActive {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// FontStack maps the body font family to a generic CSS family.
func FontStack(f domain.FontFamily) string {
	switch domain.ParseFontFamily(string(f)) {
	case domain.FontSerif:
		return "serif"
	case domain.FontMono:
		return "monospace"
	default:
		return "sans-serif"
	}
}

// RenderPage composes the wallpaper, profile header and links of a page.
func RenderPage(p Page) Node {
	t := p.Theme
	content := el("div", "content", Style{
		{"position", "relative"},
		{"z-index", "1"},
		{"display", "flex"},
		{"flex-direction", "column"},
		{"align-items", "center"},
		{"padding", "48px 24px"},
	})

	if p.ProfileImageURL != "" {
		content.Children = append(content.Children, Node{
			Tag:   "img",
			Role:  "avatar",
			Style: avatarStyle(domain.ParseProfileImageLayout(string(t.ProfileImageLayout))),
			Attrs: []Attr{{"src", p.ProfileImageURL}, {"alt", "Profile"}},
		})
	}
	content.Children = append(content.Children, text("h2", "name", titleStyle(t), p.displayName()))
	if p.Bio != "" {
		content.Children = append(content.Children, text("p", "bio", Style{
			{"margin", "0 0 24px"},
			{"font-size", "12px"},
			{"line-height", "1.6"},
			{"text-align", "center"},
			{"color", t.TitleColor.String()},
			{"opacity", "0.7"},
		}, p.Bio))
	}

	list := el("div", "links", Style{
		{"display", "flex"},
		{"flex-direction", "column"},
		{"gap", "12px"},
		{"width", "100%"},
		{"margin-bottom", "32px"},
	})
	links := p.VisibleLinks()
	for _, l := range links {
		list.Children = append(list.Children, RenderLink(t, l))
	}
	if len(links) == 0 {
		list.Children = append(list.Children, text("p", "empty", Style{
			{"padding", "32px 0"},
			{"font-size", "12px"},
			{"text-align", "center"},
			{"color", t.TitleColor.String()},
			{"opacity", "0.5"},
		}, EmptyLinksText))
	}
	content.Children = append(content.Children, list)

	return el("div", "page", Style{
		{"position", "relative"},
		{"min-height", "100%"},
		{"overflow", "hidden"},
		{"background-color", t.BackgroundColor.String()},
		{"font-family", FontStack(t.FontFamily)},
	}, RenderWallpaper(t), content)
}

func avatarStyle(layout domain.ProfileImageLayout) Style {
	if layout == domain.ProfileHero {
		return Style{{"width", "100%"}, {"height", "128px"}, {"border-radius", "8px"}, {"object-fit", "cover"}, {"margin-bottom", "12px"}}
	}
	return Style{{"width", "80px"}, {"height", "80px"}, {"border-radius", "9999px"}, {"object-fit", "cover"}, {"margin-bottom", "12px"}}
}

func titleStyle(t domain.Theme) Style {
	size := "20px"
	if domain.ParseTitleSize(string(t.TitleSize)) == domain.TitleLarge {
		size = "24px"
	}
	s := Style{
		{"margin", "0 0 8px"},
		{"font-size", size},
		{"color", t.TitleColor.String()},
		{"font-family", t.TitleFont},
	}
	if domain.ParseTitleStyle(string(t.TitleStyle)) == domain.TitleLogo {
		return append(s, Decl{"font-weight", "800"}, Decl{"text-transform", "uppercase"}, Decl{"letter-spacing", "0.05em"})
	}
	return append(s, Decl{"font-weight", "700"})
}

// Document renders a complete HTML document for the page.
func Document(p Page) string {
	head := el("head", "",
		nil,
		Node{Tag: "meta", Attrs: []Attr{{"charset", "utf-8"}}},
		Node{Tag: "meta", Attrs: []Attr{{"name", "viewport"}, {"content", "width=device-width, initial-scale=1"}}},
		text("title", "", nil, p.displayName()),
	)
	body := el("body", "", Style{{"margin", "0"}, {"min-height", "100vh"}}, RenderPage(p))
	doc := Node{Tag: "html", Attrs: []Attr{{"lang", "en"}}, Children: []Node{head, body}}
	return "<!DOCTYPE html>" + HTML(doc)
}
