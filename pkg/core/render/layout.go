package render

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
)

var schemePrefix = regexp.MustCompile(`^https?://`)

// DisplayURL strips a leading http:// or https:// for display.
func DisplayURL(url string) string {
	return schemePrefix.ReplaceAllString(url, "")
}

// ClickPath is the route stored links are sent through so clicks are
// counted before redirecting.
const ClickPath = "/go/"

// LinkHref is the target of a rendered link. Stored links go through
// ClickPath; pending links have no id yet and point at their URL.
func LinkHref(l domain.Link) string {
	if l.Pending() {
		return l.URL
	}
	return ClickPath + strconv.FormatInt(l.ID, 10)
}

// RenderLink maps a link to its visual description. Dispatch is on the
// link's layout; unknown layouts render as default.
func RenderLink(t domain.Theme, l domain.Link) Node {
	var body Node
	switch domain.ParseLayout(string(l.Layout)) {
	case domain.LayoutIconOnly:
		body = iconOnly(t, l)
	case domain.LayoutThumbnail:
		body = thumbnail(t, l)
	case domain.LayoutCard:
		body = card(t, l)
	case domain.LayoutMinimal:
		body = minimal(t, l)
	case domain.LayoutFeatured:
		body = featured(t, l)
	default:
		body = button(t, l)
	}

	attrs := []Attr{{"href", LinkHref(l)}, {"data-layout", string(domain.ParseLayout(string(l.Layout)))}}
	if !l.Pending() {
		attrs = append(attrs, Attr{"data-link-id", strconv.FormatInt(l.ID, 10)})
	}
	return Node{
		Tag:      "a",
		Role:     "link",
		Style:    Style{{"display", "block"}, {"text-decoration", "none"}},
		Attrs:    attrs,
		Children: []Node{body},
	}
}

// iconNode draws the link icon, or returns false when the link has none.
func iconNode(l domain.Link, size int) (Node, bool) {
	key := l.IconKey()
	if key == "" {
		return Node{}, false
	}
	px := strconv.Itoa(size) + "px"
	return Node{
		Tag:   "i",
		Role:  "icon",
		Style: Style{{"display", "inline-block"}, {"width", px}, {"height", px}},
		Attrs: []Attr{{"data-icon", key}, {"aria-hidden", "true"}},
	}, true
}

func button(t domain.Theme, l domain.Link) Node {
	s := Style{
		{"display", "flex"},
		{"align-items", "center"},
		{"justify-content", "center"},
		{"gap", "8px"},
		{"width", "100%"},
		{"padding", "10px 16px"},
		{"font-size", "14px"},
		{"font-weight", "500"},
		{"text-align", "center"},
		{"color", t.ButtonTextColor.String()},
	}
	n := el("div", "button", append(s, ButtonSurface(t)...))
	if icon, ok := iconNode(l, 20); ok {
		n.Children = append(n.Children, icon)
	}
	n.Children = append(n.Children, text("span", "title", nil, l.Title))
	return n
}

func iconOnly(t domain.Theme, l domain.Link) Node {
	badge := el("div", "badge", Style{
		{"display", "flex"},
		{"align-items", "center"},
		{"justify-content", "center"},
		{"width", "48px"},
		{"height", "48px"},
		{"border-radius", "9999px"},
		{"background-color", t.ButtonColor.String()},
		{"color", t.ButtonTextColor.String()},
	})
	if icon, ok := iconNode(l, 20); ok {
		badge.Children = []Node{icon}
	} else {
		badge.Children = []Node{text("span", "glyph", Style{{"font-size", "12px"}}, Glyph(l.Title))}
	}
	return el("div", "", Style{{"display", "flex"}, {"justify-content", "center"}}, badge)
}

// Glyph is the fallback badge text: the first character of the title.
func Glyph(title string) string {
	if title == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(title)
	return string(r)
}

func thumbnail(t domain.Theme, l domain.Link) Node {
	tile := el("div", "tile", Style{
		{"display", "flex"},
		{"align-items", "center"},
		{"justify-content", "center"},
		{"flex-shrink", "0"},
		{"width", "40px"},
		{"height", "40px"},
		{"border-radius", "4px"},
		{"background-color", "rgba(255,255,255,0.2)"},
	})
	if icon, ok := iconNode(l, 20); ok {
		tile.Children = []Node{icon}
	}
	return el("div", "thumbnail", Style{
		{"display", "flex"},
		{"align-items", "center"},
		{"gap", "12px"},
		{"width", "100%"},
		{"padding", "12px"},
		{"border-radius", "8px"},
		{"background-color", t.ButtonColor.String()},
		{"color", t.ButtonTextColor.String()},
	},
		tile,
		el("div", "", Style{{"flex", "1"}, {"min-width", "0"}, {"text-align", "left"}},
			text("div", "title", Style{{"font-size", "12px"}, {"font-weight", "500"}}, l.Title),
			text("div", "url", Style{{"font-size", "10px"}, {"opacity", "0.7"}}, l.URL),
		),
	)
}

func card(t domain.Theme, l domain.Link) Node {
	return el("div", "card", Style{
		{"width", "100%"},
		{"overflow", "hidden"},
		{"border-radius", "8px"},
		{"background-color", t.ButtonColor.String()},
		{"color", t.ButtonTextColor.String()},
	},
		el("div", "band", Style{
			{"width", "100%"},
			{"height", "64px"},
			{"background", "linear-gradient(to right, rgba(255,255,255,0.2), rgba(255,255,255,0.05))"},
		}),
		el("div", "", Style{{"padding", "12px"}},
			text("div", "title", Style{{"font-size", "12px"}, {"font-weight", "500"}, {"margin-bottom", "4px"}}, l.Title),
			text("div", "url", Style{{"font-size", "10px"}, {"opacity", "0.7"}}, DisplayURL(l.URL)),
		),
	)
}

func minimal(t domain.Theme, l domain.Link) Node {
	c := t.TitleColor.String()
	return el("div", "minimal", Style{{"width", "100%"}, {"padding", "8px 0"}, {"text-align", "center"}},
		text("div", "title", Style{{"font-size", "14px"}, {"font-weight", "500"}, {"color", c}}, l.Title),
		text("div", "url", Style{{"font-size", "10px"}, {"opacity", "0.5"}, {"color", c}}, DisplayURL(l.URL)),
	)
}

func featured(t domain.Theme, l domain.Link) Node {
	c := t.ButtonColor
	header := el("div", "", Style{{"display", "flex"}, {"align-items", "center"}, {"gap", "8px"}, {"margin-bottom", "8px"}})
	if icon, ok := iconNode(l, 20); ok {
		header.Children = append(header.Children, icon)
	}
	header.Children = append(header.Children, text("div", "title", Style{{"font-size", "14px"}, {"font-weight", "700"}}, l.Title))

	return el("div", "featured", Style{
		{"width", "100%"},
		{"overflow", "hidden"},
		{"border-radius", "8px"},
		{"background", "linear-gradient(135deg, " + c.String() + " 0%, " + c.WithAlpha(0.8) + " 100%)"},
		{"color", t.ButtonTextColor.String()},
	},
		el("div", "", Style{{"padding", "16px"}},
			header,
			text("div", "url", Style{{"font-size", "10px"}, {"opacity", "0.7"}}, DisplayURL(l.URL)),
		),
	)
}
