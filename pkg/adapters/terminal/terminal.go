// Package terminal draws rendered pages with lipgloss for CLI previews.
package terminal

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/render"
)

const defaultWidth = 44

// Renderer converts a render tree into styled terminal text.
type Renderer struct {
	width int
}

func New(width int) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	return &Renderer{width: width}
}

// Render draws the page node produced by render.RenderPage.
func (r *Renderer) Render(page render.Node) string {
	var rows []string

	if name, ok := page.Find("name"); ok {
		s := lipgloss.NewStyle().Bold(true)
		s = withForeground(s, name.Style)
		if v, _ := name.Style.Get("text-transform"); v == "uppercase" {
			name.Text = strings.ToUpper(name.Text)
		}
		rows = append(rows, s.Render(name.Text))
	}
	if bio, ok := page.Find("bio"); ok {
		rows = append(rows, withForeground(lipgloss.NewStyle().Faint(true), bio.Style).Width(r.width).Align(lipgloss.Center).Render(bio.Text))
	}
	rows = append(rows, "")

	for _, link := range page.FindAll("link") {
		rows = append(rows, r.link(link))
	}
	if empty, ok := page.Find("empty"); ok {
		rows = append(rows, lipgloss.NewStyle().Italic(true).Faint(true).Render(empty.Text))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, rows...)
	frame := lipgloss.NewStyle().Padding(1, 2).Width(r.width + 6).Align(lipgloss.Center)
	if bg, ok := page.Style.Get("background-color"); ok {
		if c, ok := TermColor(bg); ok {
			frame = frame.Background(c)
		}
	}
	return frame.Render(body)
}

// link draws one link entry according to its data-layout.
func (r *Renderer) link(n render.Node) string {
	layout, _ := n.Attr("data-layout")
	label := firstText(n, "title")
	if label == "" {
		label = firstText(n, "glyph")
	}
	if icon, ok := n.Find("icon"); ok {
		if key, _ := icon.Attr("data-icon"); key != "" {
			label = "[" + key + "] " + label
		}
	}

	surface := surfaceOf(n)
	style := lipgloss.NewStyle().Align(lipgloss.Center).Padding(0, 1)
	style = withForeground(style, surface.Style)
	if bg, ok := surface.Style.Get("background-color"); ok {
		if c, ok := TermColor(bg); ok {
			style = style.Background(c)
		}
	}

	switch layout {
	case "icon-only":
		return style.Border(lipgloss.RoundedBorder()).Render(label)
	case "minimal":
		return style.Underline(true).Width(r.width).Render(label)
	case "thumbnail", "card":
		if u := firstText(n, "url"); u != "" {
			label += "\n" + lipgloss.NewStyle().Faint(true).Render(u)
		}
	}

	style = style.Width(r.width).Border(borderFor(surface.Style))
	if b, ok := surface.Style.Get("border"); ok && b != "none" {
		if c, ok := TermColor(lastField(b)); ok {
			style = style.BorderForeground(c)
		}
	}
	return style.Render(label)
}

// surfaceOf returns the node carrying the link's fill and border.
func surfaceOf(n render.Node) render.Node {
	for _, role := range []string{"button", "featured", "thumbnail", "card", "badge", "minimal"} {
		if s, ok := n.Find(role); ok {
			return s
		}
	}
	return n
}

func borderFor(s render.Style) lipgloss.Border {
	radius, _ := s.Get("border-radius")
	px, err := strconv.Atoi(strings.TrimSuffix(radius, "px"))
	if err == nil && px <= 4 {
		return lipgloss.NormalBorder()
	}
	return lipgloss.RoundedBorder()
}

func withForeground(st lipgloss.Style, s render.Style) lipgloss.Style {
	if v, ok := s.Get("color"); ok {
		if c, ok := TermColor(v); ok {
			return st.Foreground(c)
		}
	}
	return st
}

func firstText(n render.Node, role string) string {
	if t, ok := n.Find(role); ok {
		return t.Text
	}
	return ""
}

func lastField(s string) string {
	f := strings.Fields(s)
	if len(f) == 0 {
		return ""
	}
	return f[len(f)-1]
}

// TermColor converts a CSS color to a terminal color. Transparent and
// unparseable values report false.
func TermColor(css string) (lipgloss.Color, bool) {
	s := strings.TrimSpace(strings.ToLower(css))
	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) == 9 {
			s = s[:7]
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return "", false
		}
		return lipgloss.Color(c.Hex()), true
	case strings.HasPrefix(s, "rgb"):
		open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
		if open < 0 || end < open {
			return "", false
		}
		parts := strings.Split(s[open+1:end], ",")
		if len(parts) < 3 {
			return "", false
		}
		var rgb [3]float64
		for i := range rgb {
			v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
			if err != nil || v < 0 || v > 255 {
				return "", false
			}
			rgb[i] = float64(v) / 255
		}
		return lipgloss.Color(colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}.Hex()), true
	default:
		return "", false
	}
}
