package render

import (
	"html"
	"strings"
)

// Decl is one CSS declaration.
type Decl struct {
	Prop  string
	Value string
}

// Style is an ordered list of declarations. Order is part of the output.
type Style []Decl

// Get returns the value of the last declaration of prop.
func (s Style) Get(prop string) (string, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Prop == prop {
			return s[i].Value, true
		}
	}
	return "", false
}

func (s Style) String() string {
	var b strings.Builder
	for i, d := range s {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(d.Prop)
		b.WriteByte(':')
		b.WriteString(d.Value)
	}
	return b.String()
}

// Attr is an element attribute. An empty Value renders as a bare boolean attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of the visual description. Role names the part of the
// page the element draws ("link", "badge", "wallpaper", ...) and is carried
// into the output as data-role so every backend can recognize it.
type Node struct {
	Tag      string
	Role     string
	Style    Style
	Attrs    []Attr
	Text     string
	Children []Node
}

// Attr returns the value of the named attribute.
func (n Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns the first node in depth-first order with the given role.
func (n Node) Find(role string) (Node, bool) {
	if n.Role == role {
		return n, true
	}
	for _, c := range n.Children {
		if found, ok := c.Find(role); ok {
			return found, true
		}
	}
	return Node{}, false
}

// FindAll returns every node with the given role in depth-first order.
func (n Node) FindAll(role string) []Node {
	var out []Node
	if n.Role == role {
		out = append(out, n)
	}
	for _, c := range n.Children {
		out = append(out, c.FindAll(role)...)
	}
	return out
}

var voidElements = map[string]bool{"img": true, "meta": true, "link": true, "br": true}

// HTML serializes n. The output depends only on n, so equal trees always
// produce identical bytes.
func HTML(n Node) string {
	var b strings.Builder
	writeHTML(&b, n)
	return b.String()
}

func writeHTML(b *strings.Builder, n Node) {
	if n.Tag == "" {
		b.WriteString(html.EscapeString(n.Text))
		return
	}
	b.WriteByte('<')
	b.WriteString(n.Tag)
	if n.Role != "" {
		writeAttr(b, Attr{Name: "data-role", Value: n.Role})
	}
	for _, a := range n.Attrs {
		writeAttr(b, a)
	}
	if len(n.Style) > 0 {
		writeAttr(b, Attr{Name: "style", Value: n.Style.String()})
	}
	b.WriteByte('>')
	if voidElements[n.Tag] {
		return
	}
	b.WriteString(html.EscapeString(n.Text))
	for _, c := range n.Children {
		writeHTML(b, c)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

func writeAttr(b *strings.Builder, a Attr) {
	b.WriteByte(' ')
	b.WriteString(a.Name)
	if a.Value == "" {
		return
	}
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(a.Value))
	b.WriteByte('"')
}

func el(tag, role string, style Style, children ...Node) Node {
	return Node{Tag: tag, Role: role, Style: style, Children: children}
}

func text(tag, role string, style Style, s string) Node {
	return Node{Tag: tag, Role: role, Style: style, Text: s}
}
