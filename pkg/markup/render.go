package markup

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"
)

// voidElements are HTML elements that cannot have children
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// booleanAttributes are HTML attributes that are boolean flags
var booleanAttributes = map[string]bool{
	"async":     true,
	"autofocus": true,
	"checked":   true,
	"defer":     true,
	"disabled":  true,
	"hidden":    true,
	"multiple":  true,
	"readonly":  true,
	"required":  true,
	"selected":  true,
}

func formatValue(v any) string {
	return fmt.Sprintf("%v", v)
}

// Renderer writes nodes as HTML. Attributes are emitted in name order so
// output is stable.
type Renderer struct {
	w   io.Writer
	err error
}

// NewRenderer creates a renderer writing to w
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render writes node and returns the first write error
func (r *Renderer) Render(node *Node) error {
	r.renderNode(node)
	return r.err
}

// Document writes an HTML5 doctype followed by node
func (r *Renderer) Document(node *Node) error {
	r.write("<!DOCTYPE html>\n")
	return r.Render(node)
}

// write helper that tracks errors
func (r *Renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

func (r *Renderer) renderNode(node *Node) {
	if node == nil || r.err != nil {
		return
	}

	switch node.Kind {
	case KindText:
		r.write(html.EscapeString(node.Text))
	case KindRaw:
		r.write(node.Text)
	case KindElement:
		r.renderElement(node)
	case KindFragment:
		for i := range node.Kids {
			r.renderNode(&node.Kids[i])
		}
	}
}

func (r *Renderer) renderElement(node *Node) {
	r.write("<")
	r.write(node.Tag)

	names := make([]string, 0, len(node.Props))
	for name := range node.Props {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := node.Props[name]
		if booleanAttributes[name] {
			if on, ok := value.(bool); ok && on {
				r.write(" ")
				r.write(name)
			}
			continue
		}

		s := formatValue(value)
		// no script URLs in links or sources
		if (name == "href" || name == "src") && strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "javascript:") {
			s = "#"
		}
		r.write(" ")
		r.write(name)
		r.write(`="`)
		r.write(html.EscapeString(s))
		r.write(`"`)
	}
	r.write(">")

	if voidElements[node.Tag] {
		return
	}

	// script and style content is not escaped
	raw := node.Tag == "script" || node.Tag == "style"
	for i := range node.Kids {
		kid := &node.Kids[i]
		if raw && kid.Kind == KindText {
			r.write(kid.Text)
			continue
		}
		r.renderNode(kid)
	}

	r.write("</")
	r.write(node.Tag)
	r.write(">")
}

// RenderToString renders node into a string
func RenderToString(node *Node) (string, error) {
	var buf strings.Builder
	if err := NewRenderer(&buf).Render(node); err != nil {
		return "", err
	}
	return buf.String(), nil
}
