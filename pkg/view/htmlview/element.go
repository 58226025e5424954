package htmlview

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/recera/haven/pkg/view"
)

// Element is a view.Element backed by an html.Node
type Element struct {
	page *Page
	node *html.Node
}

// Node exposes the underlying parse node
func (e *Element) Node() *html.Node {
	return e.node
}

func (e *Element) sel() *goquery.Selection {
	return e.page.doc.FindNodes(e.node)
}

// ID implements view.Element
func (e *Element) ID() string {
	return e.Attr("id")
}

// Attr implements view.Element
func (e *Element) Attr(name string) string {
	v, _ := e.sel().Attr(name)
	return v
}

// HasAttr implements view.Element
func (e *Element) HasAttr(name string) bool {
	_, ok := e.sel().Attr(name)
	return ok
}

// SetAttr implements view.Element
func (e *Element) SetAttr(name, value string) {
	if name == "style" {
		e.page.styles[e.node] = parseStyle(value)
	}
	e.sel().SetAttr(name, value)
}

// RemoveAttr implements view.Element
func (e *Element) RemoveAttr(name string) {
	if name == "style" {
		delete(e.page.styles, e.node)
	}
	e.sel().RemoveAttr(name)
}

// Data implements view.Element
func (e *Element) Data(key string) string {
	return e.Attr("data-" + key)
}

// SetData implements view.Element
func (e *Element) SetData(key, value string) {
	e.SetAttr("data-"+key, value)
}

// HasClass implements view.Element
func (e *Element) HasClass(class string) bool {
	return e.sel().HasClass(class)
}

// AddClass implements view.Element
func (e *Element) AddClass(classes ...string) {
	e.sel().AddClass(classes...)
}

// RemoveClass implements view.Element
func (e *Element) RemoveClass(classes ...string) {
	e.sel().RemoveClass(classes...)
}

func (e *Element) styleMap() map[string]string {
	props, ok := e.page.styles[e.node]
	if !ok {
		props = parseStyle(e.Attr("style"))
		e.page.styles[e.node] = props
	}
	return props
}

// Style implements view.Element
func (e *Element) Style(prop string) string {
	return e.styleMap()[prop]
}

// SetStyle implements view.Element. An empty value removes the property.
func (e *Element) SetStyle(prop, value string) {
	props := e.styleMap()
	if value == "" {
		delete(props, prop)
	} else {
		props[prop] = value
	}
	if len(props) == 0 {
		e.sel().RemoveAttr("style")
		return
	}
	e.sel().SetAttr("style", formatStyle(props))
}

// Text implements view.Element
func (e *Element) Text() string {
	return e.sel().Text()
}

// SetText implements view.Element
func (e *Element) SetText(text string) {
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		e.page.dropSubtree(c)
	}
	e.sel().SetText(text)
}

// Query implements view.Element
func (e *Element) Query(selector string) view.Element {
	return e.page.first(e.sel().Find(selector))
}

// QueryAll implements view.Element
func (e *Element) QueryAll(selector string) []view.Element {
	return e.page.all(e.sel().Find(selector))
}

// Append implements view.Element
func (e *Element) Append(tag string) view.Element {
	tag = strings.ToLower(tag)
	child := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	e.node.AppendChild(child)
	return e.page.wrap(child)
}

// Clear implements view.Element
func (e *Element) Clear() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.page.dropSubtree(c)
		e.node.RemoveChild(c)
		c = next
	}
}

// On implements view.Element
func (e *Element) On(event string, h view.Handler) view.Unbind {
	table, ok := e.page.handlers[e.node]
	if !ok {
		table = make(map[string][]boundHandler)
		e.page.handlers[e.node] = table
	}
	return e.page.bind(table, event, h)
}

// Focus implements view.Element
func (e *Element) Focus() {
	e.page.active = e.node
}

// Click implements view.Element
func (e *Element) Click() {
	e.page.Dispatch(e, view.NewEvent("click", e))
}

// Rect implements view.Element
func (e *Element) Rect() view.Rect {
	return e.page.rects[e.node]
}

// OffsetWidth implements view.Element
func (e *Element) OffsetWidth() float64 {
	return e.page.widths[e.node].offset
}

// ClientWidth implements view.Element
func (e *Element) ClientWidth() float64 {
	return e.page.widths[e.node].client
}

// ScrollBy implements view.Element by recording the call
func (e *Element) ScrollBy(left float64, smooth bool) {
	e.page.scrolls[e.node] = append(e.page.scrolls[e.node], Scroll{Left: left, Smooth: smooth})
}

// ScrollIntoView implements view.Element by recording the call
func (e *Element) ScrollIntoView(bool) {
	e.page.intoView = append(e.page.intoView, e.node)
}

// RequestFullscreen implements view.Element
func (e *Element) RequestFullscreen() bool {
	if !e.page.fullscreenSupported {
		return false
	}
	e.page.fullscreen = append(e.page.fullscreen, e.node)
	return true
}

// Same implements view.Element
func (e *Element) Same(other view.Element) bool {
	o, ok := other.(*Element)
	return ok && o != nil && o.node == e.node
}
