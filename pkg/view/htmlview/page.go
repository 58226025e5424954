// Package htmlview implements view.Page over a parsed HTML document, without a
// browser. Selectors are answered by goquery, events bubble through the node
// tree, and browser side effects (scrolling, navigation, fullscreen) are
// recorded so callers can inspect them.
package htmlview

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/recera/haven/pkg/view"
)

// Scroll records one ScrollBy call
type Scroll struct {
	Left   float64
	Smooth bool
}

type boundHandler struct {
	id int
	fn view.Handler
}

type widths struct {
	offset float64
	client float64
}

// Page is a headless view.Page
type Page struct {
	doc *goquery.Document

	styles   map[*html.Node]map[string]string
	handlers map[*html.Node]map[string][]boundHandler
	document map[string][]boundHandler
	window   map[string][]boundHandler
	nextID   int

	active  *html.Node
	rects   map[*html.Node]view.Rect
	widths  map[*html.Node]widths
	scrolls map[*html.Node][]Scroll

	intoView   []*html.Node
	fullscreen []*html.Node

	width, height       float64
	scrollY             float64
	reducedMotion       bool
	fullscreenSupported bool
	navigations         []string

	orientationSupported  bool
	orientationPermission bool
	orientationGrant      bool
	permissionRequests    int

	observers []*observer
}

// Parse reads an HTML document
func Parse(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return &Page{
		doc:                 doc,
		styles:              make(map[*html.Node]map[string]string),
		handlers:            make(map[*html.Node]map[string][]boundHandler),
		document:            make(map[string][]boundHandler),
		window:              make(map[string][]boundHandler),
		rects:               make(map[*html.Node]view.Rect),
		widths:              make(map[*html.Node]widths),
		scrolls:             make(map[*html.Node][]Scroll),
		width:               1280,
		height:              800,
		fullscreenSupported: true,
	}, nil
}

// ParseString reads an HTML document from a string
func ParseString(markup string) (*Page, error) {
	return Parse(strings.NewReader(markup))
}

// MustParse is ParseString that panics on error, for tests
func MustParse(markup string) *Page {
	p, err := ParseString(markup)
	if err != nil {
		panic(err)
	}
	return p
}

// HTML renders the current document
func (p *Page) HTML() (string, error) {
	return goquery.OuterHtml(p.doc.Selection)
}

func (p *Page) wrap(n *html.Node) view.Element {
	if n == nil {
		return nil
	}
	return &Element{page: p, node: n}
}

func (p *Page) first(sel *goquery.Selection) view.Element {
	if sel.Length() == 0 {
		return nil
	}
	return p.wrap(sel.Get(0))
}

func (p *Page) all(sel *goquery.Selection) []view.Element {
	out := make([]view.Element, 0, sel.Length())
	for _, n := range sel.Nodes {
		out = append(out, p.wrap(n))
	}
	return out
}

// ByID implements view.Page
func (p *Page) ByID(id string) view.Element {
	return p.first(p.doc.Find(fmt.Sprintf("[id=%q]", id)))
}

// Query implements view.Page
func (p *Page) Query(selector string) view.Element {
	return p.first(p.doc.Find(selector))
}

// QueryAll implements view.Page
func (p *Page) QueryAll(selector string) []view.Element {
	return p.all(p.doc.Find(selector))
}

// Body implements view.Page
func (p *Page) Body() view.Element {
	return p.Query("body")
}

// ActiveElement implements view.Page
func (p *Page) ActiveElement() view.Element {
	if p.active == nil {
		return p.Body()
	}
	return p.wrap(p.active)
}

func (p *Page) bind(table map[string][]boundHandler, event string, h view.Handler) view.Unbind {
	p.nextID++
	id := p.nextID
	table[event] = append(table[event], boundHandler{id: id, fn: h})
	return func() {
		list := table[event]
		for i, bh := range list {
			if bh.id == id {
				table[event] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// OnDocument implements view.Page
func (p *Page) OnDocument(event string, h view.Handler) view.Unbind {
	return p.bind(p.document, event, h)
}

// OnWindow implements view.Page
func (p *Page) OnWindow(event string, h view.Handler) view.Unbind {
	return p.bind(p.window, event, h)
}

// ViewportSize implements view.Page
func (p *Page) ViewportSize() (float64, float64) {
	return p.width, p.height
}

// ScrollY implements view.Page
func (p *Page) ScrollY() float64 {
	return p.scrollY
}

// PrefersReducedMotion implements view.Page
func (p *Page) PrefersReducedMotion() bool {
	return p.reducedMotion
}

// Navigate implements view.Page by recording the URL
func (p *Page) Navigate(url string) {
	p.navigations = append(p.navigations, url)
}

// OrientationSupported implements view.Page
func (p *Page) OrientationSupported() bool {
	return p.orientationSupported
}

// OrientationNeedsPermission implements view.Page
func (p *Page) OrientationNeedsPermission() bool {
	return p.orientationPermission
}

// RequestOrientationPermission implements view.Page
func (p *Page) RequestOrientationPermission(done func(granted bool)) {
	p.permissionRequests++
	done(p.orientationGrant)
}

// Dispatch delivers ev to target's handlers, then each ancestor's, then the
// document's and the window's, unless propagation is stopped on the way.
func (p *Page) Dispatch(target view.Element, ev *view.Event) {
	el, ok := target.(*Element)
	if !ok || el == nil {
		p.fire(p.window, ev)
		return
	}
	ev.Target = target
	for n := el.node; n != nil; n = n.Parent {
		if table, ok := p.handlers[n]; ok {
			p.fire(table, ev)
		}
		if ev.Stopped() {
			return
		}
	}
	p.fire(p.document, ev)
	if ev.Stopped() {
		return
	}
	p.fire(p.window, ev)
}

// DispatchWindow delivers ev to window listeners only
func (p *Page) DispatchWindow(ev *view.Event) {
	p.fire(p.window, ev)
}

func (p *Page) fire(table map[string][]boundHandler, ev *view.Event) {
	list := append([]boundHandler(nil), table[ev.Type]...)
	for _, bh := range list {
		bh.fn(ev)
	}
}

// Listeners counts handlers bound to el for event
func (p *Page) Listeners(target view.Element, event string) int {
	el, ok := target.(*Element)
	if !ok {
		return 0
	}
	return len(p.handlers[el.node][event])
}

// WindowListeners counts window handlers for event
func (p *Page) WindowListeners(event string) int {
	return len(p.window[event])
}

// dropSubtree forgets side state for nodes being removed
func (p *Page) dropSubtree(n *html.Node) {
	delete(p.styles, n)
	delete(p.handlers, n)
	delete(p.rects, n)
	delete(p.widths, n)
	delete(p.scrolls, n)
	if p.active == n {
		p.active = nil
	}
	for _, o := range p.observers {
		o.forget(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.dropSubtree(c)
	}
}

func parseStyle(attr string) map[string]string {
	out := make(map[string]string)
	for _, decl := range strings.Split(attr, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k != "" {
			out[k] = strings.TrimSpace(v)
		}
	}
	return out
}

func formatStyle(props map[string]string) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(props[k])
		b.WriteByte(';')
	}
	return b.String()
}
