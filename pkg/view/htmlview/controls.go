package htmlview

import (
	"golang.org/x/net/html"

	"github.com/recera/haven/pkg/view"
)

// SetViewport sets the window size without firing resize
func (p *Page) SetViewport(width, height float64) {
	p.width, p.height = width, height
}

// Resize sets the window size and fires a window resize event
func (p *Page) Resize(width, height float64) {
	p.SetViewport(width, height)
	p.DispatchWindow(view.NewEvent("resize", nil))
}

// SetReducedMotion sets the reduced-motion preference
func (p *Page) SetReducedMotion(on bool) {
	p.reducedMotion = on
}

// ScrollTo sets the vertical scroll offset and fires a window scroll event
func (p *Page) ScrollTo(y float64) {
	p.scrollY = y
	p.DispatchWindow(view.NewEvent("scroll", nil))
}

// SetFullscreenSupported toggles the fullscreen capability
func (p *Page) SetFullscreenSupported(on bool) {
	p.fullscreenSupported = on
}

// SetOrientation configures device orientation support. grant is the answer
// given to permission requests.
func (p *Page) SetOrientation(supported, needsPermission, grant bool) {
	p.orientationSupported = supported
	p.orientationPermission = needsPermission
	p.orientationGrant = grant
}

// PermissionRequests counts orientation permission prompts
func (p *Page) PermissionRequests() int {
	return p.permissionRequests
}

// Orient fires a window deviceorientation event
func (p *Page) Orient(gamma, beta float64) {
	ev := view.NewEvent("deviceorientation", nil)
	ev.Gamma, ev.Beta, ev.HasOrientation = gamma, beta, true
	p.DispatchWindow(ev)
}

// SetRect sets the bounding box reported for el
func (p *Page) SetRect(el view.Element, r view.Rect) {
	if n := nodeOf(el); n != nil {
		p.rects[n] = r
	}
}

// SetWidths sets the offset and client widths reported for el
func (p *Page) SetWidths(el view.Element, offset, client float64) {
	if n := nodeOf(el); n != nil {
		p.widths[n] = widths{offset: offset, client: client}
	}
}

// Scrolls returns the ScrollBy calls made on el
func (p *Page) Scrolls(el view.Element) []Scroll {
	if n := nodeOf(el); n != nil {
		return p.scrolls[n]
	}
	return nil
}

// ScrolledIntoView returns the elements ScrollIntoView was called on
func (p *Page) ScrolledIntoView() []view.Element {
	out := make([]view.Element, 0, len(p.intoView))
	for _, n := range p.intoView {
		out = append(out, p.wrap(n))
	}
	return out
}

// Fullscreened returns the elements that requested fullscreen
func (p *Page) Fullscreened() []view.Element {
	out := make([]view.Element, 0, len(p.fullscreen))
	for _, n := range p.fullscreen {
		out = append(out, p.wrap(n))
	}
	return out
}

// Navigations returns every URL passed to Navigate
func (p *Page) Navigations() []string {
	return append([]string(nil), p.navigations...)
}

// KeyDown fires a keydown on the focused element
func (p *Page) KeyDown(key string) {
	target := p.ActiveElement()
	ev := view.NewEvent("keydown", target)
	ev.Key = key
	p.Dispatch(target, ev)
}

// Pointer fires a pointer-carrying event (pointermove, mousedown, ...) on el
func (p *Page) Pointer(el view.Element, typ string, x, y float64) {
	ev := view.NewEvent(typ, el)
	ev.ClientX, ev.ClientY, ev.HasPointer = x, y, true
	p.Dispatch(el, ev)
}

// Touch fires a touch event on el with the given contact points
func (p *Page) Touch(el view.Element, typ string, points ...view.Point) {
	ev := view.NewEvent(typ, el)
	ev.Touches = points
	p.Dispatch(el, ev)
}

type observer struct {
	threshold    float64
	cb           func([]view.Intersection)
	targets      []*html.Node
	disconnected bool
	page         *Page
}

// NewObserver implements view.Page
func (p *Page) NewObserver(threshold float64, cb func([]view.Intersection)) view.Observer {
	o := &observer{threshold: threshold, cb: cb, page: p}
	p.observers = append(p.observers, o)
	return o
}

func (o *observer) Observe(el view.Element) {
	n := nodeOf(el)
	if n == nil || o.watching(n) {
		return
	}
	o.targets = append(o.targets, n)
}

func (o *observer) Unobserve(el view.Element) {
	if n := nodeOf(el); n != nil {
		o.forget(n)
	}
}

func (o *observer) Disconnect() {
	o.disconnected = true
	o.targets = nil
}

func (o *observer) watching(n *html.Node) bool {
	for _, t := range o.targets {
		if t == n {
			return true
		}
	}
	return false
}

func (o *observer) forget(n *html.Node) {
	for i, t := range o.targets {
		if t == n {
			o.targets = append(o.targets[:i:i], o.targets[i+1:]...)
			return
		}
	}
}

// Observed counts the elements observers are still watching
func (p *Page) Observed() int {
	n := 0
	for _, o := range p.observers {
		if !o.disconnected {
			n += len(o.targets)
		}
	}
	return n
}

// Intersect reports that els are now ratio visible. Each observer watching any
// of them receives one batch of entries, in the order given.
func (p *Page) Intersect(ratio float64, els ...view.Element) {
	observers := append([]*observer(nil), p.observers...)
	for _, o := range observers {
		if o.disconnected {
			continue
		}
		var entries []view.Intersection
		for _, el := range els {
			if n := nodeOf(el); n != nil && o.watching(n) {
				entries = append(entries, view.Intersection{
					Target:       el,
					Ratio:        ratio,
					Intersecting: ratio > 0 && ratio >= o.threshold,
				})
			}
		}
		if len(entries) > 0 {
			o.cb(entries)
		}
	}
}

func nodeOf(el view.Element) *html.Node {
	e, ok := el.(*Element)
	if !ok || e == nil {
		return nil
	}
	return e.node
}
