//go:build js && wasm
// +build js,wasm

// Package dom implements view.Page on the browser DOM through syscall/js, and
// a scheduler.Driver on setTimeout and requestAnimationFrame.
package dom

import (
	"errors"
	"syscall/js"

	"github.com/recera/haven/pkg/view"
)

// Page is the live document
type Page struct {
	document js.Value
	window   js.Value
}

// NewPage wraps the global document and window
func NewPage() (view.Page, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, errors.New("no document in this context")
	}
	return &Page{document: doc, window: js.Global().Get("window")}, nil
}

func (p *Page) wrap(v js.Value) view.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &Element{v: v, page: p}
}

func (p *Page) wrapAll(list js.Value) []view.Element {
	n := list.Length()
	out := make([]view.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, p.wrap(list.Index(i)))
	}
	return out
}

// ByID implements view.Page
func (p *Page) ByID(id string) view.Element {
	return p.wrap(p.document.Call("getElementById", id))
}

// Query implements view.Page
func (p *Page) Query(selector string) view.Element {
	return p.wrap(p.document.Call("querySelector", selector))
}

// QueryAll implements view.Page
func (p *Page) QueryAll(selector string) []view.Element {
	return p.wrapAll(p.document.Call("querySelectorAll", selector))
}

// Body implements view.Page
func (p *Page) Body() view.Element {
	return p.wrap(p.document.Get("body"))
}

// ActiveElement implements view.Page
func (p *Page) ActiveElement() view.Element {
	return p.wrap(p.document.Get("activeElement"))
}

// OnDocument implements view.Page
func (p *Page) OnDocument(event string, h view.Handler) view.Unbind {
	return p.listen(p.document, event, h)
}

// OnWindow implements view.Page
func (p *Page) OnWindow(event string, h view.Handler) view.Unbind {
	return p.listen(p.window, event, h)
}

// ViewportSize implements view.Page
func (p *Page) ViewportSize() (float64, float64) {
	return p.window.Get("innerWidth").Float(), p.window.Get("innerHeight").Float()
}

// ScrollY implements view.Page
func (p *Page) ScrollY() float64 {
	return p.window.Get("scrollY").Float()
}

// PrefersReducedMotion implements view.Page
func (p *Page) PrefersReducedMotion() bool {
	if p.window.Get("matchMedia").Type() != js.TypeFunction {
		return false
	}
	return p.window.Call("matchMedia", "(prefers-reduced-motion: reduce)").Get("matches").Bool()
}

// Navigate implements view.Page
func (p *Page) Navigate(url string) {
	p.window.Get("location").Set("href", url)
}

func (p *Page) orientationEvent() js.Value {
	return p.window.Get("DeviceOrientationEvent")
}

// OrientationSupported implements view.Page
func (p *Page) OrientationSupported() bool {
	return p.orientationEvent().Truthy()
}

// OrientationNeedsPermission implements view.Page
func (p *Page) OrientationNeedsPermission() bool {
	ev := p.orientationEvent()
	return ev.Truthy() && ev.Get("requestPermission").Type() == js.TypeFunction
}

// RequestOrientationPermission implements view.Page. A rejected prompt
// reports false.
func (p *Page) RequestOrientationPermission(done func(granted bool)) {
	var onResult, onError js.Func
	settle := func(granted bool) {
		onResult.Release()
		onError.Release()
		done(granted)
	}
	onResult = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		settle(len(args) > 0 && args[0].String() == "granted")
		return nil
	})
	onError = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if debugLog != nil {
			debugLog("[DOM] orientation permission failed")
		}
		settle(false)
		return nil
	})
	p.orientationEvent().Call("requestPermission").Call("then", onResult, onError)
}

// NewObserver implements view.Page on IntersectionObserver. Without the API
// every element observed in one task is reported fully visible in one batch.
func (p *Page) NewObserver(threshold float64, cb func([]view.Intersection)) view.Observer {
	ctor := p.window.Get("IntersectionObserver")
	if !ctor.Truthy() {
		return newEagerObserver(p.later, cb)
	}

	o := &observer{page: p, threshold: threshold}
	o.fn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) == 0 {
			return nil
		}
		entries := args[0]
		out := make([]view.Intersection, 0, entries.Length())
		for i := 0; i < entries.Length(); i++ {
			e := entries.Index(i)
			ratio := e.Get("intersectionRatio").Float()
			out = append(out, view.Intersection{
				Target:       p.wrap(e.Get("target")),
				Ratio:        ratio,
				Intersecting: e.Get("isIntersecting").Bool() && ratio >= threshold,
			})
		}
		cb(out)
		return nil
	})
	o.v = ctor.New(o.fn, map[string]interface{}{"threshold": threshold})
	return o
}

type observer struct {
	page      *Page
	threshold float64
	v         js.Value
	fn        js.Func
	done      bool
}

func (o *observer) Observe(el view.Element) {
	if e, ok := el.(*Element); ok && !o.done {
		o.v.Call("observe", e.v)
	}
}

func (o *observer) Unobserve(el view.Element) {
	if e, ok := el.(*Element); ok && !o.done {
		o.v.Call("unobserve", e.v)
	}
}

func (o *observer) Disconnect() {
	if o.done {
		return
	}
	o.done = true
	o.v.Call("disconnect")
	o.fn.Release()
}

// later runs fn on a fresh task
func (p *Page) later(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) interface{} {
		cb.Release()
		fn()
		return nil
	})
	p.window.Call("setTimeout", cb, 0)
}
