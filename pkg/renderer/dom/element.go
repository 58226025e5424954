//go:build js && wasm
// +build js,wasm

package dom

import (
	"syscall/js"

	"github.com/recera/haven/pkg/view"
)

// Element wraps a DOM element
type Element struct {
	v    js.Value
	page *Page
}

// Value returns the underlying JS object
func (e *Element) Value() js.Value {
	return e.v
}

func (e *Element) ID() string {
	return e.v.Get("id").String()
}

func (e *Element) Attr(name string) string {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return ""
	}
	return v.String()
}

func (e *Element) HasAttr(name string) bool {
	return e.v.Call("hasAttribute", name).Bool()
}

func (e *Element) SetAttr(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *Element) RemoveAttr(name string) {
	e.v.Call("removeAttribute", name)
}

// Data reads data-<key> through the attribute so keys need no camel-casing
func (e *Element) Data(key string) string {
	return e.Attr("data-" + key)
}

func (e *Element) SetData(key, value string) {
	e.SetAttr("data-"+key, value)
}

func (e *Element) HasClass(class string) bool {
	return e.v.Get("classList").Call("contains", class).Bool()
}

func toArgs(ss []string) []interface{} {
	args := make([]interface{}, len(ss))
	for i, s := range ss {
		args[i] = s
	}
	return args
}

func (e *Element) AddClass(classes ...string) {
	e.v.Get("classList").Call("add", toArgs(classes)...)
}

func (e *Element) RemoveClass(classes ...string) {
	e.v.Get("classList").Call("remove", toArgs(classes)...)
}

func (e *Element) Style(prop string) string {
	return e.v.Get("style").Call("getPropertyValue", prop).String()
}

// SetStyle sets an inline style property; an empty value removes it
func (e *Element) SetStyle(prop, value string) {
	style := e.v.Get("style")
	if value == "" {
		style.Call("removeProperty", prop)
		return
	}
	style.Call("setProperty", prop, value)
}

func (e *Element) Text() string {
	return e.v.Get("textContent").String()
}

func (e *Element) SetText(text string) {
	e.v.Set("textContent", text)
}

func (e *Element) Query(selector string) view.Element {
	return e.page.wrap(e.v.Call("querySelector", selector))
}

func (e *Element) QueryAll(selector string) []view.Element {
	return e.page.wrapAll(e.v.Call("querySelectorAll", selector))
}

func (e *Element) Append(tag string) view.Element {
	child := e.page.document.Call("createElement", tag)
	e.v.Call("appendChild", child)
	return e.page.wrap(child)
}

func (e *Element) Clear() {
	e.v.Set("innerHTML", "")
}

func (e *Element) On(event string, h view.Handler) view.Unbind {
	return e.page.listen(e.v, event, h)
}

func (e *Element) Focus() {
	e.v.Call("focus")
}

func (e *Element) Click() {
	e.v.Call("click")
}

func (e *Element) Rect() view.Rect {
	r := e.v.Call("getBoundingClientRect")
	return view.Rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func (e *Element) OffsetWidth() float64 {
	return e.v.Get("offsetWidth").Float()
}

func (e *Element) ClientWidth() float64 {
	return e.v.Get("clientWidth").Float()
}

func behavior(smooth bool) string {
	if smooth {
		return "smooth"
	}
	return "auto"
}

func (e *Element) ScrollBy(left float64, smooth bool) {
	e.v.Call("scrollBy", map[string]interface{}{"left": left, "behavior": behavior(smooth)})
}

func (e *Element) ScrollIntoView(smooth bool) {
	e.v.Call("scrollIntoView", map[string]interface{}{"behavior": behavior(smooth)})
}

var swallow = js.FuncOf(func(js.Value, []js.Value) interface{} { return nil })

// RequestFullscreen reports false when the element has no fullscreen API. A
// rejected request is dropped.
func (e *Element) RequestFullscreen() bool {
	if e.v.Get("requestFullscreen").Type() != js.TypeFunction {
		return false
	}
	if p := e.v.Call("requestFullscreen"); p.Truthy() {
		p.Call("catch", swallow)
	}
	return true
}

func (e *Element) Same(other view.Element) bool {
	o, ok := other.(*Element)
	return ok && o != nil && o.v.Equal(e.v)
}
