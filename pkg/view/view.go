// Package view defines the surface that page behaviours talk to instead of the
// browser. A Page answers element queries, binds window/document events and
// exposes the few browser capabilities the site needs (navigation, fullscreen,
// device orientation, intersection observers). Elements expose class, style,
// attribute and text mutation plus the geometry used for scrolling.
//
// Two implementations exist: renderer/dom wraps syscall/js for the WASM client,
// and view/htmlview runs headless over parsed HTML for tests and tooling.
package view

// Handler receives a dispatched event
type Handler func(ev *Event)

// Unbind removes a previously bound handler
type Unbind func()

// Rect is an element's bounding box in viewport coordinates
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Center returns the midpoint of the box
func (r Rect) Center() (x, y float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// Point is a single pointer or touch coordinate in client space
type Point struct {
	X float64
	Y float64
}

// Event carries the subset of DOM event data the behaviours read.
type Event struct {
	Type   string
	Target Element
	Key    string

	// Client coordinates of a mouse/pointer event. HasPointer is false for
	// touch events, in which case Touches holds the contact points.
	ClientX    float64
	ClientY    float64
	HasPointer bool
	Touches    []Point

	// Device orientation angles in degrees. HasOrientation is false when the
	// platform delivered the event without readings.
	Gamma          float64
	Beta           float64
	HasOrientation bool

	stopped bool
	onStop  func()
}

// NewEvent builds an event of the given type aimed at target
func NewEvent(typ string, target Element) *Event {
	return &Event{Type: typ, Target: target}
}

// OnStop registers a hook run when StopPropagation is called. Adapters use it
// to forward the call to the native event.
func (e *Event) OnStop(fn func()) {
	e.onStop = fn
}

// StopPropagation prevents the event from reaching ancestor handlers
func (e *Event) StopPropagation() {
	if e.stopped {
		return
	}
	e.stopped = true
	if e.onStop != nil {
		e.onStop()
	}
}

// Stopped reports whether StopPropagation was called
func (e *Event) Stopped() bool {
	return e.stopped
}

// Position returns the event's client coordinates, falling back to the first
// touch point. ok is false if neither is present.
func (e *Event) Position() (x, y float64, ok bool) {
	if e.HasPointer {
		return e.ClientX, e.ClientY, true
	}
	if len(e.Touches) > 0 {
		return e.Touches[0].X, e.Touches[0].Y, true
	}
	return 0, 0, false
}

// Element is a handle to one node of the page.
type Element interface {
	ID() string
	Attr(name string) string
	HasAttr(name string) bool
	SetAttr(name, value string)
	RemoveAttr(name string)

	// Data reads a data-* attribute, e.g. Data("depth") reads data-depth.
	Data(key string) string
	SetData(key, value string)

	HasClass(class string) bool
	AddClass(classes ...string)
	RemoveClass(classes ...string)

	Style(prop string) string
	SetStyle(prop, value string)

	Text() string
	SetText(text string)

	Query(selector string) Element
	QueryAll(selector string) []Element

	// Append creates a child element with the given tag.
	Append(tag string) Element
	// Clear removes every child node.
	Clear()

	On(event string, h Handler) Unbind
	Focus()
	// Click dispatches a click to this element's handlers and its ancestors.
	Click()

	Rect() Rect
	OffsetWidth() float64
	ClientWidth() float64
	ScrollBy(left float64, smooth bool)
	ScrollIntoView(smooth bool)

	// RequestFullscreen reports false when the capability is absent.
	RequestFullscreen() bool

	Same(other Element) bool
}

// Intersection is one entry delivered by an Observer.
type Intersection struct {
	Target       Element
	Ratio        float64
	Intersecting bool
}

// Observer watches elements for viewport visibility changes.
type Observer interface {
	Observe(el Element)
	Unobserve(el Element)
	Disconnect()
}

// Page is the document plus window capabilities of one loaded page.
type Page interface {
	ByID(id string) Element
	Query(selector string) Element
	QueryAll(selector string) []Element
	Body() Element
	ActiveElement() Element

	// OnDocument binds a listener on the document, OnWindow on the window.
	OnDocument(event string, h Handler) Unbind
	OnWindow(event string, h Handler) Unbind

	ViewportSize() (width, height float64)
	ScrollY() float64
	PrefersReducedMotion() bool

	Navigate(url string)

	// OrientationSupported reports whether orientation events exist at all,
	// OrientationNeedsPermission whether they must be unlocked first.
	OrientationSupported() bool
	OrientationNeedsPermission() bool
	// RequestOrientationPermission resolves once; errors are delivered as a
	// denial.
	RequestOrientationPermission(done func(granted bool))

	NewObserver(threshold float64, cb func(entries []Intersection)) Observer
}

// Present reports whether every element is non-nil
func Present(els ...Element) bool {
	for _, el := range els {
		if el == nil {
			return false
		}
	}
	return true
}

// IndexOf returns the position of el in list, or -1
func IndexOf(list []Element, el Element) int {
	if el == nil {
		return -1
	}
	for i, candidate := range list {
		if candidate.Same(el) {
			return i
		}
	}
	return -1
}
