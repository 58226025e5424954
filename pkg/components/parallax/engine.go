// Package parallax tilts the hero scene toward the pointer, or toward the
// device's tilt on phones, with spring smoothing on every animation frame.
package parallax

import (
	"strconv"

	"github.com/recera/haven/pkg/components"
	"github.com/recera/haven/pkg/scheduler"
	"github.com/recera/haven/pkg/view"
)

const (
	DefaultLayerDepth = 0.05
	DefaultStarDepth  = 0.5
)

// StarSource supplies the stars to drift each frame. starfield.Field
// satisfies it.
type StarSource interface {
	Stars() []view.Element
}

// debugLog is set by platform-specific code
var debugLog func(args ...interface{})

// SetDebugLog sets the debug logging function
func SetDebugLog(fn func(args ...interface{})) {
	debugLog = fn
}

type fixedStars []view.Element

func (s fixedStars) Stars() []view.Element { return s }

// Options names the markup the engine drives
type Options struct {
	HeroID  string // pointer region, default "hero"
	SceneID string // default "scene"
	HouseID string // default "house3d"
	Layers  string // inside the house, default ".layer" (data-depth)
	Moon    string // default ".moon"

	// Stars defaults to the ".star" elements present at mount
	Stars StarSource
}

func (o *Options) withDefaults() Options {
	d := Options{
		HeroID:  "hero",
		SceneID: "scene",
		HouseID: "house3d",
		Layers:  ".layer",
		Moon:    ".moon",
	}
	if o == nil {
		return d
	}
	if o.HeroID != "" {
		d.HeroID = o.HeroID
	}
	if o.SceneID != "" {
		d.SceneID = o.SceneID
	}
	if o.HouseID != "" {
		d.HouseID = o.HouseID
	}
	if o.Layers != "" {
		d.Layers = o.Layers
	}
	if o.Moon != "" {
		d.Moon = o.Moon
	}
	d.Stars = o.Stars
	return d
}

// Layer is a house layer and its depth factor
type Layer struct {
	El    view.Element
	Depth float64
}

func depthOf(el view.Element, fallback float64) float64 {
	d, err := strconv.ParseFloat(el.Data("depth"), 64)
	if err != nil {
		return fallback
	}
	return d
}

// Engine owns the pointer state and the frame loop
type Engine struct {
	page   view.Page
	hero   view.Element
	scene  view.Element
	moon   view.Element
	layers []Layer
	stars  StarSource

	rawX, rawY float64
	spring     Spring

	loop    *scheduler.Task
	unbinds []view.Unbind
}

// Mount binds pointer, touch and orientation input and starts the frame loop
func Mount(page view.Page, sched *scheduler.Scheduler, opts *Options) (*Engine, error) {
	o := opts.withDefaults()
	els, err := components.Require(page, o.HeroID, o.SceneID, o.HouseID)
	if err != nil {
		return nil, err
	}
	if page.PrefersReducedMotion() {
		return nil, components.ErrReducedMotion
	}

	e := &Engine{
		page:  page,
		hero:  els[0],
		scene: els[1],
		moon:  page.Query(o.Moon),
		stars: o.Stars,
	}
	for _, el := range els[2].QueryAll(o.Layers) {
		e.layers = append(e.layers, Layer{El: el, Depth: depthOf(el, DefaultLayerDepth)})
	}
	if e.stars == nil {
		e.stars = fixedStars(page.QueryAll(".star"))
	}

	for _, typ := range []string{"pointermove", "touchstart", "touchmove"} {
		e.unbinds = append(e.unbinds, e.hero.On(typ, e.onPointer))
	}
	e.bindOrientation()

	e.loop = sched.Frames("parallax", func(float64) { e.Frame() })
	return e, nil
}

func (e *Engine) onPointer(ev *view.Event) {
	x, y, ok := ev.Position()
	if !ok {
		return
	}
	e.rawX, e.rawY = Normalize(e.hero.Rect(), x, y)
}

func (e *Engine) onOrientation(ev *view.Event) {
	if !ev.HasOrientation {
		return
	}
	e.rawX, e.rawY = FromOrientation(ev.Gamma, ev.Beta)
}

// bindOrientation listens for device tilt. Where the platform gates it behind
// a permission prompt, the prompt is raised on the first touch anywhere and a
// refusal leaves tilt input off.
func (e *Engine) bindOrientation() {
	if !e.page.OrientationSupported() {
		return
	}
	if !e.page.OrientationNeedsPermission() {
		e.unbinds = append(e.unbinds, e.page.OnWindow("deviceorientation", e.onOrientation))
		return
	}

	var ask view.Unbind
	ask = e.page.OnWindow("touchstart", func(*view.Event) {
		ask()
		e.page.RequestOrientationPermission(func(granted bool) {
			if !granted {
				if debugLog != nil {
					debugLog("[Parallax] orientation permission denied")
				}
				return
			}
			e.unbinds = append(e.unbinds, e.page.OnWindow("deviceorientation", e.onOrientation))
		})
	})
	e.unbinds = append(e.unbinds, ask)
}

// Raw returns the latest unsmoothed pointer offset
func (e *Engine) Raw() (float64, float64) {
	return e.rawX, e.rawY
}

// Spring returns the smoothed state
func (e *Engine) Spring() Spring {
	return e.spring
}

// Frame advances the spring and writes every transform
func (e *Engine) Frame() {
	e.spring.Step(e.rawX, e.rawY)
	s := e.spring

	e.scene.SetStyle("transform", SceneTransform(s.RX, s.RY, s.X, s.Y))
	for _, l := range e.layers {
		l.El.SetStyle("transform", LayerTransform(l.Depth, s.X, s.Y))
	}
	if e.moon != nil {
		e.moon.SetStyle("transform", MoonTransform(s.X, s.Y, s.RY))
	}
	for _, star := range e.stars.Stars() {
		star.SetStyle("transform", StarTransform(depthOf(star, DefaultStarDepth), s.X, s.Y))
	}
}

// Stop ends the frame loop and unbinds input
func (e *Engine) Stop() {
	e.loop.Stop()
	for _, unbind := range e.unbinds {
		unbind()
	}
	e.unbinds = nil
}
