// Package starfield scatters twinkling stars over the hero sky. The field is
// sized to the viewport and rebuilt from scratch, debounced, whenever the
// window is resized. Each star carries a depth factor that the parallax engine
// reads to counter-translate it.
package starfield

import (
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/recera/haven/pkg/components"
	"github.com/recera/haven/pkg/scheduler"
	"github.com/recera/haven/pkg/view"
)

const (
	MinStars    = 50
	MaxStars    = 220
	AreaPerStar = 45000

	// RebuildDelay is how long the window must stay unresized before the
	// field is regenerated
	RebuildDelay = 200 * time.Millisecond
)

// Size is a star's size class, used as its second CSS class
type Size string

const (
	Small  Size = "small"
	Medium Size = "med"
	Big    Size = "big"
)

// Pixels is the rendered width and height of the class
func (s Size) Pixels() int {
	switch s {
	case Big:
		return 3
	case Small:
		return 1
	default:
		return 2
	}
}

// Classify maps a uniform draw in [0,1) to a size class
func Classify(r float64) Size {
	switch {
	case r > 0.94:
		return Big
	case r < 0.25:
		return Small
	default:
		return Medium
	}
}

// Count is the number of stars for a viewport of the given size
func Count(width, height float64) int {
	n := int(math.Round(width * height / AreaPerStar))
	if n < MinStars {
		return MinStars
	}
	if n > MaxStars {
		return MaxStars
	}
	return n
}

// Star is one generated star. Left and Top are percentages of the sky,
// Duration and Delay are seconds.
type Star struct {
	Size     Size
	Depth    float64
	Left     float64
	Top      float64
	Opacity  float64
	Duration float64
	Delay    float64
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return rng.Float64()*(hi-lo) + lo
}

// Generate draws n stars from rng
func Generate(rng *rand.Rand, n int) []Star {
	stars := make([]Star, n)
	for i := range stars {
		s := &stars[i]
		s.Size = Classify(rng.Float64())
		s.Depth = between(rng, 0.1, 1.0)
		s.Left = between(rng, 1, 99)
		s.Top = between(rng, 2, 88)
		s.Duration = between(rng, 2.5, 5.5)
		s.Delay = between(rng, 0, 4)
		s.Opacity = between(rng, 0.6, 1)
	}
	return stars
}

func decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Apply writes the star's class, depth and inline style onto el
func (s Star) Apply(el view.Element) {
	px := strconv.Itoa(s.Size.Pixels()) + "px"
	el.AddClass("star", string(s.Size))
	el.SetData("depth", strconv.FormatFloat(s.Depth, 'f', 2, 64))
	el.SetStyle("left", decimal(s.Left)+"%")
	el.SetStyle("top", decimal(s.Top)+"%")
	el.SetStyle("width", px)
	el.SetStyle("height", px)
	el.SetStyle("opacity", strconv.FormatFloat(s.Opacity, 'f', 2, 64))
	el.SetStyle("animation-duration", decimal(s.Duration)+"s")
	el.SetStyle("animation-delay", decimal(s.Delay)+"s")
}

// Field owns the star elements inside the sky container
type Field struct {
	page    view.Page
	sky     view.Element
	rng     *rand.Rand
	rebuild *scheduler.Debouncer
	unbind  view.Unbind

	stars      []view.Element
	generation int
}

// Mount fills the first ".sky" element with stars and regenerates them after
// resizes. A nil rng seeds one from the runtime source.
func Mount(page view.Page, sched *scheduler.Scheduler, rng *rand.Rand) (*Field, error) {
	sky := page.Query(".sky")
	if sky == nil {
		return nil, components.Missing(".sky")
	}
	if page.PrefersReducedMotion() {
		return nil, components.ErrReducedMotion
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	f := &Field{page: page, sky: sky, rng: rng}
	f.rebuild = sched.Debounce("starfield", RebuildDelay, f.Rebuild)
	f.unbind = page.OnWindow("resize", func(*view.Event) { f.rebuild.Trigger() })
	f.Rebuild()
	return f, nil
}

// Rebuild discards every star and generates a new field for the current
// viewport
func (f *Field) Rebuild() {
	w, h := f.page.ViewportSize()
	stars := Generate(f.rng, Count(w, h))

	f.sky.Clear()
	f.stars = make([]view.Element, len(stars))
	for i, s := range stars {
		el := f.sky.Append("div")
		s.Apply(el)
		f.stars[i] = el
	}
	f.generation++
}

// Stars returns the current star elements
func (f *Field) Stars() []view.Element {
	return f.stars
}

// Generation counts how many times the field has been built
func (f *Field) Generation() int {
	return f.generation
}

// Stop cancels a pending rebuild and stops listening for resizes
func (f *Field) Stop() {
	f.rebuild.Stop()
	f.unbind()
}
