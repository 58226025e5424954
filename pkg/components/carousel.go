package components

import (
	"github.com/recera/haven/pkg/view"
)

const (
	// CarouselGap is the spacing added to a card's width
	CarouselGap = 16
	// CarouselStride multiplies the card step per button press
	CarouselStride = 1.6
	// CarouselKeyStep is the fixed arrow-key scroll distance
	CarouselKeyStep = 300
)

// DefaultCarousels maps control data-target keys to carousel container ids
var DefaultCarousels = map[string]string{
	"sale":     "carousel-sale",
	"rent":     "carousel-rent",
	"services": "carousel-services",
	"projects": "carousel-projects",
}

// Carousels wires directional controls and keyboard scrolling for every
// horizontally scrolling card strip on the page.
type Carousels struct {
	page    view.Page
	targets map[string]string
}

// MountCarousels binds ".carousel-control" buttons through targets (nil uses
// DefaultCarousels) and arrow keys on each focused ".carousel".
func MountCarousels(page view.Page, targets map[string]string) (*Carousels, error) {
	if targets == nil {
		targets = DefaultCarousels
	}
	controls := page.QueryAll(".carousel-control")
	strips := page.QueryAll(".carousel")
	if len(controls) == 0 && len(strips) == 0 {
		return nil, Missing(".carousel-control", ".carousel")
	}

	c := &Carousels{page: page, targets: targets}
	for _, ctrl := range controls {
		ctrl := ctrl
		ctrl.On("click", func(*view.Event) {
			dir := -1.0
			if ctrl.HasClass("right") {
				dir = 1
			}
			c.Scroll(ctrl.Data("target"), dir)
		})
	}
	for _, strip := range strips {
		strip := strip
		strip.On("keydown", func(ev *view.Event) {
			switch ev.Key {
			case "ArrowRight":
				strip.ScrollBy(CarouselKeyStep, true)
			case "ArrowLeft":
				strip.ScrollBy(-CarouselKeyStep, true)
			}
		})
	}
	return c, nil
}

// Scroll moves the carousel registered under key one step in direction dir
// (+1 forward, -1 back). Unknown keys and missing containers are ignored.
func (c *Carousels) Scroll(key string, dir float64) {
	id, ok := c.targets[key]
	if !ok {
		return
	}
	el := c.page.ByID(id)
	if el == nil {
		return
	}
	el.ScrollBy(ScrollStep(el, dir), true)
}

// ScrollStep computes the signed distance for one button press: the first
// card's width (or 90% of the container) plus the gap, times the stride.
func ScrollStep(el view.Element, dir float64) float64 {
	var width float64
	if card := el.Query(".card"); card != nil {
		width = card.OffsetWidth()
	} else {
		width = el.ClientWidth() * 0.9
	}
	step := (width + CarouselGap) * CarouselStride
	if dir < 0 {
		return -step
	}
	return step
}
