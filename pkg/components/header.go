package components

import (
	"github.com/recera/haven/pkg/reactive"
	"github.com/recera/haven/pkg/view"
)

// ScrolledThreshold is the vertical offset past which the header is "scrolled"
const ScrolledThreshold = 40

// Header toggles the header's scrolled class from the window scroll offset.
// One boundary, no hysteresis and no debounce.
type Header struct {
	el       view.Element
	class    string
	Scrolled *reactive.State[bool]
}

// MountHeader binds the window scroll listener to the element with the given
// id (default "site-header")
func MountHeader(page view.Page, id string) (*Header, error) {
	if id == "" {
		id = "site-header"
	}
	els, err := Require(page, id)
	if err != nil {
		return nil, err
	}

	h := &Header{el: els[0], class: "scrolled", Scrolled: reactive.NewState("header", false)}
	h.Scrolled.Watch(func(_, on bool) {
		if on {
			h.el.AddClass(h.class)
		} else {
			h.el.RemoveClass(h.class)
		}
	})

	sync := func(*view.Event) { h.Scrolled.Set(IsScrolled(page.ScrollY())) }
	page.OnWindow("scroll", sync)
	sync(nil)
	return h, nil
}

// IsScrolled reports whether offset y is past the threshold
func IsScrolled(y float64) bool {
	return y > ScrolledThreshold
}
