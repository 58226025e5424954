// Package components binds the site's interactive behaviours to existing page
// markup through a view.Page. Each Mount function finds the elements it needs,
// wires its event handlers once and returns a handle owning that component's
// state. When required markup is absent the component stays inert: Mount
// returns an error wrapping ErrMissingMarkup and binds nothing.
package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/recera/haven/pkg/view"
)

var (
	// ErrMissingMarkup means an element the component needs is not on the page
	ErrMissingMarkup = errors.New("missing markup")
	// ErrReducedMotion means the visitor asked for reduced motion
	ErrReducedMotion = errors.New("reduced motion preferred")
)

// debugLog is set by platform-specific code
var debugLog func(args ...interface{})

// SetDebugLog sets the debug logging function
func SetDebugLog(fn func(args ...interface{})) {
	debugLog = fn
}

// Missing builds the error returned when selectors match nothing
func Missing(selectors ...string) error {
	return fmt.Errorf("%w: %s", ErrMissingMarkup, strings.Join(selectors, ", "))
}

// Require looks up each id and reports the ones that are absent
func Require(page view.Page, ids ...string) ([]view.Element, error) {
	els := make([]view.Element, len(ids))
	var absent []string
	for i, id := range ids {
		els[i] = page.ByID(id)
		if els[i] == nil {
			absent = append(absent, "#"+id)
		}
	}
	if len(absent) > 0 {
		return nil, Missing(absent...)
	}
	return els, nil
}

// show and hide toggle an element with a class, mirroring the stylesheet's
// .open / .show conventions.
func show(el view.Element, class string) {
	if el != nil {
		el.AddClass(class)
	}
}

func hide(el view.Element, class string) {
	if el != nil {
		el.RemoveClass(class)
	}
}
