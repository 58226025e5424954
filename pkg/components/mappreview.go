package components

import (
	"github.com/recera/haven/pkg/reactive"
	"github.com/recera/haven/pkg/view"
)

// MapPreview reveals an info panel when a map pin is clicked. The panel is not
// positioned relative to the pin.
type MapPreview struct {
	panel   view.Element
	Visible *reactive.State[bool]
}

// MountMapPreview binds ".map-pin" elements inside the canvas (default id
// "map-canvas") to the preview panel (default id "map-preview").
func MountMapPreview(page view.Page, canvasID, previewID string) (*MapPreview, error) {
	if canvasID == "" {
		canvasID = "map-canvas"
	}
	if previewID == "" {
		previewID = "map-preview"
	}
	els, err := Require(page, canvasID, previewID)
	if err != nil {
		return nil, err
	}
	canvas := els[0]

	m := &MapPreview{panel: els[1], Visible: reactive.NewState("map-preview", false)}
	m.Visible.Watch(func(_, on bool) {
		if on {
			m.panel.AddClass("show")
		} else {
			m.panel.RemoveClass("show")
		}
	})

	for _, pin := range canvas.QueryAll(".map-pin") {
		pin.On("click", func(ev *view.Event) {
			// keep the canvas handler from hiding what we just showed
			ev.StopPropagation()
			m.Visible.Set(true)
		})
	}
	canvas.On("click", func(*view.Event) { m.Visible.Set(false) })
	return m, nil
}
