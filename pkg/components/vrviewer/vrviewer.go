// Package vrviewer shows one room of a virtual tour at a time. Rooms are
// picked from tab buttons or from hotspots inside the image, the image pans
// horizontally while dragged, and the viewer can go fullscreen.
package vrviewer

import (
	"strconv"

	"github.com/recera/haven/pkg/components"
	"github.com/recera/haven/pkg/reactive"
	"github.com/recera/haven/pkg/view"
)

// DragScale converts pointer travel into pan offset
const DragScale = 0.05

// Room is one stop of the tour
type Room struct {
	Image string `yaml:"image" koanf:"image"`
	Label string `yaml:"label,omitempty" koanf:"label"`
}

// Options names the markup the viewer binds to
type Options struct {
	ViewerID     string // fullscreen target, default "vr-viewer"
	ImageID      string // default "vr-image"
	LabelID      string // active-room indicator, default "vr-room-label"
	FullscreenID string // default "vr-fullscreen"
	Tabs         string // default ".vr-tab" (data-room)
	Hotspots     string // default ".vr-hotspot" (data-room)
}

func (o *Options) withDefaults() Options {
	d := Options{
		ViewerID:     "vr-viewer",
		ImageID:      "vr-image",
		LabelID:      "vr-room-label",
		FullscreenID: "vr-fullscreen",
		Tabs:         ".vr-tab",
		Hotspots:     ".vr-hotspot",
	}
	if o == nil {
		return d
	}
	if o.ViewerID != "" {
		d.ViewerID = o.ViewerID
	}
	if o.ImageID != "" {
		d.ImageID = o.ImageID
	}
	if o.LabelID != "" {
		d.LabelID = o.LabelID
	}
	if o.FullscreenID != "" {
		d.FullscreenID = o.FullscreenID
	}
	if o.Tabs != "" {
		d.Tabs = o.Tabs
	}
	if o.Hotspots != "" {
		d.Hotspots = o.Hotspots
	}
	return d
}

// Viewer is a mounted room viewer. The pan offset survives room changes and
// separate drags.
type Viewer struct {
	rooms  map[string]Room
	viewer view.Element
	image  view.Element
	label  view.Element
	tabs   []view.Element

	dragging bool
	lastX    float64
	offset   float64

	// Room is the key of the room on display
	Room *reactive.State[string]
}

// Mount binds the viewer. The room already marked by an active tab, or else
// the first tab, is shown.
func Mount(page view.Page, rooms map[string]Room, opts *Options) (*Viewer, error) {
	o := opts.withDefaults()
	els, err := components.Require(page, o.ViewerID, o.ImageID)
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		rooms:  rooms,
		viewer: els[0],
		image:  els[1],
		label:  page.ByID(o.LabelID),
		tabs:   page.QueryAll(o.Tabs),
		Room:   reactive.NewState("vr-room", ""),
	}
	v.Room.Watch(func(_, key string) { v.render(key) })

	for _, el := range append(page.QueryAll(o.Tabs), page.QueryAll(o.Hotspots)...) {
		el := el
		el.On("click", func(*view.Event) { v.Show(el.Data("room")) })
	}

	v.image.On("mousedown", func(ev *view.Event) {
		v.dragging = true
		v.lastX = ev.ClientX
	})
	page.OnDocument("mousemove", func(ev *view.Event) {
		if v.dragging {
			v.Drag(ev.ClientX)
		}
	})
	page.OnWindow("mouseup", func(*view.Event) { v.dragging = false })

	if btn := page.ByID(o.FullscreenID); btn != nil {
		btn.On("click", func(*view.Event) { v.Fullscreen() })
	}

	for _, tab := range v.tabs {
		if tab.HasClass("active") {
			v.Show(tab.Data("room"))
			return v, nil
		}
	}
	if len(v.tabs) > 0 {
		v.Show(v.tabs[0].Data("room"))
	}
	return v, nil
}

// Show switches to the room with the given key. Unknown keys are ignored.
func (v *Viewer) Show(key string) bool {
	if _, ok := v.rooms[key]; !ok {
		return false
	}
	v.Room.Set(key)
	return true
}

// Drag pans the image by the travel since the last position
func (v *Viewer) Drag(x float64) {
	v.offset += (x - v.lastX) * DragScale
	v.lastX = x
	v.image.SetStyle("transform", "translateX("+strconv.FormatFloat(v.offset, 'f', -1, 64)+"px)")
}

// Dragging reports whether a drag is in progress
func (v *Viewer) Dragging() bool {
	return v.dragging
}

// Offset returns the accumulated pan offset in pixels
func (v *Viewer) Offset() float64 {
	return v.offset
}

// Fullscreen asks for the viewer container to fill the screen. Platforms
// without the capability are ignored.
func (v *Viewer) Fullscreen() {
	if !v.viewer.RequestFullscreen() && debugLog != nil {
		debugLog("[VR] fullscreen unavailable")
	}
}

func (v *Viewer) render(key string) {
	room := v.rooms[key]
	v.image.SetAttr("src", room.Image)
	label := room.Label
	if label == "" {
		label = key
	}
	v.image.SetAttr("alt", label)
	if v.label != nil {
		v.label.SetText(label)
	}
	for _, tab := range v.tabs {
		if tab.Data("room") == key {
			tab.AddClass("active")
		} else {
			tab.RemoveClass("active")
		}
	}
}

// debugLog is set by platform-specific code
var debugLog func(args ...interface{})

// SetDebugLog sets the debug logging function
func SetDebugLog(fn func(args ...interface{})) {
	debugLog = fn
}
