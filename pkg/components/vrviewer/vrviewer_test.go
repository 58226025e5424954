package vrviewer

import (
	"errors"
	"testing"

	"github.com/recera/haven/pkg/components"
	"github.com/recera/haven/pkg/view/htmlview"
)

const tourPage = `<html><body>
<div class="vr-tabs">
  <button class="vr-tab" data-room="living">Living</button>
  <button class="vr-tab active" data-room="kitchen">Kitchen</button>
  <button class="vr-tab" data-room="attic">Attic</button>
</div>
<div id="vr-viewer">
  <img id="vr-image" src="">
  <span class="vr-hotspot" data-room="living"></span>
  <span id="vr-room-label"></span>
  <button id="vr-fullscreen">Fullscreen</button>
</div>
</body></html>`

var rooms = map[string]Room{
	"living":  {Image: "img/living.jpg", Label: "Living room"},
	"kitchen": {Image: "img/kitchen.jpg"},
}

func TestViewer_InitialRoom(t *testing.T) {
	page := htmlview.MustParse(tourPage)
	v, err := Mount(page, rooms, nil)
	if err != nil {
		t.Fatalf("Mount() error: %v", err)
	}

	if v.Room.Get() != "kitchen" {
		t.Errorf("Room = %q, want kitchen (the active tab)", v.Room.Get())
	}
	if got := page.ByID("vr-image").Attr("src"); got != "img/kitchen.jpg" {
		t.Errorf("src = %q", got)
	}
	if got := page.ByID("vr-room-label").Text(); got != "kitchen" {
		t.Errorf("label = %q, want the key when no label is set", got)
	}
}

func TestViewer_TabsAndHotspots(t *testing.T) {
	page := htmlview.MustParse(tourPage)
	v, _ := Mount(page, rooms, nil)
	tabs := page.QueryAll(".vr-tab")

	page.Query(".vr-hotspot").Click()
	if v.Room.Get() != "living" {
		t.Fatalf("Room = %q after hotspot, want living", v.Room.Get())
	}
	if got := page.ByID("vr-room-label").Text(); got != "Living room" {
		t.Errorf("label = %q", got)
	}
	if !tabs[0].HasClass("active") || tabs[1].HasClass("active") {
		t.Error("hotspot should move the active tab indicator")
	}

	// a room without an image stays put
	tabs[2].Click()
	if v.Room.Get() != "living" {
		t.Errorf("Room = %q, unknown room should be ignored", v.Room.Get())
	}
	if got := page.ByID("vr-image").Attr("src"); got != "img/living.jpg" {
		t.Errorf("src = %q after unknown room", got)
	}

	tabs[1].Click()
	if v.Room.Get() != "kitchen" {
		t.Errorf("Room = %q, want kitchen", v.Room.Get())
	}
}

func TestViewer_Drag(t *testing.T) {
	page := htmlview.MustParse(tourPage)
	v, _ := Mount(page, rooms, nil)
	img := page.ByID("vr-image")

	page.Pointer(page.Body(), "mousemove", 500, 0)
	if v.Offset() != 0 {
		t.Fatalf("moving without a drag panned to %v", v.Offset())
	}

	page.Pointer(img, "mousedown", 100, 0)
	page.Pointer(page.Body(), "mousemove", 300, 0)
	page.Pointer(page.Body(), "mousemove", 200, 0)
	if v.Offset() != 5 {
		t.Errorf("Offset() = %v, want 5", v.Offset())
	}
	if got := img.Style("transform"); got != "translateX(5px)" {
		t.Errorf("transform = %q", got)
	}

	// mouse-up anywhere ends the drag
	page.Pointer(page.Body(), "mouseup", 200, 0)
	if v.Dragging() {
		t.Fatal("drag still active after mouseup")
	}
	page.Pointer(page.Body(), "mousemove", 900, 0)
	if v.Offset() != 5 {
		t.Errorf("Offset() = %v after drag ended", v.Offset())
	}

	// a new gesture keeps the earlier offset
	page.Pointer(img, "mousedown", 0, 0)
	page.Pointer(page.Body(), "mousemove", 100, 0)
	if v.Offset() != 10 {
		t.Errorf("Offset() = %v, want 10 (accumulated)", v.Offset())
	}
}

func TestViewer_Fullscreen(t *testing.T) {
	page := htmlview.MustParse(tourPage)
	Mount(page, rooms, nil)

	page.ByID("vr-fullscreen").Click()
	got := page.Fullscreened()
	if len(got) != 1 || !got[0].Same(page.ByID("vr-viewer")) {
		t.Errorf("Fullscreened() = %v, want the viewer container", got)
	}

	page.SetFullscreenSupported(false)
	page.ByID("vr-fullscreen").Click()
	if len(page.Fullscreened()) != 1 {
		t.Error("unsupported fullscreen should be ignored")
	}
}

func TestViewer_Inert(t *testing.T) {
	bare := htmlview.MustParse(`<html><body><div id="vr-viewer"></div></body></html>`)
	if _, err := Mount(bare, rooms, nil); !errors.Is(err, components.ErrMissingMarkup) {
		t.Errorf("Mount() without image = %v, want ErrMissingMarkup", err)
	}
}
