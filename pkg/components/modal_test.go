package components

import "testing"

func TestModal_OpenClose(t *testing.T) {
	page, _, _ := newSite(t)
	m, err := MountModal(page, features, nil)
	if err != nil {
		t.Fatalf("MountModal() error: %v", err)
	}
	overlay := page.ByID("feature-modal-overlay")

	page.Query(`[data-feature="pool"]`).Click()
	if !overlay.HasClass("open") {
		t.Fatal("overlay should be open after card click")
	}
	if got := page.ByID("modal-title").Text(); got != "Infinity Pool" {
		t.Errorf("title = %q, want Infinity Pool", got)
	}
	if got := page.ByID("modal-icon").Text(); got != "~" {
		t.Errorf("icon = %q, want ~", got)
	}
	if got := page.ByID("modal-content-text").Text(); got != "Heated all year." {
		t.Errorf("content = %q", got)
	}
	if got := page.Body().Style("overflow"); got != "hidden" {
		t.Errorf("body overflow = %q, want hidden", got)
	}
	if m.Current.Get() != "pool" {
		t.Errorf("Current = %q, want pool", m.Current.Get())
	}

	// clicks inside the panel bubble to the overlay but must not close it
	page.Query(".modal").Click()
	if !m.IsOpen() {
		t.Error("click inside the panel closed the modal")
	}

	overlay.Click()
	if m.IsOpen() || overlay.HasClass("open") {
		t.Error("backdrop click should close the modal")
	}
	if got := page.Body().Style("overflow"); got != "" {
		t.Errorf("body overflow after close = %q, want empty", got)
	}
}

func TestModal_CloseButton(t *testing.T) {
	page, _, _ := newSite(t)
	m, _ := MountModal(page, features, nil)

	m.Open("pool")
	page.Query(".modal-close").Click()
	if m.IsOpen() {
		t.Error("close button should close the modal")
	}
}

func TestModal_UnknownKey(t *testing.T) {
	page, _, _ := newSite(t)
	m, _ := MountModal(page, features, nil)

	if m.Open("ghost") {
		t.Error("Open(ghost) = true, want false")
	}
	if page.ByID("feature-modal-overlay").HasClass("open") {
		t.Error("unknown key opened the overlay")
	}

	m.Open("pool")
	page.Query(`[data-feature="ghost"]`).Click()
	if got := page.ByID("modal-title").Text(); got != "Infinity Pool" {
		t.Errorf("title changed to %q on unknown key", got)
	}
	if m.Current.Get() != "pool" {
		t.Errorf("Current = %q, want pool", m.Current.Get())
	}
}
