package components

import "testing"

func TestIsScrolled(t *testing.T) {
	tests := []struct {
		y    float64
		want bool
	}{
		{0, false},
		{40, false},
		{40.5, true},
		{900, true},
	}
	for _, tt := range tests {
		if got := IsScrolled(tt.y); got != tt.want {
			t.Errorf("IsScrolled(%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestHeader_Scroll(t *testing.T) {
	page, _, _ := newSite(t)
	page.ScrollTo(120)

	h, err := MountHeader(page, "")
	if err != nil {
		t.Fatalf("MountHeader() error: %v", err)
	}
	header := page.ByID("site-header")
	if !header.HasClass("scrolled") {
		t.Error("mount should sync with the current offset")
	}

	page.ScrollTo(40)
	if header.HasClass("scrolled") || h.Scrolled.Get() {
		t.Error("offset 40 should not count as scrolled")
	}
	page.ScrollTo(41)
	if !header.HasClass("scrolled") {
		t.Error("offset 41 should count as scrolled")
	}
}
