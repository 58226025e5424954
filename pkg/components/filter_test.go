package components

import (
	"testing"

	"github.com/recera/haven/pkg/view"
)

func ids(els []view.Element) []string {
	out := make([]string, len(els))
	for i, el := range els {
		out[i] = el.Data("id")
	}
	return out
}

func TestFilter_DefaultMode(t *testing.T) {
	page, _, _ := newSite(t)
	f, err := MountFilter(page, nil)
	if err != nil {
		t.Fatalf("MountFilter() error: %v", err)
	}

	visible := f.Visible()
	if len(visible) != 1 || visible[0].Data("id") != "villa 1" {
		t.Errorf("visible = %v, want [villa 1]", ids(visible))
	}
	if !page.Query(`.mode-btn[data-mode="buy"]`).HasClass("active") {
		t.Error("buy button should start active")
	}
	if len(page.ScrolledIntoView()) != 0 {
		t.Error("mounting should not scroll")
	}
}

func TestFilter_Select(t *testing.T) {
	page, _, _ := newSite(t)
	f, _ := MountFilter(page, nil)

	page.Query(`.mode-btn[data-mode="rent"]`).Click()

	visible := f.Visible()
	if len(visible) != 2 {
		t.Fatalf("visible = %v, want the two rentals", ids(visible))
	}
	for _, card := range visible {
		if card.Data("category") != "rent" || !card.HasClass("fade-in") {
			t.Errorf("card %s shown without fade-in or wrong category", card.Data("id"))
		}
	}
	if page.Query(`.mode-btn[data-mode="buy"]`).HasClass("active") {
		t.Error("buy button still active")
	}
	scrolled := page.ScrolledIntoView()
	if len(scrolled) != 1 || !scrolled[0].Same(page.ByID("property-results")) {
		t.Error("results should be scrolled into view")
	}

	f.Select("commercial")
	if len(f.Visible()) != 0 {
		t.Errorf("unknown mode should hide every card, got %v", ids(f.Visible()))
	}
}

func TestFilter_CardNavigates(t *testing.T) {
	page, _, _ := newSite(t)
	MountFilter(page, nil)

	page.Query(`.property-card[data-id="villa 1"]`).Click()
	nav := page.Navigations()
	if len(nav) != 1 || nav[0] != "property.html?id=villa+1" {
		t.Errorf("Navigations() = %v", nav)
	}
}
