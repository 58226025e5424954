package site

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/recera/haven/pkg/components"
	"github.com/recera/haven/pkg/scheduler"
	"github.com/recera/haven/pkg/view/htmlview"
)

const partialPage = `<html><body>
<header id="site-header"><button id="menu-toggle">Menu</button></header>
<nav id="mobile-drawer"><button id="drawer-close">x</button></nav>
<div id="drawer-overlay"></div>
<div class="stat reveal"><span class="stat-number" data-target="160">0</span></div>
<footer><span id="year"></span></footer>
</body></html>`

func mountPartial(t *testing.T) (*Site, *htmlview.Page, *scheduler.Manual) {
	t.Helper()
	page := htmlview.MustParse(partialPage)
	clock := scheduler.NewManual()
	s := Mount(page, scheduler.NewScheduler(clock), Default(), Options{
		Now:  time.Date(2031, 6, 1, 0, 0, 0, 0, time.UTC),
		Rand: rand.New(rand.NewPCG(1, 2)),
	})
	return s, page, clock
}

func TestMountPartialPage(t *testing.T) {
	s, page, _ := mountPartial(t)

	active := map[string]bool{}
	for _, name := range s.Active() {
		active[name] = true
	}
	for _, want := range []string{Year, Header, Drawer, Reveal, Counters} {
		if !active[want] {
			t.Errorf("%s not active", want)
		}
	}
	if got := len(s.Results()); got != 13 {
		t.Errorf("Results() = %d entries, want 13", got)
	}
	for _, r := range s.Inert() {
		if !errors.Is(r.Err, components.ErrMissingMarkup) {
			t.Errorf("%s inert with %v, want ErrMissingMarkup", r.Component, r.Err)
		}
	}
	if got := page.ByID("year").Text(); got != "2031" {
		t.Errorf("year = %q, want 2031", got)
	}
}

func TestMountResultsInOrder(t *testing.T) {
	s, _, _ := mountPartial(t)
	want := []string{Year, Header, Drawer, Modal, Starfield, Parallax, Tabs, Carousels, Filter, MapView, Tour, Reveal, Counters}
	for i, r := range s.Results() {
		if r.Component != want[i] {
			t.Errorf("Results()[%d] = %s, want %s", i, r.Component, want[i])
		}
	}
}

func TestStopHaltsAnimations(t *testing.T) {
	s, page, clock := mountPartial(t)

	page.Intersect(1, page.QueryAll(".stat-number")...)
	clock.Advance(components.CounterTick)
	stat := page.Query(".stat-number")
	mid := stat.Text()
	if mid == "0" || mid == components.FormatCount(160) {
		t.Fatalf("counter text after one tick = %q, want an intermediate value", mid)
	}

	s.Stop()
	clock.Advance(time.Second)
	if got := stat.Text(); got != mid {
		t.Errorf("counter advanced after Stop: %q -> %q", mid, got)
	}
}
