package site

import (
	"math/rand/v2"
	"time"

	"github.com/recera/haven/pkg/components"
	"github.com/recera/haven/pkg/components/parallax"
	"github.com/recera/haven/pkg/components/starfield"
	"github.com/recera/haven/pkg/components/vrviewer"
	"github.com/recera/haven/pkg/scheduler"
	"github.com/recera/haven/pkg/view"
)

// Component names used in mount results
const (
	Year      = "year"
	Header    = "header"
	Drawer    = "drawer"
	Modal     = "modal"
	Starfield = "starfield"
	Parallax  = "parallax"
	Tabs      = "tabs"
	Carousels = "carousels"
	Filter    = "filter"
	MapView   = "map"
	Tour      = "tour"
	Reveal    = "reveal"
	Counters  = "counters"
)

// debugLog is set by platform-specific code
var debugLog func(args ...interface{})

// SetDebugLog sets the debug logging function
func SetDebugLog(fn func(args ...interface{})) {
	debugLog = fn
}

// Options tune Mount. The zero value uses the wall clock and a random seed.
type Options struct {
	Now  time.Time
	Rand *rand.Rand
}

// Result records whether one component mounted. Err is nil for active
// components and says why the others are inert.
type Result struct {
	Component string
	Err       error
}

// Active reports whether the component is running
func (r Result) Active() bool {
	return r.Err == nil
}

// Site is every component mounted on one page
type Site struct {
	sched   *scheduler.Scheduler
	results []Result

	Modal     *components.Modal
	Drawer    *components.Drawer
	Header    *components.Header
	Tabs      *components.Tabs
	Carousels *components.Carousels
	Filter    *components.Filter
	Map       *components.MapPreview
	Reveal    *components.Reveal
	Counters  *components.Counters
	Starfield *starfield.Field
	Parallax  *parallax.Engine
	Tour      *vrviewer.Viewer
}

func (s *Site) record(name string, err error) {
	s.results = append(s.results, Result{Component: name, Err: err})
	if err != nil && debugLog != nil {
		debugLog("[Site]", name, "inert:", err.Error())
	}
}

// Mount binds every component to page. A component whose markup is missing,
// or that honours reduced motion, is recorded as inert and the rest still
// mount.
func Mount(page view.Page, sched *scheduler.Scheduler, c Content, opts Options) *Site {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	s := &Site{sched: sched}
	var err error

	s.record(Year, components.StampYear(page, opts.Now))

	s.Header, err = components.MountHeader(page, "")
	s.record(Header, err)
	s.Drawer, err = components.MountDrawer(page, nil)
	s.record(Drawer, err)
	s.Modal, err = components.MountModal(page, c.Features, nil)
	s.record(Modal, err)

	s.Starfield, err = starfield.Mount(page, sched, opts.Rand)
	s.record(Starfield, err)
	po := &parallax.Options{}
	if s.Starfield != nil {
		po.Stars = s.Starfield
	}
	s.Parallax, err = parallax.Mount(page, sched, po)
	s.record(Parallax, err)

	s.Tabs, err = components.MountTabs(page, "", "")
	s.record(Tabs, err)
	s.Carousels, err = components.MountCarousels(page, c.CarouselTargets())
	s.record(Carousels, err)
	s.Filter, err = components.MountFilter(page, &components.FilterOptions{Default: c.DefaultMode})
	s.record(Filter, err)
	s.Map, err = components.MountMapPreview(page, "", "")
	s.record(MapView, err)
	s.Tour, err = vrviewer.Mount(page, c.Rooms, nil)
	s.record(Tour, err)

	s.Reveal, err = components.MountReveal(page, sched, "")
	s.record(Reveal, err)
	s.Counters, err = components.MountCounters(page, sched, "")
	s.record(Counters, err)

	if debugLog != nil {
		debugLog("[Site] mounted", len(s.Active()), "of", len(s.results), "components")
	}
	return s
}

// Results lists every component in mount order
func (s *Site) Results() []Result {
	return s.results
}

// Active returns the names of the running components
func (s *Site) Active() []string {
	var names []string
	for _, r := range s.results {
		if r.Active() {
			names = append(names, r.Component)
		}
	}
	return names
}

// Inert returns the components that did not mount
func (s *Site) Inert() []Result {
	var out []Result
	for _, r := range s.results {
		if !r.Active() {
			out = append(out, r)
		}
	}
	return out
}

// Stop ends every animation and pending task
func (s *Site) Stop() {
	if s.Parallax != nil {
		s.Parallax.Stop()
	}
	if s.Starfield != nil {
		s.Starfield.Stop()
	}
	if s.Reveal != nil {
		s.Reveal.Stop()
	}
	if s.Counters != nil {
		s.Counters.Stop()
	}
	s.sched.StopAll()
}
