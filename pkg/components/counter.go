package components

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/recera/haven/pkg/scheduler"
	"github.com/recera/haven/pkg/view"
)

const (
	// CounterThreshold is the visible fraction that starts a count-up
	CounterThreshold = 0.4
	// CounterTick is the interval between increments
	CounterTick = 20 * time.Millisecond
	// CounterSteps is the number of increments a count-up takes
	CounterSteps = 80
)

var counterPrinter = message.NewPrinter(language.English)

// CounterIncrement is ceil(target/CounterSteps), never below 1
func CounterIncrement(target int) int {
	step := (target + CounterSteps - 1) / CounterSteps
	if step < 1 {
		return 1
	}
	return step
}

// Grouped formats n with thousands separators
func Grouped(n int) string {
	return counterPrinter.Sprintf("%d", n)
}

// FormatCount is the final counter text, e.g. "2,500+"
func FormatCount(n int) string {
	return Grouped(n) + "+"
}

// Counters animates stat numbers up to their data-target once they are
// visible. Each element counts at most once.
type Counters struct {
	sched    *scheduler.Scheduler
	observer view.Observer
	running  []*scheduler.Task
}

// MountCounters observes every element matching selector (default
// ".stat-number") that carries a numeric data-target
func MountCounters(page view.Page, sched *scheduler.Scheduler, selector string) (*Counters, error) {
	if selector == "" {
		selector = ".stat-number"
	}
	stats := page.QueryAll(selector)
	if len(stats) == 0 {
		return nil, Missing(selector)
	}

	c := &Counters{sched: sched}
	c.observer = page.NewObserver(CounterThreshold, c.onIntersect)
	for _, el := range stats {
		if _, ok := parseTarget(el); ok {
			c.observer.Observe(el)
		}
	}
	return c, nil
}

func parseTarget(el view.Element) (int, bool) {
	raw := strings.ReplaceAll(strings.TrimSpace(el.Data("target")), ",", "")
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func (c *Counters) onIntersect(entries []view.Intersection) {
	for _, entry := range entries {
		if !entry.Intersecting {
			continue
		}
		el := entry.Target
		c.observer.Unobserve(el)
		if target, ok := parseTarget(el); ok {
			c.running = append(c.running, c.Start(el, target))
		}
	}
}

// Start counts el up to target, one increment per tick
func (c *Counters) Start(el view.Element, target int) *scheduler.Task {
	step := CounterIncrement(target)
	current := 0
	return c.sched.Every("counter", CounterTick, func() bool {
		current += step
		if current >= target {
			el.SetText(FormatCount(target))
			return false
		}
		el.SetText(Grouped(current))
		return true
	})
}

// Stop halts running count-ups and stops observing
func (c *Counters) Stop() {
	for _, t := range c.running {
		t.Stop()
	}
	c.running = nil
	c.observer.Disconnect()
}
