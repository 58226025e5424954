package components

import (
	"time"

	"github.com/recera/haven/pkg/scheduler"
	"github.com/recera/haven/pkg/view"
)

const (
	// RevealThreshold is the visible fraction that reveals a card
	RevealThreshold = 0.25
	// RevealStagger delays each card of a batch after the previous one
	RevealStagger = 150 * time.Millisecond
	// RevealClass is added once a card is revealed
	RevealClass = "visible"
)

// Reveal fades cards in as they scroll into view. Cards revealed together
// cascade in index order.
type Reveal struct {
	sched    *scheduler.Scheduler
	observer view.Observer
	pending  []*scheduler.Task
}

// MountReveal observes every element matching selector (default ".reveal")
func MountReveal(page view.Page, sched *scheduler.Scheduler, selector string) (*Reveal, error) {
	if selector == "" {
		selector = ".reveal"
	}
	cards := page.QueryAll(selector)
	if len(cards) == 0 {
		return nil, Missing(selector)
	}

	r := &Reveal{sched: sched}
	r.observer = page.NewObserver(RevealThreshold, r.onIntersect)
	for _, card := range cards {
		r.observer.Observe(card)
	}
	return r, nil
}

func (r *Reveal) onIntersect(entries []view.Intersection) {
	i := 0
	for _, entry := range entries {
		if !entry.Intersecting {
			continue
		}
		el := entry.Target
		r.observer.Unobserve(el)
		r.pending = append(r.pending, r.sched.After("reveal", time.Duration(i)*RevealStagger, func() {
			el.AddClass(RevealClass)
		}))
		i++
	}
}

// Stop cancels pending reveals and stops observing
func (r *Reveal) Stop() {
	for _, t := range r.pending {
		t.Stop()
	}
	r.pending = nil
	r.observer.Disconnect()
}
