package dom

import "github.com/recera/haven/pkg/view"

// eagerObserver stands in for IntersectionObserver. Elements observed before
// the deferred flush are reported together, fully visible, in observe order.
type eagerObserver struct {
	later   func(fn func())
	cb      func([]view.Intersection)
	pending []view.Element
	done    bool
}

func newEagerObserver(later func(fn func()), cb func([]view.Intersection)) *eagerObserver {
	return &eagerObserver{later: later, cb: cb}
}

func (o *eagerObserver) Observe(el view.Element) {
	if o.done || el == nil {
		return
	}
	o.pending = append(o.pending, el)
	if len(o.pending) == 1 {
		o.later(o.flush)
	}
}

func (o *eagerObserver) Unobserve(el view.Element) {
	for i, candidate := range o.pending {
		if candidate.Same(el) {
			o.pending = append(o.pending[:i], o.pending[i+1:]...)
			return
		}
	}
}

func (o *eagerObserver) Disconnect() {
	o.done = true
	o.pending = nil
}

func (o *eagerObserver) flush() {
	batch := o.pending
	o.pending = nil
	if o.done || len(batch) == 0 {
		return
	}
	entries := make([]view.Intersection, len(batch))
	for i, el := range batch {
		entries[i] = view.Intersection{Target: el, Ratio: 1, Intersecting: true}
	}
	o.cb(entries)
}
