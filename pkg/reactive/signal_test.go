package reactive

import (
	"testing"
)

func TestState_GetSet(t *testing.T) {
	state := NewState("count", 42)

	// Test initial value
	if got := state.Get(); got != 42 {
		t.Errorf("Expected initial value 42, got %d", got)
	}

	// Test set
	state.Set(100)
	if got := state.Get(); got != 100 {
		t.Errorf("Expected value 100 after Set, got %d", got)
	}

	if state.Name() != "count" {
		t.Errorf("Name() = %q, want %q", state.Name(), "count")
	}
}

func TestState_Watch(t *testing.T) {
	state := NewState("mode", "buy")

	var seen [][2]string
	stop := state.Watch(func(prev, next string) {
		seen = append(seen, [2]string{prev, next})
	})

	state.Set("rent")
	state.Set("build")

	if len(seen) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(seen))
	}
	if seen[0] != [2]string{"buy", "rent"} || seen[1] != [2]string{"rent", "build"} {
		t.Errorf("unexpected notifications %v", seen)
	}

	stop()
	state.Set("buy")
	if len(seen) != 2 {
		t.Errorf("watcher called after removal: %v", seen)
	}
}

func TestState_WatchOrder(t *testing.T) {
	state := NewState("open", false)

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		state.Watch(func(_, _ bool) { order = append(order, i) })
	}
	state.Set(true)

	for i, got := range order {
		if got != i {
			t.Fatalf("watchers ran out of order: %v", order)
		}
	}
}

func TestState_Update(t *testing.T) {
	state := NewState("offset", 10.0)

	var last float64
	state.Watch(func(_, next float64) { last = next })

	state.Update(func(v float64) float64 {
		return v * 2
	})

	if got := state.Get(); got != 20 {
		t.Errorf("Expected 20 after update, got %v", got)
	}
	if last != 20 {
		t.Errorf("watcher saw %v, want 20", last)
	}
}

func TestBatch_CoalescesNotifications(t *testing.T) {
	a := NewState("a", 0)
	b := NewState("b", "")

	var aCalls, bCalls int
	var aPrev, aNext int
	a.Watch(func(prev, next int) {
		aCalls++
		aPrev, aNext = prev, next
	})
	b.Watch(func(_, _ string) { bCalls++ })

	RunBatch(func() {
		a.Set(1)
		a.Set(2)
		a.Set(3)
		b.Set("x")

		if aCalls != 0 || bCalls != 0 {
			t.Errorf("watchers ran inside batch: a=%d b=%d", aCalls, bCalls)
		}
	})

	if aCalls != 1 || bCalls != 1 {
		t.Errorf("Expected one notification each, got a=%d b=%d", aCalls, bCalls)
	}
	if aPrev != 0 || aNext != 3 {
		t.Errorf("batched notification = (%d, %d), want (0, 3)", aPrev, aNext)
	}

	a.Set(4)
	if aCalls != 2 {
		t.Errorf("Expected immediate notification after batch, got %d", aCalls)
	}
}
