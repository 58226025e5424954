package scheduler

import (
	"testing"
	"time"
)

func TestScheduler_After(t *testing.T) {
	clock := NewManual()
	sched := NewScheduler(clock)

	fired := 0
	task := sched.After("once", 100*time.Millisecond, func() { fired++ })

	if !task.Running() {
		t.Fatal("task should be running before it fires")
	}
	if sched.TaskCount() != 1 {
		t.Errorf("Expected 1 task, got %d", sched.TaskCount())
	}

	clock.Advance(99 * time.Millisecond)
	if fired != 0 {
		t.Errorf("fired early: %d", fired)
	}

	clock.Advance(1 * time.Millisecond)
	if fired != 1 {
		t.Errorf("Expected 1 run, got %d", fired)
	}
	if task.Running() {
		t.Error("one-shot task should not be running after firing")
	}
	if sched.TaskCount() != 0 {
		t.Errorf("Expected 0 tasks, got %d", sched.TaskCount())
	}
}

func TestScheduler_StopBeforeFire(t *testing.T) {
	clock := NewManual()
	sched := NewScheduler(clock)

	fired := false
	task := sched.After("cancelled", 50*time.Millisecond, func() { fired = true })
	task.Stop()
	task.Stop() // idempotent

	clock.Advance(time.Second)
	if fired {
		t.Error("stopped task fired")
	}
	if clock.PendingTimers() != 0 {
		t.Errorf("Expected no pending timers, got %d", clock.PendingTimers())
	}
}

func TestScheduler_Every(t *testing.T) {
	clock := NewManual()
	sched := NewScheduler(clock)

	ticks := 0
	task := sched.Every("tick", 20*time.Millisecond, func() bool {
		ticks++
		return ticks < 5
	})

	clock.Advance(60 * time.Millisecond)
	if ticks != 3 {
		t.Errorf("Expected 3 ticks after 60ms, got %d", ticks)
	}

	clock.Advance(time.Second)
	if ticks != 5 {
		t.Errorf("Expected ticking to stop at 5, got %d", ticks)
	}
	if task.Running() {
		t.Error("task should stop once fn returns false")
	}
}

func TestScheduler_EveryStop(t *testing.T) {
	clock := NewManual()
	sched := NewScheduler(clock)

	ticks := 0
	task := sched.Every("tick", 10*time.Millisecond, func() bool {
		ticks++
		return true
	})
	clock.Advance(30 * time.Millisecond)
	task.Stop()
	clock.Advance(100 * time.Millisecond)

	if ticks != 3 {
		t.Errorf("Expected 3 ticks, got %d", ticks)
	}
}

func TestScheduler_Frames(t *testing.T) {
	clock := NewManual()
	sched := NewScheduler(clock)

	var stamps []float64
	task := sched.Frames("loop", func(ts float64) {
		stamps = append(stamps, ts)
	})

	clock.RunFrames(3)
	if len(stamps) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(stamps))
	}
	if stamps[1] != 16 || stamps[2] != 32 {
		t.Errorf("unexpected timestamps %v", stamps)
	}

	// a loop with no frames delivered simply waits
	clock.Advance(time.Second)
	if len(stamps) != 3 {
		t.Errorf("frames ran without a frame source: %d", len(stamps))
	}

	task.Stop()
	clock.RunFrames(2)
	if len(stamps) != 3 {
		t.Errorf("stopped loop kept running: %d frames", len(stamps))
	}
}

func TestScheduler_Debounce(t *testing.T) {
	clock := NewManual()
	sched := NewScheduler(clock)

	runs := 0
	d := sched.Debounce("resize", 200*time.Millisecond, func() { runs++ })

	if d.Pending() {
		t.Error("debouncer pending before trigger")
	}

	// a burst of triggers inside the window collapses to one run
	for i := 0; i < 5; i++ {
		d.Trigger()
		clock.Advance(150 * time.Millisecond)
	}
	if runs != 0 {
		t.Errorf("Expected no runs during the burst, got %d", runs)
	}

	clock.Advance(50 * time.Millisecond)
	if runs != 1 {
		t.Errorf("Expected 1 run after the burst, got %d", runs)
	}
	if d.Pending() {
		t.Error("debouncer still pending after run")
	}

	d.Trigger()
	d.Stop()
	clock.Advance(time.Second)
	if runs != 1 {
		t.Errorf("stopped debouncer ran: %d", runs)
	}
}

func TestScheduler_StopAll(t *testing.T) {
	clock := NewManual()
	sched := NewScheduler(clock)

	count := 0
	sched.After("a", 10*time.Millisecond, func() { count++ })
	sched.Every("b", 10*time.Millisecond, func() bool { count++; return true })
	sched.Frames("c", func(float64) { count++ })

	if sched.TaskCount() != 3 {
		t.Fatalf("Expected 3 tasks, got %d", sched.TaskCount())
	}

	sched.StopAll()
	clock.RunFrames(5)

	if count != 0 {
		t.Errorf("Expected nothing to run after StopAll, got %d", count)
	}
	if sched.TaskCount() != 0 {
		t.Errorf("Expected 0 tasks, got %d", sched.TaskCount())
	}
}

func TestManual_OrderAndNesting(t *testing.T) {
	clock := NewManual()

	var order []string
	clock.SetTimeout(20*time.Millisecond, func() { order = append(order, "b") })
	clock.SetTimeout(10*time.Millisecond, func() {
		order = append(order, "a")
		clock.SetTimeout(5*time.Millisecond, func() { order = append(order, "a2") })
	})
	clock.SetTimeout(20*time.Millisecond, func() { order = append(order, "c") })

	clock.Advance(20 * time.Millisecond)

	want := []string{"a", "a2", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
	if clock.Now() != 20*time.Millisecond {
		t.Errorf("Now() = %v, want 20ms", clock.Now())
	}
}
