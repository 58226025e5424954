package scheduler

import (
	"sync"
	"sync/atomic"
	"time"
)

// Driver supplies the platform's timer and frame primitives. Callbacks are
// expected to run on a single goroutine (the browser event loop, or the test
// calling Manual.Advance).
type Driver interface {
	// SetTimeout runs fn once after d. The returned func cancels it.
	SetTimeout(d time.Duration, fn func()) (cancel func())
	// RequestFrame runs fn before the next paint with a millisecond timestamp.
	RequestFrame(fn func(ts float64)) (cancel func())
}

// debugLog is set by platform-specific code
var debugLog func(args ...interface{})

// SetDebugLog sets the debug logging function
func SetDebugLog(fn func(args ...interface{})) {
	debugLog = fn
}

// Task is a handle to scheduled work. Stop is idempotent.
type Task struct {
	id      uint32
	name    string
	running atomic.Bool

	mu     sync.Mutex
	cancel func()
	sched  *Scheduler
}

// ID returns the task's unique ID
func (t *Task) ID() uint32 {
	return t.id
}

// Name returns the label given at creation
func (t *Task) Name() string {
	return t.name
}

// Running reports whether the task still has pending work
func (t *Task) Running() bool {
	return t != nil && t.running.Load()
}

// Stop cancels any pending callback and releases the task
func (t *Task) Stop() {
	if t == nil || !t.running.CompareAndSwap(true, false) {
		return
	}
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	t.sched.remove(t)
	if debugLog != nil {
		debugLog("[Scheduler] Stopped task", t.id, t.name)
	}
}

func (t *Task) arm(cancel func()) {
	t.mu.Lock()
	t.cancel = cancel
	t.mu.Unlock()
}

// finish marks a one-shot task as done without invoking its cancel hook
func (t *Task) finish() {
	if t.running.CompareAndSwap(true, false) {
		t.sched.remove(t)
	}
}

// Scheduler creates tasks on top of a Driver and tracks the live ones so a
// page can be torn down in one call.
type Scheduler struct {
	driver Driver

	mu     sync.Mutex
	tasks  map[uint32]*Task
	nextID uint32
}

// NewScheduler creates a new scheduler instance
func NewScheduler(driver Driver) *Scheduler {
	return &Scheduler{
		driver: driver,
		tasks:  make(map[uint32]*Task),
		nextID: 1,
	}
}

func (s *Scheduler) newTask(name string) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &Task{id: s.nextID, name: name, sched: s}
	s.nextID++
	t.running.Store(true)
	s.tasks[t.id] = t
	if debugLog != nil {
		debugLog("[Scheduler] Created task", t.id, name)
	}
	return t
}

func (s *Scheduler) remove(t *Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, t.id)
}

// After runs fn once after d
func (s *Scheduler) After(name string, d time.Duration, fn func()) *Task {
	t := s.newTask(name)
	t.arm(s.driver.SetTimeout(d, func() {
		if !t.Running() {
			return
		}
		t.finish()
		fn()
	}))
	return t
}

// Every runs fn every d until fn returns false or the task is stopped.
func (s *Scheduler) Every(name string, d time.Duration, fn func() bool) *Task {
	t := s.newTask(name)
	var tick func()
	tick = func() {
		if !t.Running() {
			return
		}
		if !fn() {
			t.finish()
			return
		}
		if t.Running() {
			t.arm(s.driver.SetTimeout(d, tick))
		}
	}
	t.arm(s.driver.SetTimeout(d, tick))
	return t
}

// Frames runs fn on every animation frame until the task is stopped. The loop
// re-arms itself after each call, so a paused frame source pauses the loop.
func (s *Scheduler) Frames(name string, fn func(ts float64)) *Task {
	t := s.newTask(name)
	var frame func(ts float64)
	frame = func(ts float64) {
		if !t.Running() {
			return
		}
		fn(ts)
		if t.Running() {
			t.arm(s.driver.RequestFrame(frame))
		}
	}
	t.arm(s.driver.RequestFrame(frame))
	return t
}

// Debouncer collapses bursts of Trigger calls into one run of fn, d after the
// last call.
type Debouncer struct {
	sched   *Scheduler
	name    string
	delay   time.Duration
	fn      func()
	pending *Task
}

// Debounce creates a Debouncer. Nothing is scheduled until Trigger.
func (s *Scheduler) Debounce(name string, d time.Duration, fn func()) *Debouncer {
	return &Debouncer{sched: s, name: name, delay: d, fn: fn}
}

// Trigger cancels any pending run and schedules a new one
func (d *Debouncer) Trigger() {
	d.pending.Stop()
	d.pending = d.sched.After(d.name, d.delay, d.fn)
}

// Pending reports whether a run is scheduled
func (d *Debouncer) Pending() bool {
	return d.pending.Running()
}

// Stop cancels the pending run, if any
func (d *Debouncer) Stop() {
	d.pending.Stop()
}

// StopAll stops every live task
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	tasks := make([]*Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t)
	}
	s.mu.Unlock()

	for _, t := range tasks {
		t.Stop()
	}
}

// TaskCount returns the number of live tasks
func (s *Scheduler) TaskCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
