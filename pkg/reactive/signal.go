package reactive

import (
	"sort"
	"sync"
	"sync/atomic"
)

// debugLog is set by platform-specific code
var debugLog func(args ...interface{})

// SetDebugLog sets the debug logging function
func SetDebugLog(fn func(args ...interface{})) {
	debugLog = fn
}

// Watcher is notified with the previous and the new value after every write
type Watcher[T any] func(prev, next T)

// State represents a reactive state value owned by one component instance.
type State[T any] struct {
	name  string
	value T
	mu    sync.RWMutex

	watchers   map[uint32]Watcher[T]
	watchersMu sync.RWMutex
	nextID     uint32
}

// NewState creates a new reactive state
func NewState[T any](name string, initial T) *State[T] {
	return &State[T]{
		name:     name,
		value:    initial,
		watchers: make(map[uint32]Watcher[T]),
		nextID:   1,
	}
}

// Name returns the label the state was created with
func (s *State[T]) Name() string {
	return s.name
}

// Get returns the current value
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies watchers
func (s *State[T]) Set(value T) {
	s.mu.Lock()
	prev := s.value
	s.value = value
	s.mu.Unlock()

	if debugLog != nil {
		debugLog("[State]", s.name, "set:", value)
	}
	s.notify(prev, value)
}

// Update atomically reads, modifies, and writes the value
func (s *State[T]) Update(fn func(T) T) {
	s.mu.Lock()
	prev := s.value
	s.value = fn(prev)
	next := s.value
	s.mu.Unlock()

	if debugLog != nil {
		debugLog("[State]", s.name, "update, old:", prev, "new:", next)
	}
	s.notify(prev, next)
}

// Watch registers fn and returns a func that removes it
func (s *State[T]) Watch(fn Watcher[T]) func() {
	s.watchersMu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	s.watchersMu.Unlock()

	return func() {
		s.watchersMu.Lock()
		delete(s.watchers, id)
		s.watchersMu.Unlock()
	}
}

func (s *State[T]) notify(prev, next T) {
	if b := batchContext.Load(); b != nil && b.active {
		b.enqueue(s, func() { s.fire(prev, s.Get()) })
		return
	}
	s.fire(prev, next)
}

func (s *State[T]) fire(prev, next T) {
	// Call watchers in registration order, outside the lock
	s.watchersMu.RLock()
	ids := make([]uint32, 0, len(s.watchers))
	for id := range s.watchers {
		ids = append(ids, id)
	}
	s.watchersMu.RUnlock()
	sortIDs(ids)

	for _, id := range ids {
		s.watchersMu.RLock()
		fn, ok := s.watchers[id]
		s.watchersMu.RUnlock()
		if ok {
			fn(prev, next)
		}
	}
}

func sortIDs(ids []uint32) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

// batchContext holds the current batch state
var batchContext atomic.Pointer[Batch]

// Batch defers watcher notifications until the batch completes. Several writes
// to the same state inside one batch notify once, with the first previous
// value and the final value.
type Batch struct {
	mu      sync.Mutex
	order   []any
	pending map[any]func()
	active  bool
}

// NewBatch creates a new batch context
func NewBatch() *Batch {
	return &Batch{
		pending: make(map[any]func()),
		active:  true,
	}
}

func (b *Batch) enqueue(key any, fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, seen := b.pending[key]; !seen {
		b.order = append(b.order, key)
		b.pending[key] = fn
	}
}

// Commit runs all deferred notifications
func (b *Batch) Commit() {
	b.mu.Lock()
	b.active = false
	fns := make([]func(), 0, len(b.order))
	for _, key := range b.order {
		fns = append(fns, b.pending[key])
	}
	b.order = nil
	b.pending = nil
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// RunBatch executes a function within a batch context
func RunBatch(fn func()) {
	batch := NewBatch()
	oldBatch := batchContext.Swap(batch)

	defer func() {
		batchContext.Store(oldBatch)
		batch.Commit()
	}()

	fn()
}
