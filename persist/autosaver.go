package persist

import (
	"context"
	"sync"
	"time"

	ink "github.com/shelost/daydream-svelte-sub006"
)

// defaultDelay is the quiet interval the autosaver waits for before
// writing.
const defaultDelay = 500 * time.Millisecond

// AutosaverOption configures an Autosaver during creation.
type AutosaverOption func(*Autosaver)

// WithDelay sets the debounce interval.
func WithDelay(d time.Duration) AutosaverOption {
	return func(a *Autosaver) {
		if d > 0 {
			a.delay = d
		}
	}
}

// Autosaver debounces scene saves so persistence never blocks the input
// path. Trigger snapshots the scene synchronously and schedules an
// asynchronous write after a quiet interval; a newer trigger supersedes an
// unwritten snapshot. A failed write is logged and superseded by the next
// save, never retried on its own. Close flushes whatever is pending.
//
// Safe for concurrent use.
type Autosaver struct {
	store  Adapter
	docID  string
	source func() ([]byte, error)
	delay  time.Duration

	mu      sync.Mutex
	pending []byte
	timer   *time.Timer
	closed  bool

	// writeMu serializes writes so Close waits out an in-flight flush.
	writeMu sync.Mutex
}

// NewAutosaver creates an autosaver writing snapshots from source into
// store under docID. The source is typically the scene graph's Serialize.
func NewAutosaver(store Adapter, docID string, source func() ([]byte, error), opts ...AutosaverOption) *Autosaver {
	a := &Autosaver{store: store, docID: docID, source: source, delay: defaultDelay}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Trigger snapshots the scene and schedules a write after the quiet
// interval. Calling again before the write replaces the snapshot and
// restarts the interval. Returns immediately.
func (a *Autosaver) Trigger() {
	data, err := a.source()
	if err != nil {
		ink.Logger().Warn("persist: snapshot failed", "doc", a.docID, "error", err)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.pending = data
	if a.timer == nil {
		a.timer = time.AfterFunc(a.delay, a.flush)
	} else {
		a.timer.Reset(a.delay)
	}
}

// flush runs on the timer goroutine and writes the pending snapshot.
func (a *Autosaver) flush() {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	a.mu.Lock()
	data := a.pending
	a.pending = nil
	a.mu.Unlock()
	if data == nil {
		return
	}

	if err := a.store.Save(context.Background(), a.docID, data); err != nil {
		// Superseded by the next save; drawing is unaffected.
		ink.Logger().Warn("persist: autosave failed", "doc", a.docID, "error", err)
	}
}

// Close stops the timer, waits out any write in flight, and writes the
// pending snapshot if there is one. Triggers after Close are dropped.
func (a *Autosaver) Close(ctx context.Context) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
	}
	data := a.pending
	a.pending = nil
	a.mu.Unlock()

	a.writeMu.Lock()
	defer a.writeMu.Unlock()
	if data == nil {
		return nil
	}
	return a.store.Save(ctx, a.docID, data)
}
