package capture

import "sync"

// Coordinator ensures at most one canvas instance is in draw mode when
// several share a document. Create one per document and inject it into
// each instance's Capturer; it is a collaborator, not a package global.
//
// Safe for concurrent use. Instances may live on different event loops.
type Coordinator struct {
	mu     sync.Mutex
	holder string
	evict  func()
}

// NewCoordinator creates an empty coordinator with no active instance.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Acquire makes id the active drawing instance. If a different instance
// holds draw mode, its eviction callback runs first, outside the
// coordinator lock so the callback may call back into the coordinator.
// Re-acquiring by the current holder only replaces the callback.
func (c *Coordinator) Acquire(id string, onEvict func()) {
	c.mu.Lock()
	if c.holder == id {
		c.evict = onEvict
		c.mu.Unlock()
		return
	}
	prev := c.evict
	hadHolder := c.holder != ""
	c.holder = id
	c.evict = onEvict
	c.mu.Unlock()

	if hadHolder && prev != nil {
		prev()
	}
}

// Release gives up draw mode. Only the current holder is released; a stale
// release from an already-evicted instance is ignored.
func (c *Coordinator) Release(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.holder == id {
		c.holder = ""
		c.evict = nil
	}
}

// Active returns the id of the instance in draw mode, or the empty string
// when no instance holds it.
func (c *Coordinator) Active() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.holder
}
