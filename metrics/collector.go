// Package metrics provides render-pipeline metrics collection.
//
// The Collector accumulates counters across figure requests within one
// process. It is a leaf package with no internal dependencies. All increment
// methods are nil-receiver safe so callers never have to guard against an
// absent collector.
package metrics

import "sync"

// Snapshot is an immutable point-in-time view of all counters.
// Returned by Collector.Snapshot(). Safe to read concurrently after creation.
type Snapshot struct {
	// Render lifecycle
	RendersStarted   int64
	RendersSucceeded int64
	RendersFailed    int64

	// Cache and gating
	CacheHits    int64
	ChecksFailed int64

	// External processes
	ProcessesSpawned int64
	ToolkitMissing   int64
}

// Collector accumulates metrics across figure requests.
// Thread-safe via sync.Mutex.
type Collector struct {
	mu sync.Mutex

	rendersStarted   int64
	rendersSucceeded int64
	rendersFailed    int64

	cacheHits    int64
	checksFailed int64

	processesSpawned int64
	toolkitMissing   int64
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// IncRenderStarted records the start of a figure request.
func (c *Collector) IncRenderStarted() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.rendersStarted++
	c.mu.Unlock()
}

// IncRenderSucceeded records a success outcome (rendered or cached).
func (c *Collector) IncRenderSucceeded() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.rendersSucceeded++
	c.mu.Unlock()
}

// IncRenderFailed records a script_error outcome.
func (c *Collector) IncRenderFailed() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.rendersFailed++
	c.mu.Unlock()
}

// IncCacheHit records a request served from the content-addressed cache.
func (c *Collector) IncCacheHit() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.cacheHits++
	c.mu.Unlock()
}

// IncChecksFailed records a pre-execution check rejection.
func (c *Collector) IncChecksFailed() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.checksFailed++
	c.mu.Unlock()
}

// IncProcessSpawned records one external process invocation.
func (c *Collector) IncProcessSpawned() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.processesSpawned++
	c.mu.Unlock()
}

// IncToolkitMissing records a toolkit_missing outcome.
func (c *Collector) IncToolkitMissing() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.toolkitMissing++
	c.mu.Unlock()
}

// Snapshot returns an immutable copy of all counters.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		RendersStarted:   c.rendersStarted,
		RendersSucceeded: c.rendersSucceeded,
		RendersFailed:    c.rendersFailed,
		CacheHits:        c.cacheHits,
		ChecksFailed:     c.checksFailed,
		ProcessesSpawned: c.processesSpawned,
		ToolkitMissing:   c.toolkitMissing,
	}
}
