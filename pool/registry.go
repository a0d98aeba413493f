package pool

import (
	"sync/atomic"
	"time"
)

// workerEntry is the worker registry's handle for one live worker
// goroutine: its id and the last moment it was known to be busy. Only
// lastActiveNano is touched from more than one place (the worker's own
// goroutine, and potentially a monitoring caller reading idleFor), so it
// is kept atomic; id is immutable after the entry is created.
type workerEntry struct {
	id             int
	lastActiveNano atomic.Int64
}

func newWorkerEntry(id int) *workerEntry {
	e := &workerEntry{id: id}
	e.touch()
	return e
}

// touch records that the worker owning this entry is active right now.
func (e *workerEntry) touch() {
	e.lastActiveNano.Store(time.Now().UnixNano())
}

// idleFor returns how long it has been since touch was last called.
func (e *workerEntry) idleFor() time.Duration {
	return time.Since(time.Unix(0, e.lastActiveNano.Load()))
}

// workerRegistry maps worker id to worker handle. Every method assumes
// the Pool's mutex is already held by the caller — the registry itself
// has no locking of its own, matching spec.md's invariant that
// registry.size == currentWorkerCount only holds "under the pool mutex".
type workerRegistry struct {
	workers map[int]*workerEntry
}

func newWorkerRegistry() *workerRegistry {
	return &workerRegistry{workers: make(map[int]*workerEntry)}
}

func (r *workerRegistry) insert(e *workerEntry) {
	r.workers[e.id] = e
}

func (r *workerRegistry) remove(id int) {
	delete(r.workers, id)
}

func (r *workerRegistry) size() int {
	return len(r.workers)
}
