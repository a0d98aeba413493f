// Package pool provides a reusable in-process worker pool that executes
// submitted tasks concurrently and hands each submitter back a handle for
// its own result.
//
// Two operating modes are supported. A FIXED pool holds a constant number
// of workers for its entire lifetime. A CACHED pool starts at a baseline
// worker count and grows, up to a configured cap, in response to queue
// pressure, then shrinks idle workers back down to the baseline after they
// have sat idle for a minute.
//
// # Basic usage
//
//	p := pool.NewPool(pool.WithMode(pool.Fixed), pool.WithInitialWorkerCount(4))
//	if err := p.Start(4); err != nil {
//		log.Fatal(err)
//	}
//	defer p.Shutdown()
//
//	h := p.Submit(pool.TaskFunc(func() pool.Value {
//		return pool.NewValue(21 * 2)
//	}))
//	v := h.Get()
//	n, err := pool.Extract[int](v)
//
// # Submission backpressure
//
// Submit never blocks longer than one second. If the task queue is still
// full after that, Submit returns an invalid ResultHandle instead of
// raising an error; callers must check ResultHandle.Valid before relying
// on the result. Calling Get on an invalid handle returns an empty Value
// immediately rather than blocking.
//
// # Cached-mode elasticity
//
// In CACHED mode, submitting into a pool where every worker is already
// busy spawns one more worker, up to the configured maximum. Workers
// above the configured baseline that sit idle for a full minute retire
// themselves. FIXED-mode pools never grow or shrink.
//
// # Shutdown
//
// Shutdown blocks until every worker has observed the pool draining and
// exited. Tasks still sitting in the queue when Shutdown is called are
// never executed; their ResultHandles are never signalled, so a submitter
// blocked in Get on such a handle blocks forever. Retrieve every result
// you care about before shutting the pool down.
package pool
