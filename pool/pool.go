package pool

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// state is the pool's lifecycle state machine: Configured -> Running ->
// Draining -> Stopped.
type state int32

const (
	stateConfigured state = iota
	stateRunning
	stateDraining
	stateStopped
)

// These three durations are spec.md §9's "hard-coded, not configurable
// in this version" constants. They are package vars rather than consts
// purely so tests can shrink them; production code should treat them as
// fixed.
var (
	submitBackpressureWait = 1 * time.Second
	cachedPollInterval     = 1 * time.Second
	cachedIdleRetireAfter  = 60 * time.Second
)

// Pool is the dispatch engine: it owns the bounded task queue, the
// worker registry, the mode and counters, and the shutdown protocol.
// The zero Pool is not usable; construct one with NewPool.
type Pool struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond
	exit     *sync.Cond

	state state
	mode  Mode

	initialWorkerCount int
	maxWorkerCount     int
	maxQueueLength     int

	queue    []*submittedTask
	registry *workerRegistry
	nextID   int

	currentWorkerCount atomic.Int64
	idleWorkerCount    atomic.Int64
	queueSize          atomic.Int64

	rateLimiter    *rate.Limiter
	onWorkerSpawn  func(id int)
	onWorkerRetire func(id int)
}

// NewPool returns a Pool in the Configured state. Apply PoolOptions to
// set its mode and bounds before calling Start; none of them take
// effect afterward.
func NewPool(opts ...PoolOption) *Pool {
	cfg := defaultPoolConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Pool{
		state:              stateConfigured,
		mode:               cfg.mode,
		initialWorkerCount: cfg.initialWorkerCount,
		maxWorkerCount:     cfg.maxWorkerCount,
		maxQueueLength:     cfg.maxQueueLength,
		registry:           newWorkerRegistry(),
		rateLimiter:        cfg.rateLimiter,
		onWorkerSpawn:      cfg.onWorkerSpawn,
		onWorkerRetire:     cfg.onWorkerRetire,
	}
	p.notFull = sync.NewCond(&p.mu)
	p.notEmpty = sync.NewCond(&p.mu)
	p.exit = sync.NewCond(&p.mu)
	return p
}

// SetMode sets the pool's operating mode. Rejects with ErrAlreadyRunning
// once Start has been called.
func (p *Pool) SetMode(m Mode) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != stateConfigured {
		return ErrAlreadyRunning
	}
	p.mode = m
	return nil
}

// SetMaxQueueLength sets the bounded queue's capacity. Rejects with
// ErrAlreadyRunning once Start has been called.
func (p *Pool) SetMaxQueueLength(n int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != stateConfigured {
		return ErrAlreadyRunning
	}
	if n > 0 {
		p.maxQueueLength = n
	}
	return nil
}

// SetMaxWorkerCount sets the Cached-mode growth cap. Rejects with
// ErrAlreadyRunning once Start has been called.
func (p *Pool) SetMaxWorkerCount(n int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != stateConfigured {
		return ErrAlreadyRunning
	}
	if n > 0 {
		p.maxWorkerCount = n
	}
	return nil
}

// Start launches initial workers and moves the pool into the Running
// state. A non-positive initial uses the configured baseline (default:
// runtime.NumCPU()). Returns ErrAlreadyRunning if the pool has already
// started.
func (p *Pool) Start(initial int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != stateConfigured {
		return ErrAlreadyRunning
	}

	if initial <= 0 {
		initial = p.initialWorkerCount
	}
	p.initialWorkerCount = initial
	p.state = stateRunning

	for i := 0; i < initial; i++ {
		p.spawnWorkerLocked()
	}
	return nil
}

// spawnWorkerLocked creates a new worker, registers it, and launches its
// goroutine. Callers must hold p.mu.
func (p *Pool) spawnWorkerLocked() {
	id := p.nextID
	p.nextID++

	entry := newWorkerEntry(id)
	p.registry.insert(entry)
	p.currentWorkerCount.Add(1)
	p.idleWorkerCount.Add(1)

	debugLogState(p, "spawn worker %d", id)
	if p.onWorkerSpawn != nil {
		p.onWorkerSpawn(id)
	}

	go p.workerLoop(id, entry)
}

// Submit enqueues task and returns a ResultHandle. If the queue is still
// full after waiting up to one second, or the pool is not Running, or a
// configured submission rate limit rejects the attempt, Submit returns
// an invalid handle instead of blocking further or raising an error.
func (p *Pool) Submit(task Task) *ResultHandle {
	handle := newResultHandle()

	p.mu.Lock()

	if p.state != stateRunning {
		p.mu.Unlock()
		return handle
	}

	if p.rateLimiter != nil && !p.rateLimiter.Allow() {
		p.mu.Unlock()
		debugLog("submission rejected by rate limiter")
		return handle
	}

	deadline := time.Now().Add(submitBackpressureWait)
	for len(p.queue) >= p.maxQueueLength {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			p.mu.Unlock()
			debugLog("submission timed out: queue full")
			return handle
		}
		p.condWaitTimeout(p.notFull, remaining)
		if p.state != stateRunning {
			p.mu.Unlock()
			return handle
		}
	}

	st := &submittedTask{task: task, handle: handle}
	p.queue = append(p.queue, st)
	p.queueSize.Add(1)
	handle.valid = true
	p.notEmpty.Signal()

	if p.mode == Cached &&
		p.queueSize.Load() > p.idleWorkerCount.Load() &&
		p.currentWorkerCount.Load() < int64(p.maxWorkerCount) {
		p.spawnWorkerLocked()
	}

	p.mu.Unlock()
	return handle
}

// Shutdown blocks all new submissions (the pool moves to Draining, then
// Stopped) and waits for every worker to observe the pool draining and
// exit. Tasks still in the queue are discarded, not executed; their
// ResultHandles are never signalled. Safe to call more than once.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == stateStopped {
		return
	}
	if p.state == stateConfigured {
		p.state = stateStopped
		return
	}

	p.state = stateDraining
	p.notEmpty.Broadcast()
	debugLog("shutdown: draining, waiting for %d workers to exit", p.registry.size())

	for p.registry.size() > 0 {
		p.exit.Wait()
	}

	debugLog("shutdown: all workers exited, %d queued tasks dropped", len(p.queue))
	p.state = stateStopped
}

// ShutdownWithTimeout behaves like Shutdown but returns
// ErrShutdownTimeout if draining does not finish within timeout. The
// underlying drain keeps running in the background even after a
// timeout is reported.
func (p *Pool) ShutdownWithTimeout(timeout time.Duration) error {
	done := make(chan struct{})
	go func() {
		p.Shutdown()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return ErrShutdownTimeout
	}
}

// CurrentWorkerCount returns the live worker count without acquiring
// the pool mutex.
func (p *Pool) CurrentWorkerCount() int { return int(p.currentWorkerCount.Load()) }

// IdleWorkerCount returns the count of workers currently waiting for
// work, without acquiring the pool mutex.
func (p *Pool) IdleWorkerCount() int { return int(p.idleWorkerCount.Load()) }

// QueueSize returns the number of tasks currently queued (not counting
// any a worker has already dequeued), without acquiring the pool mutex.
func (p *Pool) QueueSize() int { return int(p.queueSize.Load()) }

// workerLoop is one worker's entire lifetime: wait for work (or, above
// baseline in Cached mode, for a timeout that might mean retirement, or
// for shutdown), run it, repeat.
func (p *Pool) workerLoop(id int, entry *workerEntry) {
	for {
		p.mu.Lock()

		for len(p.queue) == 0 || p.state != stateRunning {
			if p.state != stateRunning {
				p.retireLocked(id)
				p.mu.Unlock()
				return
			}

			if p.mode == Cached && p.currentWorkerCount.Load() > int64(p.initialWorkerCount) {
				timedOut := p.condWaitTimeout(p.notEmpty, cachedPollInterval)
				if timedOut &&
					entry.idleFor() >= cachedIdleRetireAfter &&
					p.currentWorkerCount.Load() > int64(p.initialWorkerCount) {
					p.retireLocked(id)
					p.mu.Unlock()
					return
				}
				continue
			}

			p.notEmpty.Wait()
		}

		t := p.queue[0]
		p.queue = p.queue[1:]
		p.queueSize.Add(-1)
		p.idleWorkerCount.Add(-1)
		p.notFull.Signal()
		if len(p.queue) > 0 {
			p.notEmpty.Signal()
		}
		p.mu.Unlock()

		t.execute()

		p.idleWorkerCount.Add(1)
		entry.touch()
	}
}

// retireLocked removes id from the registry and decrements its share of
// currentWorkerCount. Callers must hold p.mu; it broadcasts exit so a
// Shutdown waiting for an empty registry wakes up.
func (p *Pool) retireLocked(id int) {
	p.registry.remove(id)
	p.currentWorkerCount.Add(-1)
	p.idleWorkerCount.Add(-1)
	debugLogState(p, "retire worker %d", id)
	if p.onWorkerRetire != nil {
		p.onWorkerRetire(id)
	}
	p.exit.Broadcast()
}

// condWaitTimeout waits on c for at most d, returning whether the wait
// timed out rather than being woken by a real Signal/Broadcast. Callers
// must hold p.mu; c.Wait releases it for the duration of the wait and
// reacquires it before returning, exactly as a plain c.Wait() would.
//
// sync.Cond has no built-in timeout, so this arranges for a timer to
// broadcast c after d if nothing else has by then. A real wakeup that
// lands at almost the same instant as the timer firing can occasionally
// be reported as a timeout too; every caller re-checks its own
// condition afterward, so that imprecision is harmless.
func (p *Pool) condWaitTimeout(c *sync.Cond, d time.Duration) (timedOut bool) {
	var fired atomic.Bool
	timer := time.AfterFunc(d, func() {
		fired.Store(true)
		p.mu.Lock()
		c.Broadcast()
		p.mu.Unlock()
	})

	c.Wait()

	timer.Stop()
	return fired.Load()
}
