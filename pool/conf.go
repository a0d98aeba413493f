package pool

import (
	"runtime"

	"golang.org/x/time/rate"
)

// Mode selects how a Pool manages its worker count.
type Mode int

const (
	// Fixed keeps a constant number of workers for the pool's entire
	// lifetime.
	Fixed Mode = iota

	// Cached grows the worker count, up to a configured maximum, when
	// queue pressure builds, and shrinks idle workers back down to the
	// baseline after they have sat idle for a while.
	Cached
)

// String renders the mode the way it appears in debug log lines.
func (m Mode) String() string {
	switch m {
	case Fixed:
		return "fixed"
	case Cached:
		return "cached"
	default:
		return "unknown"
	}
}

// defaultMaxQueueLength is spec.md §3's default, tunable only before
// Start.
const defaultMaxQueueLength = 1024

type poolConfig struct {
	mode               Mode
	maxQueueLength     int
	maxWorkerCount     int
	initialWorkerCount int
	rateLimiter        *rate.Limiter
	onWorkerSpawn      func(id int)
	onWorkerRetire     func(id int)
}

func defaultPoolConfig() poolConfig {
	n := runtime.NumCPU()
	return poolConfig{
		mode:               Fixed,
		maxQueueLength:     defaultMaxQueueLength,
		maxWorkerCount:     n,
		initialWorkerCount: n,
	}
}

// PoolOption configures a Pool before it is started.
type PoolOption func(*poolConfig)

// WithMode sets the pool's operating mode. Has no effect once the pool
// has started; NewPool applies it at construction time only.
func WithMode(m Mode) PoolOption {
	return func(cfg *poolConfig) { cfg.mode = m }
}

// WithMaxQueueLength sets the bounded task queue's capacity.
func WithMaxQueueLength(n int) PoolOption {
	return func(cfg *poolConfig) {
		if n > 0 {
			cfg.maxQueueLength = n
		}
	}
}

// WithMaxWorkerCount sets the elastic growth cap used in Cached mode.
// Ignored in Fixed mode.
func WithMaxWorkerCount(n int) PoolOption {
	return func(cfg *poolConfig) {
		if n > 0 {
			cfg.maxWorkerCount = n
		}
	}
}

// WithInitialWorkerCount sets the baseline worker count used when Start
// is called with a non-positive argument. Defaults to runtime.NumCPU().
func WithInitialWorkerCount(n int) PoolOption {
	return func(cfg *poolConfig) {
		if n > 0 {
			cfg.initialWorkerCount = n
		}
	}
}

// WithOnWorkerSpawn registers a hook invoked, with the pool mutex held,
// whenever a worker is spawned (at Start, or elastically in Cached
// mode). Keep it fast and non-reentrant: it must not call back into
// Submit or any other Pool method on the same pool.
func WithOnWorkerSpawn(fn func(id int)) PoolOption {
	return func(cfg *poolConfig) { cfg.onWorkerSpawn = fn }
}

// WithOnWorkerRetire registers a hook invoked whenever a worker exits,
// whether from shutdown or Cached-mode idle retirement. Same
// reentrancy constraint as WithOnWorkerSpawn.
func WithOnWorkerRetire(fn func(id int)) PoolOption {
	return func(cfg *poolConfig) { cfg.onWorkerRetire = fn }
}
