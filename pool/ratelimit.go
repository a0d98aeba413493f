package pool

import "golang.org/x/time/rate"

// WithSubmitRateLimit attaches a token-bucket limiter to the pool's
// admission path. Submit calls the limiter's Allow before attempting to
// enqueue; a disallowed submission is treated exactly like queue-full
// backpressure — Submit returns an invalid ResultHandle immediately,
// without waiting out the one-second backpressure window.
//
// This throttles at admission rather than at processing, unlike the
// teacher's per-task rate limit: a Task here is opaque, so the pool has
// no "processing" step of its own to gate. A Pool built without this
// option behaves exactly as spec.md §4.5.3 describes.
func WithSubmitRateLimit(tasksPerSecond float64, burst int) PoolOption {
	return func(cfg *poolConfig) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}
