package pool

import "errors"

var (
	// ErrAlreadyRunning is returned by configuration setters and Start
	// when the pool has already left the Configured state.
	ErrAlreadyRunning = errors.New("pool: already running")

	// ErrTypeMismatch is returned by Extract when the requested type
	// does not match the type a Value was constructed with.
	ErrTypeMismatch = errors.New("pool: type mismatch")

	// ErrShutdownTimeout is returned by ShutdownWithTimeout when the
	// pool did not finish draining within the given deadline.
	ErrShutdownTimeout = errors.New("pool: shutdown timed out")

	// ErrSubmissionRejected is returned by SubmitAll for any task whose
	// ResultHandle came back invalid (queue-full backpressure or a pool
	// that isn't running).
	ErrSubmissionRejected = errors.New("pool: submission rejected")
)
