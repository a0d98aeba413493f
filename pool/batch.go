package pool

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SubmitAll submits every task in tasks to p concurrently and waits for
// all of them to complete, returning their Values in the same order as
// tasks. If any task is nil, SubmitAll returns an error naming it and a
// nil slice. If any submission came back with an invalid ResultHandle
// (queue-full backpressure, or p not Running), SubmitAll returns
// ErrSubmissionRejected for the first such task in slice order and a
// nil slice, without waiting on the tasks that were admitted. In both
// cases the other tasks have still been submitted.
//
// Submitting serially instead pays Submit's up-to-one-second
// backpressure wait once per task; fanning submissions out with an
// errgroup pays it at most once for the whole batch.
func SubmitAll(p *Pool, tasks []Task) ([]Value, error) {
	handles := make([]*ResultHandle, len(tasks))

	var g errgroup.Group
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			if t == nil {
				return fmt.Errorf("task %d is nil", i)
			}
			handles[i] = p.Submit(t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, h := range handles {
		if !h.Valid() {
			return nil, fmt.Errorf("task %d: %w", i, ErrSubmissionRejected)
		}
	}

	values := make([]Value, len(tasks))
	for i, h := range handles {
		values[i] = h.Get()
	}
	return values, nil
}
