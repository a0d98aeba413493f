package pool

import (
	"runtime"
)

// Task is a unit of work a submitter hands to the pool: a capability
// that produces a Value when invoked. The pool never inspects a Task
// beyond calling Run; how it is constructed and what state it closes
// over is entirely the caller's concern.
type Task interface {
	// Run executes the task and returns its result. Run is invoked by
	// whichever worker goroutine dequeues the task; it must be safe to
	// call from any goroutine and must not call back into the Submit
	// of the same pool while that pool's queue is already at capacity
	// with only this worker free to drain it, or it will deadlock
	// against itself.
	Run() Value
}

// TaskFunc adapts a plain function to the Task interface.
type TaskFunc func() Value

// Run calls f.
func (f TaskFunc) Run() Value { return f() }

// submittedTask binds a Task to the ResultHandle a worker must deliver
// its Value into. The pool holds this pairing while the task sits in
// the queue or is executing; it is dropped once execute returns.
type submittedTask struct {
	task   Task
	handle *ResultHandle
}

// execute runs the bound task and stores its Value into the bound
// ResultHandle, recovering a panic from Run into an empty Value rather
// than letting it take down the worker goroutine. The error itself is
// not propagated to the submitter in this version — see DESIGN.md's
// Open Questions.
func (t *submittedTask) execute() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 2048)
			n := runtime.Stack(buf, false)
			debugLog("task panic recovered: %v\n%s", r, buf[:n])
			t.handle.set(Value{})
		}
	}()

	v := t.task.Run()
	t.handle.set(v)
}
