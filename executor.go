package suspend

import "sync"

// An Executor is a routine spawner, and a turn runner.
//
// Every piece of work the package performs — starting a routine, resuming
// it after a request completes, resolving a deferred request — executes as
// a turn: a job popped off an internal FIFO queue by the Run method.
// Turns run one at a time, in arrival order, in a single-threaded manner.
// If one turn blocks, no other turns can run.
// The best practice is not to block.
//
// Manually calling the Run method is usually not desired.
// One would instead use the Autorun method to set up an autorun function to
// calling the Run method automatically whenever a turn is scheduled.
// The Executor never calls the autorun function twice at the same time.
//
// The zero Executor is ready for use.
type Executor struct {
	mu      sync.Mutex
	q       queue[func()]
	running bool
	autorun func()
	ps      panicstack
}

// Autorun sets up an autorun function to calling the Run method
// automatically whenever a turn is scheduled.
//
// One must pass a function that calls the Run method.
//
// If f blocks, scheduling methods may block too.
// The best practice is not to block.
func (e *Executor) Autorun(f func()) {
	e.autorun = f
}

// Run pops and runs every turn in the queue until the queue is emptied.
//
// Run must not be called twice at the same time.
//
// A routine that fails without handling the failure itself, on any of the
// fire-and-forget paths, panics inside its turn. Run collects such panics,
// keeps draining the queue, and re-panics with an error aggregating all of
// them (and their stack traces) when it returns.
func (e *Executor) Run() {
	e.mu.Lock()
	e.running = true

	for !e.q.Empty() {
		job := e.q.Pop()
		e.mu.Unlock()
		e.ps.Try(job)
		e.mu.Lock()
	}

	e.running = false
	ps := e.ps
	e.ps = nil
	e.mu.Unlock()

	ps.Repanic()
}

// schedule queues job to run on a later turn.
//
// schedule is safe for concurrent use.
func (e *Executor) schedule(job func()) {
	var autorun func()

	e.mu.Lock()

	if !e.running && e.autorun != nil {
		e.running = true
		autorun = e.autorun
	}

	e.q.Push(job)
	e.mu.Unlock()

	if autorun != nil {
		autorun()
	}
}
