package suspend

// A Body is the control-flow description of a routine: an ordinary Go
// function that performs asynchronous operations as if they were
// synchronous, by handing each one to step and blocking on the call.
//
// The returned value is the routine's final value; it is discarded on the
// fire-and-forget paths and surfaced by [Executor.Async].
// A returned non-nil error, or a panic, is an uncaught failure.
type Body func(step Step, args ...any) (any, error)

// A Step is a routine's suspension statement. It hands one request
// descriptor to the engine and blocks the routine until the request
// completes, returning the aggregate result, or the failure that occurred
// while driving the request. A failed step leaves the routine perfectly
// able to continue; returning the error from the body is what ends it.
type Step func(req any) (any, error)

// A routine is one execution of a Body: a goroutine that runs the body
// and hands control back and forth over an unbuffered channel pair.
// At any instant either the body or its driver is running, never both.
type routine struct {
	in  chan resumption
	out chan suspension
}

// A resumption is what the engine injects at a suspension point: the
// outcome of the request the routine produced there.
type resumption struct {
	value any
	err   error
}

// A suspension is what a routine hands back to the engine: the next
// request descriptor, or, with done set, the final outcome of the body.
type suspension struct {
	req   any
	done  bool
	value any
	err   error
}

// newRoutine creates a routine in its constructed state.
// The body does not start until the first resume.
//
// Caveat: the goroutine leaks if the routine suspends on a request that
// never completes, e.g. a [Task] that never fires one of its callbacks.
func newRoutine(body Body, args Args) *routine {
	r := &routine{
		in:  make(chan resumption),
		out: make(chan suspension),
	}

	go func() {
		final := suspension{done: true}
		defer func() {
			if v := recover(); v != nil {
				final.value, final.err = nil, newPanicError(v)
			}
			r.out <- final
		}()

		<-r.in // Parked until the initial resume.

		step := func(req any) (any, error) {
			r.out <- suspension{req: req}
			res := <-r.in
			return res.value, res.err
		}

		final.value, final.err = body(step, args...)
	}()

	return r
}

// resume injects a resumption into the routine and blocks until it
// suspends again or finishes. At most one of value and err is meaningful
// per suspension point; err takes precedence.
func (r *routine) resume(value any, err error) suspension {
	r.in <- resumption{value: value, err: err}
	return <-r.out
}
