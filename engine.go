package suspend

// drive runs one routine to completion: resume, classify the produced
// request, feed the outcome back in, repeat. The terminal transition hands
// the routine's final value, or its uncaught failure, to done.
//
// The initial resume executes as a turn of its own, so spawning never runs
// routine code inside the caller's stack.
func (e *Executor) drive(body Body, args Args, done func(any, error)) {
	r := newRoutine(body, args)

	var resume func(value any, err error)
	resume = func(value any, err error) {
		s := r.resume(value, err)
		if s.done {
			done(s.value, s.err)
			return
		}
		e.classify(s.req, resume)
	}

	e.schedule(func() { resume(nil, nil) })
}

// rethrow is the terminal transition of the fire-and-forget paths:
// an uncaught failure re-raises into whatever is pumping the executor.
func rethrow(_ any, err error) {
	if err != nil {
		panic(err)
	}
}

// A Func is a wrapped routine constructor, created by [Executor.Wrap].
// Calling it constructs the routine and starts it, fire and forget.
//
// A Func also classifies as a request: yielded at a suspension point, it
// participates as a [Task] of its declared arity, with the completion
// callbacks passed to the routine as its arguments. The routine is then
// responsible for invoking them.
type Func struct {
	e     *Executor
	arity int
	body  Body
}

// Wrap binds body to e as a plain invocable. The arity declares how many
// parameters body expects, which is what lets the result compose as a
// [Task]; pass zero when body takes no arguments.
func (e *Executor) Wrap(arity int, body Body) Func {
	if arity < 0 {
		panic("suspend: negative arity")
	}
	if body == nil {
		panic("suspend: nil Body")
	}
	return Func{e: e, arity: arity, body: body}
}

// Arity returns the declared parameter count of f.
func (f Func) Arity() int {
	return f.arity
}

// Call constructs the routine with args and starts it.
// There is no observable return value; an uncaught failure re-raises,
// causing [Executor.Run] to panic when it returns.
func (f Func) Call(args ...any) {
	f.e.drive(f.body, Args(args), rethrow)
}

// task adapts f into the [Task] shape: the completion callbacks become
// the routine's arguments. The task's own synchronous part is just
// starting the routine, so slot 0 fires immediately and completion is
// decided by the callbacks alone.
func (f Func) task() Task {
	return Task{arity: f.arity, do: func(callbacks []Callback) error {
		args := make(Args, len(callbacks))
		for i, cb := range callbacks {
			args[i] = cb
		}
		f.e.drive(f.body, args, rethrow)
		return nil
	}}
}

// Spawn constructs a routine from body with no arguments and starts it,
// fire and forget. An uncaught failure re-raises, causing [Executor.Run]
// to panic when it returns.
func (e *Executor) Spawn(body Body) {
	if body == nil {
		panic("suspend: nil Body")
	}
	e.drive(body, nil, rethrow)
}

// Async constructs a routine from body with the supplied arguments,
// starts it, and returns a [Promise] that resolves with the routine's
// final value or rejects with its uncaught failure.
func (e *Executor) Async(body Body, args ...any) *Promise {
	if body == nil {
		panic("suspend: nil Body")
	}
	p := NewPromise()
	e.drive(body, Args(args), func(v any, err error) {
		if err != nil {
			p.Reject(err)
		} else {
			p.Resolve(v)
		}
	})
	return p
}

// Once classifies and drives a single request descriptor, without any
// routine, then invokes onResolve with the aggregate result or onReject
// with the failure. Either handler may be nil; a failure with no onReject
// re-raises into the caller's environment.
func (e *Executor) Once(req any, onResolve func(any), onReject func(error)) {
	e.classify(req, func(v any, err error) {
		switch {
		case err != nil && onReject != nil:
			onReject(err)
		case err != nil:
			panic(err)
		case onResolve != nil:
			onResolve(v)
		}
	})
}
