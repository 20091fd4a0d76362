package suspend

import "fmt"

// Args is an ordered sequence of values: the arguments captured from one
// callback invocation, or an aggregate result fed back into a routine.
//
// An Args value also classifies as a collection request, the same as []any.
type Args []any

// A Callback is a completion slot receiver. The first invocation captures
// its arguments; all later invocations on the same slot are no-ops.
//
// Callbacks are safe to invoke from any goroutine, which is what lets a
// [Task] complete from a timer or an I/O goroutine.
type Callback func(args ...any)

// A Task is a callback-style operation with an explicitly declared number
// of completion callbacks. When a routine yields a Task, the engine
// invokes do with exactly arity callbacks and resumes the routine once
// every callback has fired and do has returned.
//
// A non-nil error returned by do (or a panic escaping it) fails the
// suspension immediately; callbacks fired before the failure are
// discarded.
type Task struct {
	arity int
	do    func(callbacks []Callback) error
}

// NewTask creates a [Task] that declares arity completion callbacks.
// Arity zero is valid: such a task completes as soon as do returns.
func NewTask(arity int, do func(callbacks []Callback) error) Task {
	if arity < 0 {
		panic("suspend: negative task arity")
	}
	if do == nil {
		panic("suspend: nil task function")
	}
	return Task{arity: arity, do: do}
}

// Arity returns the declared callback count of t.
func (t Task) Arity() int {
	return t.arity
}

// An InvalidRequestError reports a value produced at a suspension point
// that matches none of the request shapes. It signals a misuse of the
// suspension contract, unlike a failure raised by a task itself.
type InvalidRequestError struct {
	Value any
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("suspend: invalid request descriptor %T: %v", e.Value, e.Value)
}

// classify inspects one request descriptor and arranges for settle to be
// called exactly once with the request's outcome.
//
// The no-op shapes (nil and the empty collection) and both Future outcomes
// settle on a later turn, never inside the current call stack. Task and
// collection outcomes settle the instant their countdown reaches zero,
// which may well be synchronous. A malformed descriptor settles
// synchronously with an [InvalidRequestError].
func (e *Executor) classify(req any, settle func(any, error)) {
	switch req := req.(type) {
	case nil:
		e.schedule(func() { settle(Args{}, nil) })
	case Task:
		if req.do == nil {
			settle(nil, &InvalidRequestError{Value: req})
			return
		}
		e.fanIn(req, settle)
	case Func:
		e.fanIn(req.task(), settle)
	case Args:
		e.fanOut(req, settle)
	case []any:
		e.fanOut(req, settle)
	case Future:
		req.Subscribe(
			func(v any) { e.schedule(func() { settle(v, nil) }) },
			func(err error) { e.schedule(func() { settle(nil, err) }) },
		)
	default:
		settle(nil, &InvalidRequestError{Value: req})
	}
}
