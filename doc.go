// Package suspend lets a single sequential routine drive callback-style
// and future-style asynchronous operations as if they were synchronous
// steps.
//
// A routine is an ordinary Go function, a [Body], that receives a [Step].
// Whenever the routine needs an asynchronous result, it hands a request to
// the step and blocks on the call. The engine classifies the request,
// drives it, and resumes the routine with either the aggregate result or
// the failure — as two distinct channels that never mix: data always comes
// back as the step's first return value, errors always as its second.
//
// # Request Shapes
//
// A value handed to a step must be one of a small closed set of shapes:
//
//   - nil: do nothing; resume with an empty [Args] on a later turn.
//   - [Task]: a callable declaring how many completion callbacks it
//     expects. The routine resumes once every callback has fired and the
//     task function has returned.
//   - [Args] or []any: an ordered collection of sub-requests, each one
//     classified recursively and driven concurrently. The routine resumes
//     with the results in input order, regardless of completion order. An
//     empty collection behaves like nil.
//   - [Future]: an asynchronous result observed exactly once. [Promise]
//     implements it, as can any external handle.
//   - [Func]: a routine wrapped by [Executor.Wrap] composes as a Task of
//     its declared arity.
//
// Anything else fails the step with an [InvalidRequestError] naming the
// offending type and value.
//
// # Fan-In: Tasks and Completion Slots
//
// A [Task] of arity N is driven through N+1 single-use completion slots;
// the extra slot fires when the task function itself returns, so a task
// with zero callbacks still completes. A slot's first invocation captures
// its arguments; later invocations are ignored. The aggregate is emitted
// the instant the last slot fires: an empty sequence for arity 0, the
// single callback's arguments flat for arity 1, one sequence per callback
// for arity 2 and up.
//
// # Turns and Deferral
//
// An [Executor] runs everything as turns popped off a FIFO queue, in a
// single-threaded manner. The no-op and Future shapes resolve on a later
// turn, so a routine is never resumed from inside an asynchronous result's
// own notification stack. Task-callback completion, in contrast, resumes
// the routine synchronously, the instant the countdown reaches zero —
// control returns as soon as all callbacks fire.
//
// # Failures
//
// A failure — an error returned by a task function, a Future rejection, a
// malformed request, or a captured panic — is injected at the exact
// suspension point that caused it, so recovery logic wrapping that step
// observes the original error value and can handle it locally. A failure
// the routine does not handle becomes an uncaught failure: the
// fire-and-forget paths ([Func.Call], [Executor.Spawn]) re-raise it,
// causing [Executor.Run] to panic when it returns; [Executor.Async]
// rejects the returned promise instead.
//
// # No Cancellation
//
// Once started, a routine runs to completion or to an uncaught failure;
// there is no cancel transition and no timeout at the engine level. A task
// is free to implement its own timeout by firing a slot from a timer,
// which is indistinguishable from any other completion path.
package suspend
