package suspend

import "sync"

// Future is the asynchronous-result boundary: anything that reports
// eventual success or failure exactly once.
//
// Yielding a Future at a suspension point resumes the routine with the
// resolved value, or fails it with the rejection reason, always on a later
// executor turn — never inside the Future's own notification stack.
type Future interface {
	// Subscribe registers handlers for the eventual outcome. Each
	// registered handler is invoked at most once; if the result is
	// already known, the matching handler may be invoked synchronously.
	Subscribe(onResolve func(v any), onReject func(err error))
}

// A Promise is a [Future] with externally triggerable resolution.
// The first call of Resolve or Reject wins; later calls are no-ops.
//
// A Promise is safe for concurrent use.
type Promise struct {
	mu       sync.Mutex
	settled  bool
	rejected bool
	value    any
	err      error
	subs     []subscriber
}

type subscriber struct {
	onResolve func(any)
	onReject  func(error)
}

// NewPromise creates a pending [Promise].
func NewPromise() *Promise {
	return new(Promise)
}

// Resolve fulfills p with v. A no-op if p has already settled.
func (p *Promise) Resolve(v any) {
	p.settle(v, nil, false)
}

// Reject fails p with err. A no-op if p has already settled.
// Panics if err is nil.
func (p *Promise) Reject(err error) {
	if err == nil {
		panic("suspend: Reject called with nil error")
	}
	p.settle(nil, err, true)
}

func (p *Promise) settle(v any, err error, rejected bool) {
	p.mu.Lock()
	if p.settled {
		p.mu.Unlock()
		return
	}
	p.settled = true
	p.rejected = rejected
	p.value, p.err = v, err
	subs := p.subs
	p.subs = nil
	p.mu.Unlock()

	for _, s := range subs {
		s.deliver(v, err, rejected)
	}
}

// Subscribe implements [Future]. Either handler may be nil.
// Subscribing to a settled promise invokes the matching handler
// synchronously.
func (p *Promise) Subscribe(onResolve func(v any), onReject func(err error)) {
	p.mu.Lock()
	if !p.settled {
		p.subs = append(p.subs, subscriber{onResolve, onReject})
		p.mu.Unlock()
		return
	}
	v, err, rejected := p.value, p.err, p.rejected
	p.mu.Unlock()

	subscriber{onResolve, onReject}.deliver(v, err, rejected)
}

func (s subscriber) deliver(v any, err error, rejected bool) {
	if rejected {
		if s.onReject != nil {
			s.onReject(err)
		}
		return
	}
	if s.onResolve != nil {
		s.onResolve(v)
	}
}
