package suspend

import "sync"

// A fanOut drives an ordered collection of sub-requests: each element is
// classified and driven independently, results land at their element's
// index, and a shared countdown decides the single emission.
type fanOut struct {
	mu      sync.Mutex
	count   int
	results Args
	done    bool
	settle  func(any, error)
}

// fanOut initiates elements in list order; none of them block on
// completion. The first failure settles the suspension and stops
// initiating elements that have not started yet. Elements already in
// flight run to completion, but their outcomes are discarded.
//
// An empty collection behaves like the nil request: it resolves with an
// empty sequence on a later turn.
func (e *Executor) fanOut(reqs []any, settle func(any, error)) {
	if len(reqs) == 0 {
		e.schedule(func() { settle(Args{}, nil) })
		return
	}

	f := &fanOut{
		count:   len(reqs),
		results: make(Args, len(reqs)),
		settle:  settle,
	}

	for i, req := range reqs {
		if f.failed() {
			break
		}
		e.classify(req, f.element(i))
	}
}

func (f *fanOut) failed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

// element returns the outcome receiver for the i-th sub-request.
func (f *fanOut) element(i int) func(any, error) {
	return func(v any, err error) {
		f.mu.Lock()
		if f.done {
			f.mu.Unlock()
			return
		}
		if err != nil {
			f.done = true
			f.mu.Unlock()
			f.settle(nil, err)
			return
		}
		f.results[i] = v
		f.count--
		last := f.count == 0
		if last {
			f.done = true
		}
		f.mu.Unlock()

		if last {
			f.settle(f.results, nil)
		}
	}
}
