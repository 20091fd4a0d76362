package suspend

import "sync"

// A fanIn drives one [Task]: arity+1 completion slots, a shared countdown,
// and a single emission. Slot 0 is reserved for "the task function
// returned", so a task with zero declared callbacks still follows the same
// completion protocol.
type fanIn struct {
	mu     sync.Mutex
	task   Task
	slots  []Args
	fired  []bool
	count  int
	done   bool
	settle func(any, error)
}

// fanIn invokes task synchronously, wiring slots 1..arity as its
// callbacks. An error from the invocation fails the suspension at once;
// slot 0 never fires in that case and no aggregate is emitted. Otherwise
// slot 0 fires, and the aggregate is emitted the instant the last of the
// arity+1 slots fires — whichever slot that happens to be.
func (e *Executor) fanIn(task Task, settle func(any, error)) {
	f := &fanIn{
		task:   task,
		slots:  make([]Args, task.arity+1),
		fired:  make([]bool, task.arity+1),
		count:  task.arity + 1,
		settle: settle,
	}

	callbacks := make([]Callback, task.arity)
	for i := range callbacks {
		callbacks[i] = f.slot(i + 1)
	}

	if err := f.invoke(callbacks); err != nil {
		f.fail(err)
		return
	}

	f.slot(0)()
}

func (f *fanIn) invoke(callbacks []Callback) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = newPanicError(v)
		}
	}()
	return f.task.do(callbacks)
}

// slot returns the receiver for slot i. The first invocation captures its
// arguments and decrements the countdown; later invocations are no-ops.
// Only one invocation can bring the countdown to zero, so the aggregate is
// emitted exactly once.
func (f *fanIn) slot(i int) Callback {
	return func(args ...any) {
		f.mu.Lock()
		if f.done || f.fired[i] {
			f.mu.Unlock()
			return
		}
		f.fired[i] = true
		f.slots[i] = Args(args)
		f.count--
		last := f.count == 0
		if last {
			f.done = true
		}
		f.mu.Unlock()

		if last {
			f.settle(f.aggregate(), nil)
		}
	}
}

func (f *fanIn) fail(err error) {
	f.mu.Lock()
	if f.done {
		f.mu.Unlock()
		return
	}
	f.done = true
	f.mu.Unlock()

	f.settle(nil, err)
}

// aggregate shapes the result: arity 0 emits an empty sequence, arity 1
// the single callback's arguments flat, and arity >= 2 one sequence per
// declared callback. Slot 0 never contributes values.
func (f *fanIn) aggregate() any {
	switch arity := f.task.arity; arity {
	case 0:
		return Args{}
	case 1:
		if f.slots[1] == nil {
			return Args{}
		}
		return f.slots[1]
	default:
		out := make(Args, arity)
		for i := range out {
			args := f.slots[i+1]
			if args == nil {
				args = Args{}
			}
			out[i] = args
		}
		return out
	}
}
