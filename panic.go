package suspend

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

type panicstack []panicitem

func (ps panicstack) Repanic() {
	if len(ps) != 0 {
		panic(&panicvalue{items: ps})
	}
}

func (ps *panicstack) Try(f func()) (ok bool) {
	defer func() {
		if !ok {
			v := recover()
			if v == nil {
				panic("suspend: suspend does not support runtime.Goexit()")
			}
			*ps = append(*ps, panicitem{v, debug.Stack()})
		}
	}()
	f()
	return true
}

type panicitem struct {
	value any
	stack []byte
}

// A panicvalue is an error carrying one or more captured panics along with
// their stack traces. It implements Unwrap() []error so that errors.Is and
// errors.As see through it to any error-typed panic values.
type panicvalue struct {
	items []panicitem
	errs  atomic.Pointer[[]error]
}

// newPanicError captures a single recovered panic value as an error.
func newPanicError(v any) error {
	return &panicvalue{items: []panicitem{{v, debug.Stack()}}}
}

func (pv *panicvalue) Error() string {
	var b strings.Builder
	b.WriteString("as follows:")
	for i, p := range pv.items {
		fmt.Fprintf(&b, "\n(%d/%d) panic: %v", i+1, len(pv.items), p.value)
		if p.stack != nil {
			b.WriteString("\n\n")
			b.Write(p.stack)
		}
	}
	return b.String()
}

func (pv *panicvalue) Unwrap() []error {
	if p := pv.errs.Load(); p != nil {
		return *p
	}
	var errs []error
	for _, p := range pv.items {
		if err, ok := p.value.(error); ok {
			errs = append(errs, err)
		}
	}
	pv.errs.Store(&errs)
	return errs
}
