package suspend_test

import (
	"errors"
	"testing"

	"github.com/goq-dev/suspend"
	"github.com/stretchr/testify/require"
)

func TestWrapArity(t *testing.T) {
	var e suspend.Executor

	f := e.Wrap(3, func(step suspend.Step, args ...any) (any, error) {
		return nil, nil
	})

	require.Equal(t, 3, f.Arity())
}

func TestWrapCall(t *testing.T) {
	var e suspend.Executor
	e.Autorun(e.Run)

	var got suspend.Args
	f := e.Wrap(2, func(step suspend.Step, args ...any) (any, error) {
		got = suspend.Args(args)
		return nil, nil
	})

	f.Call("x", "y")

	require.Equal(t, suspend.Args{"x", "y"}, got)
}

func TestWrapComposesAsTask(t *testing.T) {
	var e suspend.Executor
	e.Autorun(e.Run)

	// A wrapped routine of arity 1 receives its completion callback as
	// its single argument and reports through it.
	inner := e.Wrap(1, func(step suspend.Step, args ...any) (any, error) {
		done := args[0].(suspend.Callback)
		res, err := step(echoTask("inner"))
		if err != nil {
			return nil, err
		}
		done(res.(suspend.Args)...)
		return nil, nil
	})

	var got any
	e.Spawn(func(step suspend.Step, _ ...any) (any, error) {
		res, err := step(inner)
		if err != nil {
			return nil, err
		}
		got = res
		return nil, nil
	})

	require.Equal(t, suspend.Args{"inner"}, got)
}

func TestSpawnRunsWithoutArguments(t *testing.T) {
	var e suspend.Executor
	e.Autorun(e.Run)

	var got int
	e.Spawn(func(step suspend.Step, args ...any) (any, error) {
		got = len(args)
		return nil, nil
	})

	require.Zero(t, got)
}

func TestAsyncResolves(t *testing.T) {
	var e suspend.Executor
	e.Autorun(e.Run)

	p := e.Async(func(step suspend.Step, args ...any) (any, error) {
		res, err := step(echoTask(args...))
		if err != nil {
			return nil, err
		}
		return res, nil
	}, "a", "b")

	var got any
	p.Subscribe(func(v any) { got = v }, nil)

	require.Equal(t, suspend.Args{"a", "b"}, got)
}

func TestAsyncRejects(t *testing.T) {
	var e suspend.Executor
	e.Autorun(e.Run)

	errBoom := errors.New("boom")
	p := e.Async(func(step suspend.Step, args ...any) (any, error) {
		if _, err := step(failTask(errBoom)); err != nil {
			return nil, err
		}
		return "unreachable", nil
	})

	var got error
	p.Subscribe(nil, func(err error) { got = err })

	require.True(t, got == errBoom)
}

func TestAsyncRejectsOnPanic(t *testing.T) {
	var e suspend.Executor
	e.Autorun(e.Run)

	p := e.Async(func(step suspend.Step, args ...any) (any, error) {
		panic("blew up")
	})

	var got error
	p.Subscribe(nil, func(err error) { got = err })

	require.Error(t, got)
	require.Contains(t, got.Error(), "blew up")
}

func TestAsyncComposesAsFuture(t *testing.T) {
	var e suspend.Executor
	e.Autorun(e.Run)

	inner := func(step suspend.Step, args ...any) (any, error) {
		res, err := step(echoTask("nested"))
		if err != nil {
			return nil, err
		}
		return res, nil
	}

	var got any
	e.Spawn(func(step suspend.Step, _ ...any) (any, error) {
		v, err := step(e.Async(inner))
		if err != nil {
			return nil, err
		}
		got = v
		return nil, nil
	})

	require.Equal(t, suspend.Args{"nested"}, got)
}

func TestOnceSuccess(t *testing.T) {
	var e suspend.Executor

	var got any
	e.Once(echoTask("v"), func(v any) { got = v }, nil)

	// Task completion is synchronous: no turn is needed.
	require.Equal(t, suspend.Args{"v"}, got)
}

func TestOnceFailureHandler(t *testing.T) {
	var e suspend.Executor

	errBoom := errors.New("boom")

	var got error
	e.Once(failTask(errBoom), nil, func(err error) { got = err })

	require.True(t, got == errBoom)
}

func TestOnceUnhandledFailurePanics(t *testing.T) {
	var e suspend.Executor

	errBoom := errors.New("boom")

	require.PanicsWithError(t, errBoom.Error(), func() {
		e.Once(failTask(errBoom), nil, nil)
	})
}

func TestOnceDeferredShape(t *testing.T) {
	var e suspend.Executor

	var got any
	e.Once(nil, func(v any) { got = v }, nil)

	require.Nil(t, got, "the nil request resolves on a later turn")

	e.Run()

	require.Equal(t, suspend.Args{}, got)
}
