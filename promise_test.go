package suspend_test

import (
	"errors"
	"testing"

	"github.com/goq-dev/suspend"
	"github.com/stretchr/testify/require"
)

func TestPromiseSettlesOnce(t *testing.T) {
	p := suspend.NewPromise()

	var resolved []any
	var rejected []error
	p.Subscribe(
		func(v any) { resolved = append(resolved, v) },
		func(err error) { rejected = append(rejected, err) },
	)

	p.Resolve("first")
	p.Resolve("second")
	p.Reject(errors.New("too late"))

	require.Equal(t, []any{"first"}, resolved)
	require.Empty(t, rejected)
}

func TestPromiseRejectionWins(t *testing.T) {
	p := suspend.NewPromise()

	errBoom := errors.New("boom")
	p.Reject(errBoom)
	p.Resolve("too late")

	var got error
	p.Subscribe(
		func(v any) { t.Errorf("unexpected resolution: %v", v) },
		func(err error) { got = err },
	)

	require.True(t, got == errBoom)
}

func TestPromiseLateSubscriber(t *testing.T) {
	p := suspend.NewPromise()
	p.Resolve(42)

	var got any
	p.Subscribe(func(v any) { got = v }, nil)

	require.Equal(t, 42, got)
}

func TestPromiseMultipleSubscribers(t *testing.T) {
	p := suspend.NewPromise()

	var a, b any
	p.Subscribe(func(v any) { a = v }, nil)
	p.Subscribe(func(v any) { b = v }, nil)

	p.Resolve("fan-out")

	require.Equal(t, "fan-out", a)
	require.Equal(t, "fan-out", b)
}

func TestPromiseRejectNilPanics(t *testing.T) {
	p := suspend.NewPromise()

	require.PanicsWithValue(t, "suspend: Reject called with nil error", func() {
		p.Reject(nil)
	})
}
