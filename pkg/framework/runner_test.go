package framework

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type runFunc func(context.Context) error

func (f runFunc) Run(ctx context.Context) error { return f(ctx) }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestRunnerAggregatesErrors(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")
	err := NewRunner().Go(
		runFunc(func(context.Context) error { return errA }),
		NamedRun("b", runFunc(func(context.Context) error { return errB })),
		runFunc(func(context.Context) error { return context.Canceled }),
		runFunc(func(context.Context) error { return nil }),
	).Wait()
	require.Error(t, err)
	require.True(t, errors.Is(err, errA))
	require.True(t, errors.Is(err, errB))
	agg, ok := err.(*AggregatedError)
	require.True(t, ok)
	require.Len(t, agg.Errors, 2)
}

func TestRunnerNoError(t *testing.T) {
	err := NewRunner().Go(runFunc(func(context.Context) error { return nil })).Wait()
	require.NoError(t, err)
}

func TestAggregatedErrorMessage(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Aggregate())
	errs.Add(nil, errors.New("one"))
	require.Equal(t, "one", errs.Aggregate().Error())
	errs.Add(errors.New("two"))
	require.Equal(t, "multiple errors:\none\ntwo", errs.Error())
}

func TestRunWithContextCloser(t *testing.T) {
	t.Run("fn returns", func(t *testing.T) {
		var closed int
		err := RunWithContextCloser(context.Background(), closerFunc(func() error {
			closed++
			return nil
		}), func() error { return nil })
		require.NoError(t, err)
		require.Equal(t, 1, closed)
	})

	t.Run("canceled", func(t *testing.T) {
		var closed int
		unblock := make(chan struct{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := RunWithContextCloser(ctx, closerFunc(func() error {
			closed++
			close(unblock)
			return nil
		}), func() error {
			<-unblock
			return errors.New("closed")
		})
		require.Equal(t, context.Canceled, err)
		require.Equal(t, 1, closed)
	})
}
