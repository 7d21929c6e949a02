package traits_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/rxsubjects/pkg/observable"
	"github.com/pokt-network/rxsubjects/pkg/observable/disposable"
	"github.com/pokt-network/rxsubjects/pkg/observable/subject"
	"github.com/pokt-network/rxsubjects/pkg/observable/traits"
)

func TestNewCompletable(t *testing.T) {
	tests := []struct {
		desc        string
		emitErr     error
		expectedErr error
	}{
		{desc: "completed", emitErr: nil},
		{desc: "error", emitErr: errTest, expectedErr: errTest},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			var dismissed int
			completable := traits.NewCompletable(func(emit func(error)) observable.Disposable {
				emit(test.emitErr)
				return disposable.New(func() { dismissed++ })
			})

			var (
				completed bool
				gotErr    error
			)
			completable.Subscribe(
				func() { completed = true },
				func(err error) { gotErr = err },
			)

			require.Equal(t, 1, dismissed)
			if test.expectedErr != nil {
				require.False(t, completed)
				require.ErrorIs(t, gotErr, test.expectedErr)
				return
			}
			require.True(t, completed)
			require.NoError(t, gotErr)
		})
	}
}

func TestCompletable_DisposeRunsTeardown(t *testing.T) {
	var (
		dismissed int
		emitFn    func(error)
	)
	completable := traits.NewCompletable(func(emit func(error)) observable.Disposable {
		emitFn = emit
		return disposable.New(func() { dismissed++ })
	})

	completed := false
	sub := completable.Subscribe(func() { completed = true }, nil)
	require.Equal(t, 0, dismissed)

	sub.Dispose()
	require.Equal(t, 1, dismissed)

	// Emitting after dispose is ignored.
	emitFn(nil)
	require.False(t, completed)
	require.Equal(t, 1, dismissed)
}

func TestAsCompletable(t *testing.T) {
	subj := subject.NewPublishSubject[int]()

	completed := false
	var events []string
	traits.AsCompletable[int](subj).Subscribe(func() { completed = true }, nil)
	traits.AsCompletable[int](subj).AsObservable().Subscribe(
		observable.ObserverFunc[struct{}](func(event observable.Event[struct{}]) {
			events = append(events, event.Kind().String())
		}),
	)

	subj.OnNext(1)
	subj.OnNext(2)
	require.False(t, completed)

	subj.OnCompleted()
	require.True(t, completed)
	require.Equal(t, []string{"completed"}, events)
}
