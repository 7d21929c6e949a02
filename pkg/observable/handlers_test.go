package observable_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/rxsubjects/pkg/observable"
	"github.com/pokt-network/rxsubjects/pkg/observable/subject"
)

func TestSubscribeWith_Handlers(t *testing.T) {
	tests := []struct {
		desc              string
		terminate         func(subj observable.Subject[int])
		expectedCalls     []string
		disposeAfterwards bool
	}{
		{
			desc:          "completed",
			terminate:     func(subj observable.Subject[int]) { subj.OnCompleted() },
			expectedCalls: []string{"next 1", "completed", "disposed"},
		},
		{
			desc:          "error",
			terminate:     func(subj observable.Subject[int]) { subj.OnError(errTest) },
			expectedCalls: []string{"next 1", "error anError", "disposed"},
		},
		{
			desc:              "explicit dispose",
			terminate:         func(subj observable.Subject[int]) {},
			expectedCalls:     []string{"next 1", "disposed"},
			disposeAfterwards: true,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			subj := subject.NewPublishSubject[int]()

			var calls []string
			sub := observable.SubscribeWith[int](subj, observable.Handlers[int]{
				OnNext:      func(value int) { calls = append(calls, fmt.Sprintf("next %d", value)) },
				OnError:     func(err error) { calls = append(calls, "error "+err.Error()) },
				OnCompleted: func() { calls = append(calls, "completed") },
				OnDisposed:  func() { calls = append(calls, "disposed") },
			})

			subj.OnNext(1)
			test.terminate(subj)
			if test.disposeAfterwards {
				sub.Dispose()
			}

			// OnDisposed runs exactly once, however many times Dispose is called.
			sub.Dispose()
			sub.Dispose()

			require.Equal(t, test.expectedCalls, calls)
			require.True(t, sub.IsDisposed())
		})
	}
}

func TestSubscribeWith_NilHandlersAreSkipped(t *testing.T) {
	subj := subject.NewBehaviorSubject(1)
	sub := observable.SubscribeWith[int](subj, observable.Handlers[int]{})

	require.NotPanics(t, func() {
		subj.OnNext(2)
		subj.OnError(errTest)
	})
	require.True(t, sub.IsDisposed())
}
