// Package filter splits an observable of Either values into its successes and
// its errors.
package filter

import (
	"github.com/pokt-network/rxsubjects/pkg/either"
	"github.com/pokt-network/rxsubjects/pkg/observable"
	"github.com/pokt-network/rxsubjects/pkg/observable/operator"
)

// EitherError returns an observable which emits the errors held by the
// Either values of eitherObservable, skipping successes.
func EitherError[T any](
	eitherObservable observable.Observable[either.Either[T]],
) observable.Observable[error] {
	return operator.Map(
		eitherObservable,
		mapEitherError[T],
	)
}

// EitherSuccess returns an observable which emits the values held by the
// Either values of eitherObservable, skipping errors.
func EitherSuccess[T any](
	eitherObservable observable.Observable[either.Either[T]],
) observable.Observable[T] {
	return operator.Map(
		eitherObservable,
		mapEitherSuccess[T],
	)
}

func mapEitherError[T any](
	inputEither either.Either[T],
) (_ error, skip bool) {
	if _, err := inputEither.ValueOrError(); err != nil {
		return err, false
	}
	return nil, true
}

func mapEitherSuccess[T any](
	inputEither either.Either[T],
) (_ T, skip bool) {
	value, err := inputEither.ValueOrError()
	if err != nil {
		return value, true
	}
	return value, false
}
