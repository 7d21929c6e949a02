package logging

import (
	"context"

	"github.com/pokt-network/rxsubjects/pkg/observable"
	"github.com/pokt-network/rxsubjects/pkg/observable/operator"
	"github.com/pokt-network/rxsubjects/pkg/polylog"
)

// LogErrors logs every error emitted by errs with the logger attached to ctx,
// until errs terminates or ctx is done.
func LogErrors(ctx context.Context, errs observable.Observable[error]) observable.Disposable {
	return operator.ForEach(ctx, errs, forEachErrorLogError)
}

func forEachErrorLogError(ctx context.Context, err error) {
	polylog.Ctx(ctx).Error().Err(err).Msg("observed error")
}
