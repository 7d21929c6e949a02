// Package polyzap provides a polylog.Logger implementation backed by zap.
// Events accumulate zap fields and are written through zap's checked-entry
// API when Msg, Msgf or Send is called.
package polyzap
