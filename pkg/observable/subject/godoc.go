// Package subject implements the four subject variants: publish, behavior,
// replay and relay. Every variant fans events out synchronously, on the
// producer's goroutine, to the observers registered at the time of the push.
//
// Subjects are safe for concurrent use. Pushes issued concurrently from
// several goroutines are delivered in an unspecified interleaving; producers
// which need a total order must serialize their calls.
package subject
