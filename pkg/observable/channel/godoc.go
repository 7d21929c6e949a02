// Package channel bridges observables and Go channels: Observe consumes an
// observable through a buffered channel and FromProducer turns a producer
// channel into an observable.
package channel
