// Package playground runs the subject examples: each example drives a subject
// through a fixed sequence of pushes, subscriptions and disposals, and writes
// one line per delivered event.
package playground
