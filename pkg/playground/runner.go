package playground

import (
	"context"
	"fmt"
	"io"
	"sync"

	"cosmossdk.io/depinject"

	"github.com/pokt-network/rxsubjects/pkg/observable"
	"github.com/pokt-network/rxsubjects/pkg/observable/subject"
	"github.com/pokt-network/rxsubjects/pkg/playground/config"
	"github.com/pokt-network/rxsubjects/pkg/polylog"
)

// exampleFn runs one example, writing its transcript through p.
type exampleFn func(ctx context.Context, p *printer) error

// Runner runs the configured examples.
type Runner struct {
	logger   polylog.Logger
	metrics  subject.Metrics
	config   *config.PlaygroundConfig
	examples map[string]exampleFn
	output   io.Writer
}

// NewRunner returns a Runner which writes example transcripts to output.
//
// Required dependencies:
//   - polylog.Logger
//   - subject.Metrics
//   - *config.PlaygroundConfig
func NewRunner(deps depinject.Config, output io.Writer) (*Runner, error) {
	runner := &Runner{output: output}

	if err := depinject.Inject(
		deps,
		&runner.logger,
		&runner.metrics,
		&runner.config,
	); err != nil {
		return nil, err
	}

	runner.examples = map[string]exampleFn{
		config.ExamplePublish:  runner.publishExample,
		config.ExampleBehavior: runner.behaviorExample,
		config.ExampleReplay:   runner.replayExample,
		config.ExampleRelay:    runner.relayExample,
	}

	return runner, nil
}

// Run runs the named examples in order; if none are named, the examples of the
// playground config are run.
func (r *Runner) Run(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		names = r.config.Examples
	}

	for _, name := range names {
		example, ok := r.examples[name]
		if !ok {
			return ErrPlaygroundUnknownExample.Wrapf("%q", name)
		}

		r.logger.Debug().Str("example", name).Msg("running example")

		p := &printer{output: r.output}
		if err := example(ctx, p); err != nil {
			return err
		}
		if p.err != nil {
			return ErrPlaygroundWrite.Wrapf("example %q: %s", name, p.err)
		}
	}
	return nil
}

// subjectOptions returns the options shared by every subject of an example.
func (r *Runner) subjectOptions(name string) []subject.Option {
	return []subject.Option{
		subject.WithName(name),
		subject.WithLogger(r.logger),
		subject.WithMetrics(r.metrics),
	}
}

// printer writes transcript lines and remembers the first write error, so that
// observers (which cannot return errors) can print freely.
type printer struct {
	mu     sync.Mutex
	output io.Writer
	err    error
}

// header prints the example title.
func (p *printer) header(title string) {
	p.println("\n--- Example of:", title, "---")
}

func (p *printer) println(args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.output, args...)
}

// labeled returns an observer which prints every event, prefixed with label.
// Next events print their value, errors their message, and completion
// "completed".
func labeled[V any](p *printer, label string) observable.Observer[V] {
	return observable.ObserverFunc[V](func(event observable.Event[V]) {
		p.println(label, renderEvent(event))
	})
}

func renderEvent[V any](event observable.Event[V]) string {
	switch event.Kind() {
	case observable.NextEvent:
		value, _ := event.Value()
		return fmt.Sprint(value)
	case observable.ErrorEvent:
		return event.Err().Error()
	default:
		return event.Kind().String()
	}
}
