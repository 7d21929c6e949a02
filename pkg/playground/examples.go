package playground

import (
	"context"

	"github.com/pokt-network/rxsubjects/pkg/observable"
	"github.com/pokt-network/rxsubjects/pkg/observable/disposable"
	"github.com/pokt-network/rxsubjects/pkg/observable/subject"
)

// publishExample shows that a publish subject only delivers events pushed
// after subscribing, and that a terminated subject delivers only its terminal
// event to new subscribers.
func (r *Runner) publishExample(_ context.Context, p *printer) error {
	p.header("PublishSubject")

	subj := subject.NewPublishSubject[string](r.subjectOptions("publish")...)
	subj.OnNext("Is anyone listening?")

	subscriptionOne := observable.SubscribeWith[string](subj, observable.Handlers[string]{
		OnNext: func(value string) { p.println(value) },
	})

	subj.OnNext("1")
	subj.OnNext("2")

	subscriptionTwo := subj.Subscribe(labeled[string](p, "2)"))

	subj.OnNext("3")
	subscriptionOne.Dispose()
	subj.OnNext("4")

	subj.OnCompleted()
	subj.OnNext("5")

	subscriptionTwo.Dispose()

	bag := disposable.NewBag()
	defer bag.Dispose()

	disposable.DisposedBy(subj.Subscribe(labeled[string](p, "3)")), bag)

	subj.OnNext("?")

	return nil
}

// behaviorExample shows that a behavior subject delivers its current value to
// new subscribers, and only its error once it has failed.
func (r *Runner) behaviorExample(_ context.Context, p *printer) error {
	p.header("BehaviorSubject")

	subj := subject.NewBehaviorSubject(r.config.BehaviorInitialValue, r.subjectOptions("behavior")...)

	bag := disposable.NewBag()
	defer bag.Dispose()

	disposable.DisposedBy(subj.Subscribe(labeled[string](p, "1)")), bag)

	subj.OnNext("X")
	subj.OnError(ErrAnError)

	disposable.DisposedBy(subj.Subscribe(labeled[string](p, "2)")), bag)

	return nil
}

// replayExample shows that a replay subject replays its most recent values to
// new subscribers, before delivering new ones.
func (r *Runner) replayExample(_ context.Context, p *printer) error {
	p.header("ReplaySubject")

	subj, err := subject.NewReplaySubject[string](r.config.ReplayBufferSize, r.subjectOptions("replay")...)
	if err != nil {
		return err
	}

	bag := disposable.NewBag()
	defer bag.Dispose()

	subj.OnNext("1")
	subj.OnNext("2")
	subj.OnNext("3")

	disposable.DisposedBy(subj.Subscribe(labeled[string](p, "1)")), bag)
	disposable.DisposedBy(subj.Subscribe(labeled[string](p, "2)")), bag)

	subj.OnNext("4")

	disposable.DisposedBy(subj.Subscribe(labeled[string](p, "3)")), bag)

	subj.OnError(ErrAnError)

	return nil
}

// relayExample shows that a relay holds a current value like a behavior
// subject but can only ever accept new values.
func (r *Runner) relayExample(_ context.Context, p *printer) error {
	p.header("BehaviorRelay")

	relay := subject.NewRelay(r.config.RelayInitialValue, r.subjectOptions("relay")...)

	bag := disposable.NewBag()
	defer bag.Dispose()

	relay.Accept("New initial value")

	disposable.DisposedBy(
		observable.AsObservable[string](relay).Subscribe(labeled[string](p, "1)")),
		bag,
	)

	relay.Accept("1")

	disposable.DisposedBy(
		observable.AsObservable[string](relay).Subscribe(labeled[string](p, "2)")),
		bag,
	)

	relay.Accept("2")

	return nil
}
