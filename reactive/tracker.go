package reactive

import "slices"

// Reaction is anything the scheduler can re-run in response to a signal
// change: an Effect or a Memo's backing recomputation.
//
// A Reaction disposed through an ancestor scope stays in the subscriber
// lists of the signals it read and is skipped wherever it's found;
// Effect.Dispose additionally unsubscribes it. Ownership flows one
// direction (scope -> effect; signal -> subscriber) so cycles are
// structurally impossible.
type Reaction interface {
	execute()
	disposed() bool

	addDependency(o Observable)
	removeDependency(o Observable)
}

// Observable is a signal: something a Reaction can subscribe to.
type Observable interface {
	track(r Reaction)
	untrack(r Reaction)
}

// reactionTracker is the "ordered set of subscriber ids" described in §3:
// insertion-order, set semantics (no duplicate subscriptions). A reaction
// unsubscribes itself from every signal before it re-executes
// (dependencyTracker.clearAll), so the set holds the reactions that read
// the signal during their most recent run.
type reactionTracker struct {
	reactions []Reaction
}

func (t *reactionTracker) track(o Observable, r Reaction) {
	if !slices.Contains(t.reactions, r) {
		t.reactions = append(t.reactions, r)
		r.addDependency(o)
	}
}

func (t *reactionTracker) untrack(o Observable, r Reaction) {
	if i := slices.Index(t.reactions, r); i != -1 {
		t.reactions = slices.Delete(t.reactions, i, i+1)
		r.removeDependency(o)
	}
}

// clear drops every reaction regardless of disposal state. Signals have no
// disposal step, so nothing in the package calls it; ordinary writes never
// do.
func (t *reactionTracker) clear(o Observable) {
	reactions := slices.Clone(t.reactions)
	t.reactions = nil

	for _, r := range reactions {
		r.removeDependency(o)
	}
}

// notify enqueues every live subscriber onto ctx's pending queue (or runs it
// immediately, outside a batch). Disposed reactions are skipped, never
// removed from the list here: §9 says pruning on disposal is optional, the
// only observable contract is that a disposed reaction never executes.
func (t *reactionTracker) notify(ctx *reactiveContext) {
	reactions := slices.Clone(t.reactions)

	for _, r := range reactions {
		if r.disposed() {
			continue
		}
		ctx.enqueue(r)
	}
}

// dependencyTracker is the reverse edge: the set of signals a Reaction read
// during its most recent execution, cleared and rebuilt on every run.
type dependencyTracker struct {
	dependencies []Observable
}

func (d *dependencyTracker) add(o Observable) {
	if !slices.Contains(d.dependencies, o) {
		d.dependencies = append(d.dependencies, o)
	}
}

func (d *dependencyTracker) remove(o Observable) {
	if i := slices.Index(d.dependencies, o); i != -1 {
		d.dependencies = slices.Delete(d.dependencies, i, i+1)
	}
}

// clearAll untracks r from every signal it currently depends on. Called
// before a reaction re-executes (dependencies are rediscovered from
// scratch) and when it is disposed.
func (d *dependencyTracker) clearAll(r Reaction) {
	deps := slices.Clone(d.dependencies)
	d.dependencies = nil

	for _, dep := range deps {
		dep.untrack(r)
	}
}
