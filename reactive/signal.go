package reactive

// Signal is a mutable reactive cell. Reads made while a reaction (Effect or
// Memo) is tracking subscribe that reaction; writes notify every current
// subscriber unconditionally — plain signals are not equality-gated (§9:
// "the source treats plain signal writes as unconditional, notify
// regardless of equality"; only Memo gates on equality, via Memo's own
// conditional call into Set).
type Signal[T any] struct {
	value T
	subs  reactionTracker
}

// NewSignal creates a signal holding initial.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// Get reads the current value, subscribing the active reaction (if any and
// if tracking is enabled) to future writes.
func (s *Signal[T]) Get() T {
	ctx := currentReactiveContext()
	if ctx.tracking {
		if r := ctx.activeReaction; r != nil {
			s.subs.track(s, r)
		}
	}
	return s.value
}

// Peek reads the current value without subscribing anything, equivalent to
// wrapping Get in Untrack.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set stores v and schedules every current subscriber to re-run,
// unconditionally: this call does not compare v against the previous value.
func (s *Signal[T]) Set(v T) {
	s.value = v
	s.notify()
}

// Update reads the current value, applies fn, and writes the result back —
// a convenience for read-modify-write without an intermediate Get/Set pair
// racing a concurrent tracked read.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.Peek()))
}

func (s *Signal[T]) notify() {
	s.subs.notify(currentReactiveContext())
}

func (s *Signal[T]) track(r Reaction) {
	s.subs.track(s, r)
}

func (s *Signal[T]) untrack(r Reaction) {
	s.subs.untrack(s, r)
}
