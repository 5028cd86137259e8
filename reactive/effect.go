package reactive

// EffectComputation constrains what NewEffect accepts: a plain body, or a
// body that returns a cleanup closure run before the next re-execution (and
// on disposal). Letting both shapes satisfy one generic function means
// callers never have to write `return nil` just to satisfy a signature.
type EffectComputation interface {
	func() | func() func()
}

// Effect is a reaction that re-runs its body whenever a signal it read
// during the previous run changes. Effects are owned by a Scope: creating
// one parents it under the currently active scope, and anything the body
// itself creates (nested effects, memos) is parented under the effect's own
// scope, torn down before each re-execution.
type Effect struct {
	scope *Scope
	deps  dependencyTracker

	body     func() func()
	cleanups []func()
}

// NewEffect creates and immediately runs an effect. computation may be a
// plain `func()` or a `func() func()` whose return value is registered as a
// cleanup.
func NewEffect[C EffectComputation](computation C) *Effect {
	e := &Effect{scope: NewScope()}
	e.body = wrapEffectComputation(computation)
	e.scope.OnCleanup(e.runCleanups)
	e.execute()
	return e
}

func wrapEffectComputation[C EffectComputation](computation C) func() func() {
	switch fn := any(computation).(type) {
	case func():
		return func() func() {
			fn()
			return nil
		}
	case func() func():
		return fn
	default:
		return func() func() { return nil }
	}
}

// OnCleanup registers fn to run before this effect's next re-execution, and
// on disposal, in FIFO order alongside any cleanup returned by the body.
func (e *Effect) OnCleanup(fn func()) {
	e.cleanups = append(e.cleanups, fn)
}

func (e *Effect) runCleanups() {
	cleanups := e.cleanups
	e.cleanups = nil
	for _, fn := range cleanups {
		fn()
	}
}

// execute is the Reaction entrypoint: dispose what the last run created,
// run pending cleanups, rediscover dependencies, and run the body again
// under a fresh tracked scope.
func (e *Effect) execute() {
	if e.scope.Disposed() {
		return
	}

	e.scope.DisposeChildren()
	e.runCleanups()
	e.deps.clearAll(e)

	ctx := currentReactiveContext()
	prevScope := setCurrentScope(e.scope)
	defer setCurrentScope(prevScope)

	ctx.runWithReaction(e, func() {
		e.scope.recoverRun(func() {
			if cleanup := e.body(); cleanup != nil {
				e.OnCleanup(cleanup)
			}
		})
	})
}

// disposed derives directly from the owning scope's disposal state, so an
// effect disposed via its parent scope's Dispose() (not just its own) is
// correctly skipped at drain time too (§8: "every effect whose scope
// ancestry includes [a disposed scope] is marked disposed and never runs
// again").
func (e *Effect) disposed() bool { return e.scope.Disposed() }

func (e *Effect) addDependency(o Observable)    { e.deps.add(o) }
func (e *Effect) removeDependency(o Observable) { e.deps.remove(o) }

// Dispose tears the effect down: runs its final cleanups, disposes
// everything it created, and marks it so future notifications are skipped.
func (e *Effect) Dispose() {
	if e.scope.Disposed() {
		return
	}
	e.deps.clearAll(e)
	e.scope.Dispose()
}

// OnCleanup registers fn on the effect or memo currently executing on this
// goroutine, if any, else on the currently active scope. Panics if neither
// exists — mirrors the teacher's package-level helper of the same name.
func OnCleanup(fn func()) {
	if r := currentReaction(); r != nil {
		if e, ok := r.(*Effect); ok {
			e.OnCleanup(fn)
			return
		}
	}
	if s := currentScope(); s != nil {
		s.OnCleanup(fn)
		return
	}
	panic("reactive: OnCleanup called outside any effect or scope")
}

// Untrack runs fn without subscribing the active reaction to any signal fn
// reads, and returns fn's result.
func Untrack[T any](fn func() T) T {
	var result T
	currentReactiveContext().runUntracked(func() {
		result = fn()
	})
	return result
}
