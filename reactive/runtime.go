package reactive

import (
	"sync"

	"github.com/petermattis/goid"
)

// Each goroutine gets its own reactive runtime (current scope, current
// tracked reaction, pending-batch queue), keyed by goroutine id exactly as
// the teacher's active-owner map does. This is the mechanism behind §9's
// "thread-local runtime": a runtime never crosses a goroutine boundary, so
// a reactive graph built on one goroutine is invisible to another.
var runtimes sync.Map // int64 (goid) -> *goroutineState

type goroutineState struct {
	scope *Scope
	ctx   *reactiveContext
}

func state() *goroutineState {
	gid := goid.Get()
	if v, ok := runtimes.Load(gid); ok {
		return v.(*goroutineState)
	}
	s := &goroutineState{ctx: newReactiveContext()}
	runtimes.Store(gid, s)
	return s
}

// forgetGoroutine drops the runtime state for the calling goroutine. The
// package tests register it with t.Cleanup (see isolate). It is unexported,
// so code outside this package cannot drop its goroutine's entry.
func forgetGoroutine() {
	runtimes.Delete(goid.Get())
}

func currentScope() *Scope {
	return state().scope
}

func setCurrentScope(s *Scope) *Scope {
	st := state()
	prev := st.scope
	st.scope = s
	return prev
}

func currentReactiveContext() *reactiveContext {
	return state().ctx
}

// currentReaction reports the Reaction (effect or memo-effect) currently
// tracking dependencies on this goroutine, if any.
func currentReaction() Reaction {
	return currentReactiveContext().activeReaction
}
