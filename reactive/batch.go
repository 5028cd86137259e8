package reactive

import "slices"

// reactiveContext holds the per-goroutine scheduling state: which Reaction
// is currently tracking dependencies, and the FIFO queue of reactions
// waiting to run because batch() is in progress.
type reactiveContext struct {
	activeReaction Reaction
	tracking       bool

	batchDepth int
	pending    []Reaction
}

func newReactiveContext() *reactiveContext {
	return &reactiveContext{tracking: true}
}

// enqueue schedules r to run. Outside a batch, it runs immediately
// (synchronously, before enqueue returns). Inside a batch, it's appended to
// the pending queue (deduplicated) and runs when the outermost batch drains.
func (ctx *reactiveContext) enqueue(r Reaction) {
	if ctx.batchDepth > 0 {
		if !slices.Contains(ctx.pending, r) {
			ctx.pending = append(ctx.pending, r)
		}
		return
	}
	ctx.drainOne(r)
}

func (ctx *reactiveContext) drainOne(r Reaction) {
	if r.disposed() {
		return
	}
	r.execute()
}

// runWithReaction makes r the active tracked reaction for the duration of
// fn, restoring whatever was active before. Used by Effect/Memo execution.
func (ctx *reactiveContext) runWithReaction(r Reaction, fn func()) {
	prev := ctx.activeReaction
	ctx.activeReaction = r
	defer func() { ctx.activeReaction = prev }()
	fn()
}

// runUntracked disables dependency tracking for the duration of fn: reads
// inside fn do not subscribe the active reaction. Backs the package-level
// Untrack helper.
func (ctx *reactiveContext) runUntracked(fn func()) {
	prev := ctx.tracking
	ctx.tracking = false
	defer func() { ctx.tracking = prev }()
	fn()
}

// Batch defers effect re-execution until fn returns: writes made during fn
// still apply immediately (reads inside the batch observe them), but the
// reactions they would trigger are queued and only drained once the
// outermost Batch call finishes, per §4.A "Batching".
func Batch(fn func()) {
	ctx := currentReactiveContext()
	ctx.batchDepth++
	func() {
		defer func() { ctx.batchDepth-- }()
		fn()
	}()

	if ctx.batchDepth == 0 {
		ctx.drainPending()
	}
}

// drainPending runs the pending queue to exhaustion: a reaction's own
// execution may enqueue further reactions (since batchDepth is already 0
// while draining), and those run too before drainPending returns, matching
// §4.A "draining continues until the queue is empty."
func (ctx *reactiveContext) drainPending() {
	for len(ctx.pending) > 0 {
		next := ctx.pending[0]
		ctx.pending = ctx.pending[1:]
		ctx.drainOne(next)
	}
}

// IsBatching reports whether the calling goroutine is currently inside a
// Batch call.
func IsBatching() bool {
	return currentReactiveContext().batchDepth > 0
}
