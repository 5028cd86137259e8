package reactive

// ResourceState is the three-way sum a Resource carries, enriched from
// `original_source/crates/react-core/src/resource.rs` (the teacher repo has
// no equivalent type).
type ResourceState int

const (
	ResourceLoading ResourceState = iota
	ResourceReady
	ResourceError
)

// ResourceSnapshot is what Resource.Get returns: exactly one of Loading,
// Ready(Value) or Error(Err) is meaningful at a time, selected by State.
type ResourceSnapshot[T any] struct {
	State ResourceState
	Value T
	Err   error
}

// Resource wraps a fallible fetch as a signal of ResourceSnapshot. Per
// SPEC_FULL §11's single-shot suspension-cadence decision, fetch runs
// synchronously before NewResource returns — there is no background
// goroutine and no separate transition through ResourceLoading that any
// caller can observe, keeping the render path synchronous end to end (§5
// "rendering itself never suspends").
type Resource[T any] struct {
	signal *Signal[ResourceSnapshot[T]]
	fetch  func() (T, error)
}

// NewResource creates a resource and runs fetch once immediately.
func NewResource[T any](fetch func() (T, error)) *Resource[T] {
	r := &Resource[T]{fetch: fetch}
	r.signal = NewSignal(ResourceSnapshot[T]{State: ResourceLoading})
	r.signal.Set(r.run())
	return r
}

func (r *Resource[T]) run() ResourceSnapshot[T] {
	value, err := r.fetch()
	if err != nil {
		return ResourceSnapshot[T]{State: ResourceError, Err: err}
	}
	return ResourceSnapshot[T]{State: ResourceReady, Value: value}
}

// Get reads the current snapshot, subscribing the active reaction to
// refetches triggered by Refetch.
func (r *Resource[T]) Get() ResourceSnapshot[T] {
	return r.signal.Get()
}

// Refetch re-runs the fetch function and updates the snapshot, notifying
// subscribers unconditionally (it is backed by a plain Signal, §9).
func (r *Resource[T]) Refetch() {
	r.signal.Set(r.run())
}
