package elements

// ReactiveValue is either a fixed value or a producer read fresh whenever
// it's evaluated, ported from react-elements/src/reactive.rs's
// ReactiveValue<T> enum. Reading a Dynamic value is a plain function call:
// if it reads a reactive.Signal internally, that read attributes to
// whichever reaction is current on the calling goroutine (§4.B "Reactive
// bindings") — ReactiveValue itself has no opinion about the reactive
// package, it just forwards the call.
type ReactiveValue[T any] struct {
	dynamic bool
	value   T
	produce func() T
}

// Static wraps a fixed value that never changes.
func Static[T any](v T) ReactiveValue[T] {
	return ReactiveValue[T]{value: v}
}

// Dynamic wraps a producer evaluated on every Get call.
func Dynamic[T any](produce func() T) ReactiveValue[T] {
	return ReactiveValue[T]{dynamic: true, produce: produce}
}

// Get evaluates the value: the stored constant, or the producer's current
// result.
func (r ReactiveValue[T]) Get() T {
	if r.dynamic {
		return r.produce()
	}
	return r.value
}

// IsDynamic reports whether r wraps a producer rather than a constant.
func (r ReactiveValue[T]) IsDynamic() bool {
	return r.dynamic
}
