package command

import "fmt"

// Field is an optional override. The zero value is unset, which means the
// existing value is kept.
type Field[T any] struct {
	value T
	set   bool
}

// Set returns a Field holding v.
func Set[T any](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

// Get returns the value and whether it was set.
func (f Field[T]) Get() (T, bool) { return f.value, f.set }

// IsSet returns true if the field carries a value.
func (f Field[T]) IsSet() bool { return f.set }

// Or returns the value if set, else fallback.
func (f Field[T]) Or(fallback T) T {
	if f.set {
		return f.value
	}
	return fallback
}

func (f Field[T]) String() string {
	if !f.set {
		return "<unset>"
	}
	return fmt.Sprint(f.value)
}
