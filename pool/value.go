package pool

import "fmt"

// Value is an opaque, type-erased container for one result payload of
// arbitrary, submission-determined type. The zero Value is empty: it
// carries no payload, and Extract on it always fails with
// ErrTypeMismatch.
//
// A Value is logically move-only, but nothing enforces this: Extract
// reads a copy of the Value and leaves it intact, so extracting twice
// from the same Value yields the payload twice, and a caller may copy
// a Value struct freely. ResultHandle.Get hands the underlying payload
// out exactly once and discards its own copy.
type Value struct {
	payload  any
	typeName string
	present  bool
}

// NewValue constructs a Value carrying payload, erasing its static type.
func NewValue[T any](payload T) Value {
	return Value{
		payload:  payload,
		typeName: fmt.Sprintf("%T", payload),
		present:  true,
	}
}

// Empty reports whether v carries no payload, either because it was
// never set (a zero Value) or because it came from an invalid
// ResultHandle.
func (v Value) Empty() bool {
	return !v.present
}

// Extract yields the payload of v if it was constructed with type T.
// Extracting from an empty Value — whether a zero Value or one delivered
// by an invalid ResultHandle — always fails with ErrTypeMismatch,
// regardless of T: there is no payload to have matched, the same way
// casting a default-constructed Any in the original always fails
// rather than quietly producing a zero value.
func Extract[T any](v Value) (T, error) {
	var zero T
	if !v.present {
		return zero, fmt.Errorf("%w: value is empty", ErrTypeMismatch)
	}
	if cast, ok := v.payload.(T); ok {
		return cast, nil
	}
	return zero, fmt.Errorf("%w: stored %s, requested %T", ErrTypeMismatch, v.typeName, zero)
}
