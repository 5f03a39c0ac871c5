package treap

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
)

// Comparator orders keys. It returns a negative number when a < b, zero when
// a == b and a positive number when a > b.
type Comparator[K any] func(a, b K) int

// CmpType must be implemented by key types that provide their own ordering
// and are used with New.
type CmpType interface {
	Compare(other any) int
}

var (
	// ErrInvalidKeyType is returned by New when the key type has no natural
	// ordering and no comparator was supplied.
	ErrInvalidKeyType = errors.New("treap: key type has no usable ordering")

	// ErrInvalidArgument reports a caller contract violation.
	ErrInvalidArgument = errors.New("treap: invalid argument")

	// ErrNilKey is carried by the panic raised when a nil key reaches a
	// key-taking operation.
	ErrNilKey = fmt.Errorf("%w: nil key", ErrInvalidArgument)
)

// AssertError identifies an internal consistency issue: a broken heap, order
// or size invariant. It is only raised when invariant checks are enabled or
// returned by Validate.
type AssertError string

// Error returns the assertion error as a human-readable string and satisfies
// the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}

// naturalOrder reports whether v can be ordered by Compare.
func naturalOrder(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, string, CmpType:
		return true
	default:
		return false
	}
}

// Compare returns the ordering between a and b for builtin ordered types and
// types implementing CmpType. It panics with ErrInvalidKeyType otherwise, or
// when a and b hold different dynamic types.
func Compare[K any](a, b K) int {
	switch a := any(a).(type) {
	case int:
		return compareAs(a, any(b))
	case int8:
		return compareAs(a, any(b))
	case int16:
		return compareAs(a, any(b))
	case int32:
		return compareAs(a, any(b))
	case int64:
		return compareAs(a, any(b))
	case uint:
		return compareAs(a, any(b))
	case uint8:
		return compareAs(a, any(b))
	case uint16:
		return compareAs(a, any(b))
	case uint32:
		return compareAs(a, any(b))
	case uint64:
		return compareAs(a, any(b))
	case uintptr:
		return compareAs(a, any(b))
	case float32:
		return compareAs(a, any(b))
	case float64:
		return compareAs(a, any(b))
	case string:
		return compareAs(a, any(b))
	case CmpType:
		return a.Compare(b)
	default:
		panic(fmt.Errorf("%w: %T", ErrInvalidKeyType, a))
	}
}

// compareAs orders a against b, which must hold the same dynamic type.
func compareAs[T cmp.Ordered](a T, b any) int {
	other, ok := b.(T)
	if !ok {
		panic(fmt.Errorf("%w: cannot compare %T with %T", ErrInvalidKeyType, a, b))
	}
	return cmp.Compare(a, other)
}

// nilableKey reports whether values of K can be nil.
func nilableKey[K any]() bool {
	return nilableKind(reflect.TypeFor[K]().Kind())
}

func nilableKind(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// isNilKey also reports true for an interface key holding a nil pointer.
func isNilKey[K any](key K) bool {
	v := reflect.ValueOf(any(key))
	if !v.IsValid() {
		return true
	}
	return nilableKind(v.Kind()) && v.IsNil()
}
