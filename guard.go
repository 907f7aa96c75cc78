package optguard

import "fmt"

// Factory produces a fresh optional value: a value of T together with a
// presence flag. Returning false for the flag means "absent". A guard
// constructed from a factory re-invokes it for every per-instance clone,
// so mutable default values (slices, maps) are never shared.
type Factory[T any] func() (T, bool)

// Guard wraps a value of type T that may be absent.
//
// Absence is tracked by a separate flag, never by a sentinel value of T,
// so false, 0 and "" are perfectly valid present values. Access goes
// through HasValue/Value/GetOrDefault; reading an absent value fails
// with a NoValueError.
//
// Guard contains a function field and is therefore not comparable: `==`
// between guards is a compile-time error. The dynamic escape hatches
// (Equal, Bool, Less) panic with a TypeMismatchError, see below.
//
// The zero value of Guard is an unbound, absent guard and is usable;
// the constructors return pointers because a guard is a mutable box and
// must not be copied around by value once it holds state.
type Guard[T any] struct {
	value   T
	present bool
	factory Factory[T]
	key     string // private storage key, set by Bind
}

// New returns a guard holding v.
func New[T any](v T) *Guard[T] {
	return &Guard[T]{value: v, present: true}
}

// Empty returns a guard holding no value.
func Empty[T any]() *Guard[T] {
	return &Guard[T]{}
}

// FromFactory returns a guard initialized by invoking f, which is
// retained: every clone of the guard (see Bind/Get) re-invokes f to
// derive its own initial state. A nil f behaves like Empty.
func FromFactory[T any](f Factory[T]) *Guard[T] {
	g := &Guard[T]{factory: f}
	if f != nil {
		g.value, g.present = f()
	}
	return g
}

// HasValue reports whether the guard currently holds a value.
func (g *Guard[T]) HasValue() bool {
	return g.present
}

// Value returns the guarded value, or a NoValueError if the guard is
// empty. It never has side effects.
func (g *Guard[T]) Value() (T, error) {
	if !g.present {
		var zero T
		return zero, NoValueError{Guard: fmt.Sprintf("%T", g)}
	}
	return g.value, nil
}

// MustValue returns the guarded value or panics with a NoValueError.
// Useful in tests or when presence is guaranteed by an invariant.
func (g *Guard[T]) MustValue() T {
	if !g.present {
		panic(NoValueError{Guard: fmt.Sprintf("%T", g)})
	}
	return g.value
}

// Set makes v the guarded value, unconditionally.
func (g *Guard[T]) Set(v T) {
	g.value = v
	g.present = true
}

// Clear transitions the guard back to "no value".
func (g *Guard[T]) Clear() {
	var zero T
	g.value = zero
	g.present = false
}

// GetOrDefault returns the guarded value if present, otherwise def.
// It never fails.
func (g *Guard[T]) GetOrDefault(def T) T {
	if !g.present {
		return def
	}
	return g.value
}

// --- Blocked operator surface ----------------------------------------------

// The guard is a box, not the value. Comparing or bool-coercing the box
// where its content was meant is the primary misuse this type prevents,
// so these operations fail loudly instead of inheriting a permissive
// default. The struct's func field already makes `==` a compile error;
// the methods below close the dynamic route.

// Equal panics with a TypeMismatchError. Guards cannot be compared;
// compare Value() results instead.
func (g *Guard[T]) Equal(other any) bool {
	panic(TypeMismatchError{
		Op:     "==",
		Detail: fmt.Sprintf("%T cannot be compared with %T; compare Value() results instead", g, other),
	})
}

// Bool panics with a TypeMismatchError. A guard has no truth value;
// call HasValue for presence or Value for the content.
func (g *Guard[T]) Bool() bool {
	panic(TypeMismatchError{
		Op:     "bool",
		Detail: fmt.Sprintf("%T has no truth value; call HasValue or Value", g),
	})
}

// Less panics with a TypeMismatchError. Guards have no ordering.
func (g *Guard[T]) Less(other any) bool {
	panic(TypeMismatchError{
		Op:     "<",
		Detail: fmt.Sprintf("%T cannot be ordered relative to %T", g, other),
	})
}

// GoString returns a debug representation for the %#v verb, e.g.
// `Guard(true)` or `Guard(<none>)`.
//
// Guard deliberately implements fmt.GoStringer but not fmt.Stringer: a
// permissive String method would let auto-stringifying contexts mask
// the coercion guard above.
func (g *Guard[T]) GoString() string {
	if !g.present {
		return "Guard(<none>)"
	}
	return fmt.Sprintf("Guard(%#v)", g.value)
}

// clone derives an independent guard from a template: value and presence
// are re-derived (factory re-invoked if set, literal state copied
// otherwise), factory and binding key carry over verbatim.
func (g *Guard[T]) clone() *Guard[T] {
	c := &Guard[T]{factory: g.factory, key: g.key}
	if g.factory != nil {
		c.value, c.present = g.factory()
	} else {
		c.value, c.present = g.value, g.present
	}
	return c
}
