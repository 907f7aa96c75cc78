package optguard

import (
	"errors"
	"fmt"
	"testing"
)

// wantTypeMismatch runs f and expects it to panic with a
// TypeMismatchError for the given operation.
func wantTypeMismatch(t *testing.T, op string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("operation '%s' did not panic; want TypeMismatchError", op)
		}
		e, ok := r.(TypeMismatchError)
		if !ok {
			t.Fatalf("operation '%s' panicked with %T; want TypeMismatchError", op, r)
		}
		if e.Op != op {
			t.Errorf("TypeMismatchError.Op = %q; want %q", e.Op, op)
		}
	}()
	f()
}

func TestEmptyGuard(t *testing.T) {
	g := Empty[bool]()
	if g.HasValue() {
		t.Error("Empty guard reports HasValue() = true; want false")
	}
	_, err := g.Value()
	if err == nil {
		t.Fatal("Value() on empty guard returned no error; want NoValueError")
	}
	var nve NoValueError
	if !errors.As(err, &nve) {
		t.Fatalf("Value() on empty guard returned %T; want NoValueError", err)
	}
	if nve.Guard == "" {
		t.Error("NoValueError carries no guard type name")
	}
}

// TestFalsyPresentValues verifies that falsy-but-present values are
// distinct from absence.
func TestFalsyPresentValues(t *testing.T) {
	t.Run("bool false", func(t *testing.T) {
		g := New(false)
		if !g.HasValue() {
			t.Error("guard holding false reports no value")
		}
		if v, err := g.Value(); err != nil || v != false {
			t.Errorf("Value() = %v, %v; want false, nil", v, err)
		}
	})
	t.Run("int zero", func(t *testing.T) {
		g := Empty[int]()
		g.Set(0)
		if !g.HasValue() {
			t.Error("guard holding 0 reports no value")
		}
		if v := g.MustValue(); v != 0 {
			t.Errorf("MustValue() = %d; want 0", v)
		}
	})
	t.Run("empty string", func(t *testing.T) {
		g := New("")
		if !g.HasValue() {
			t.Error("guard holding \"\" reports no value")
		}
		if v, err := g.Value(); err != nil || v != "" {
			t.Errorf("Value() = %q, %v; want \"\", nil", v, err)
		}
	})
}

// TestSetClearRoundTrip follows the canonical lifecycle: a value, then
// cleared, then a falsy value again.
func TestSetClearRoundTrip(t *testing.T) {
	g := New(true)
	g.Clear()
	if g.HasValue() {
		t.Error("guard still has a value after Clear()")
	}
	if _, err := g.Value(); err == nil {
		t.Error("Value() after Clear() returned no error")
	}
	g.Set(false)
	if !g.HasValue() {
		t.Error("guard has no value after Set(false)")
	}
	if v := g.MustValue(); v != false {
		t.Errorf("MustValue() = %v; want false", v)
	}
}

func TestGetOrDefault(t *testing.T) {
	g := Empty[int]()
	if v := g.GetOrDefault(7); v != 7 {
		t.Errorf("GetOrDefault(7) on empty guard = %d; want 7", v)
	}
	g.Set(42)
	if v := g.GetOrDefault(7); v != 42 {
		t.Errorf("GetOrDefault(7) on guard holding 42 = %d; want 42", v)
	}
	g.Set(0)
	if v := g.GetOrDefault(7); v != 0 {
		t.Errorf("GetOrDefault(7) on guard holding 0 = %d; want 0", v)
	}
}

func TestFromFactory(t *testing.T) {
	calls := 0
	g := FromFactory(func() (int, bool) {
		calls++
		return 3, true
	})
	if calls != 1 {
		t.Errorf("factory invoked %d times at construction; want 1", calls)
	}
	if v := g.MustValue(); v != 3 {
		t.Errorf("MustValue() = %d; want 3", v)
	}
	absent := FromFactory(func() (string, bool) {
		return "", false
	})
	if absent.HasValue() {
		t.Error("guard from absent-producing factory reports a value")
	}
	var nilFactory Factory[int]
	if FromFactory(nilFactory).HasValue() {
		t.Error("guard from nil factory reports a value")
	}
}

func TestMustValuePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustValue() on empty guard did not panic")
		}
		if _, ok := r.(NoValueError); !ok {
			t.Fatalf("MustValue() panicked with %T; want NoValueError", r)
		}
	}()
	_ = Empty[bool]().MustValue()
}

// TestBlockedOperations verifies that the guard refuses comparison,
// boolean coercion and ordering, whether it holds a value or not.
func TestBlockedOperations(t *testing.T) {
	present := New(true)
	absent := Empty[bool]()
	for name, g := range map[string]*Guard[bool]{"present": present, "absent": absent} {
		t.Run(name, func(t *testing.T) {
			wantTypeMismatch(t, "bool", func() { _ = g.Bool() })
			wantTypeMismatch(t, "==", func() { _ = g.Equal(g) })
			wantTypeMismatch(t, "==", func() { _ = g.Equal(true) })
			wantTypeMismatch(t, "<", func() { _ = g.Less(0) })
		})
	}
}

func TestGoString(t *testing.T) {
	tests := []struct {
		name     string
		repr     string
		expected string
	}{
		{"present bool", fmt.Sprintf("%#v", New(true)), "Guard(true)"},
		{"present string", fmt.Sprintf("%#v", New("hi")), `Guard("hi")`},
		{"absent", fmt.Sprintf("%#v", Empty[int]()), "Guard(<none>)"},
	}
	for _, tt := range tests {
		if tt.repr != tt.expected {
			t.Errorf("%s: %%#v = %q; want %q", tt.name, tt.repr, tt.expected)
		}
	}
}

// Guard must not satisfy fmt.Stringer: a permissive string conversion
// would mask the boolean-coercion guard in auto-stringifying contexts.
func TestNoStringer(t *testing.T) {
	var g any = New(true)
	if _, ok := g.(fmt.Stringer); ok {
		t.Error("Guard implements fmt.Stringer; it must not")
	}
}
