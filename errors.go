package optguard

import "fmt"

// NoValueError reports a guarded read of an absent value. Callers avoid
// it by checking HasValue first or by using GetOrDefault.
type NoValueError struct {
	Guard string // concrete guard type name, e.g. "*optguard.Guard[bool]"
}

// Error implements the error interface.
func (e NoValueError) Error() string {
	return fmt.Sprintf("%s has no value", e.Guard)
}

// TypeMismatchError reports a use of a guard as something it is not:
// comparing or bool-coercing the box itself, assigning a non-guard to a
// bound field, or accessing a bound field through a malformed record.
type TypeMismatchError struct {
	Op     string // attempted operation, e.g. "==", "bool", "assign", "get"
	Detail string // human-readable description of the mismatch
}

// Error implements the error interface.
func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("operation '%s' not supported: %s", e.Op, e.Detail)
}

// UnsupportedOperationError reports an operation the binding protocol
// refuses outright. Currently that is field deletion only: a bound
// guard field has no "default-then-delete" lifecycle.
type UnsupportedOperationError struct {
	Op  string // stable operation identifier, e.g. "delete"
	Key string // private storage key of the bound field ("" if unbound)
}

// Error implements the error interface.
func (e UnsupportedOperationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("operation '%s' is unsupported for guard fields", e.Op)
	}
	return fmt.Sprintf("operation '%s' is unsupported for guard field %q", e.Op, e.Key)
}

// ReassignmentWarning is an advisory, not an error. It is emitted when a
// bound field that already materialized its per-instance guard is
// assigned a whole new guard: the assignment proceeds (the inner value
// is copied over), but code holding a reference to the old box would
// silently diverge if the box itself were swapped, so reassignment is
// discouraged.
type ReassignmentWarning struct {
	Key string // private storage key of the affected field
}

// String returns a human-readable representation of the warning.
func (w ReassignmentWarning) String() string {
	return fmt.Sprintf("[WARNING] guard field %q re-assigned; prefer updating its value", w.Key)
}

// WarningHandler receives advisory warnings emitted by the binding
// protocol.
type WarningHandler func(ReassignmentWarning)

// warnHandler is the current sink. The default reports through the
// package tracer.
var warnHandler WarningHandler = func(w ReassignmentWarning) {
	tracer().Infof(w.String())
}

// SetWarningHandler installs h as the sink for advisory warnings and
// returns the previously installed handler. Passing nil restores the
// default tracing handler. Not synchronized; meant to be called during
// setup (or per-test).
func SetWarningHandler(h WarningHandler) WarningHandler {
	prev := warnHandler
	if h == nil {
		h = func(w ReassignmentWarning) {
			tracer().Infof(w.String())
		}
	}
	warnHandler = h
	return prev
}

// warn delivers w to the current sink.
func warn(w ReassignmentWarning) {
	warnHandler(w)
}
