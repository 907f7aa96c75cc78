/*
Package optguard wraps optional values in a guard that has to be asked
before it hands out its content.

Go code habitually smuggles "no value" through in-band shorthands: a nil
pointer, a zero value, a bare `(value, ok)` pair where the `ok` gets
dropped two call sites later. For most types that is merely sloppy; for
booleans it is actively dangerous, because an unset flag and a flag that
was deliberately switched off look exactly the same. Package `optguard`
makes the distinction explicit and—more importantly—makes ignoring it
loud:

▪︎ presence has to be checked with HasValue, or handled via Value's error,
or sidestepped with GetOrDefault; there is no silent zero-value fallback

▪︎ the guard itself refuses to be compared or coerced to a boolean; it is
a box, not the value, and treating the box as the value is the bug this
package exists to catch

▪︎ a guard bound as a field on a record type hands every record instance
its own independent copy, so a schema-level default never becomes shared
mutable state

A guard is constructed with New, Empty or FromFactory and used directly:

	urgent := optguard.New(false)
	if urgent.HasValue() {
	    ...
	}
	u := urgent.GetOrDefault(true)

Or it is bound to a named field on a record type. Records embed a Store
(the per-instance backing storage) and declare schema-level templates:

	type Ticket struct {
	    optguard.Store
	}

	var urgentField = optguard.New(false)

	func init() { urgentField.Bind("urgent") }

	t := &Ticket{}
	urgent, _ := urgentField.Get(t)  // t's own copy, lazily created
	urgent.Set(true)                 // does not affect other Tickets

Binding gives each record instance an independent clone of the template,
materialized on first read, and intercepts wholesale reassignment and
deletion of the field (the former is discouraged with a warning, the
latter refused outright).

All operations are synchronous and unsynchronized; callers sharing one
record instance across goroutines have to serialize access themselves.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package optguard

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'optguard'
func tracer() tracing.Trace {
	return tracing.Select("optguard")
}
