package optguard

import "fmt"

// Field binding.
//
// A schema-level guard acts as a template for a named field on a record
// type. The template itself never stores per-record state: every record
// instance gets its own clone, materialized lazily on first read and
// kept in the record's Store under a private key. The four hooks below
// are the Go rendition of a data-descriptor protocol: Bind is the
// "declared on a schema" hook, Get/Assign/Remove intercept read, write
// and deletion of the field.

// keyPrefix separates private slot keys from anything a record might
// store under the plain field name.
const keyPrefix = "_optguard_"

// Bind declares the guard as the template for the named field and
// derives its private storage key. It is meant to be called once, when
// the schema is set up; an empty name leaves the guard unbound.
func (g *Guard[T]) Bind(name string) {
	if name != "" {
		g.key = keyPrefix + name
	}
}

// Get is the read hook of the binding protocol.
//
// A nil rec means schema-level access and returns the template itself,
// unchanged. For a record instance, Get returns the instance's own
// clone of the template, creating and storing it now if this is the
// instance's first read. The clone re-invokes the template's factory if
// one is set, so factory-made defaults are fresh per instance.
//
// Get fails with a TypeMismatchError if the guard was never bound or if
// rec has no usable store.
func (g *Guard[T]) Get(rec Record) (*Guard[T], error) {
	if rec == nil {
		return g, nil
	}
	if g.key == "" {
		return nil, TypeMismatchError{
			Op:     "get",
			Detail: fmt.Sprintf("%T is not bound to a field; call Bind first", g),
		}
	}
	store := rec.GuardStore()
	if store == nil {
		return nil, TypeMismatchError{
			Op:     "get",
			Detail: fmt.Sprintf("record %T has no guard store", rec),
		}
	}
	if v, ok := store.lookup(g.key); ok {
		inst, ok := v.(*Guard[T])
		if !ok {
			return nil, TypeMismatchError{
				Op:     "get",
				Detail: fmt.Sprintf("slot %q holds a %T, expected %T", g.key, v, g),
			}
		}
		return inst, nil
	}
	inst := g.clone()
	store.put(g.key, inst)
	return inst, nil
}

// Assign is the write hook of the binding protocol.
//
// Wholesale assignment of a guard field is legitimate only when a
// construction path (an initializer filling in defaults, say) does not
// know to go through Set on the field's guard. Assign therefore accepts
// the write but keeps the per-instance box: only the incoming guard's
// inner value and presence are copied into the record's clone, which is
// materialized first if need be. If a clone already existed, a
// ReassignmentWarning is emitted before the copy, since references to
// the existing box are the reason it must not be swapped.
//
// value must be a *Guard[T]; anything else fails with a
// TypeMismatchError, as does a nil or malformed rec.
func (g *Guard[T]) Assign(rec Record, value any) error {
	if rec == nil {
		return TypeMismatchError{
			Op:     "assign",
			Detail: "record is nil, expected an instance",
		}
	}
	incoming, ok := value.(*Guard[T])
	if !ok || incoming == nil {
		return TypeMismatchError{
			Op:     "assign",
			Detail: fmt.Sprintf("expected %T, got %T", g, value),
		}
	}
	if g.key != "" {
		if store := rec.GuardStore(); store != nil {
			if _, exists := store.lookup(g.key); exists {
				warn(ReassignmentWarning{Key: g.key})
			}
		}
	}
	inst, err := g.Get(rec)
	if err != nil {
		return err
	}
	// Copy the inner state directly, bypassing Set: an absent incoming
	// guard must carry its absence over.
	inst.value, inst.present = incoming.value, incoming.present
	return nil
}

// Remove is the deletion hook of the binding protocol. Deleting a bound
// guard field is unsupported and always fails with an
// UnsupportedOperationError.
func (g *Guard[T]) Remove(rec Record) error {
	return UnsupportedOperationError{Op: "delete", Key: g.key}
}
