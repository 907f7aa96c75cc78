package optguard

// Record is any value with per-instance backing storage for bound guard
// fields. Record types normally satisfy it by embedding a Store.
type Record interface {
	GuardStore() *Store
}

// Store is the per-instance backing storage behind bound guard fields.
// Embed it (by value) in a record struct:
//
//	type Ticket struct {
//	    optguard.Store
//	}
//
// One store serves all guarded fields of a record; slots are keyed by
// the templates' private binding keys. The zero value is ready to use,
// the slot map is allocated on first write.
type Store struct {
	slots map[string]any
}

// GuardStore returns the store itself, which makes any record embedding
// a Store satisfy the Record interface.
func (s *Store) GuardStore() *Store {
	return s
}

func (s *Store) lookup(key string) (any, bool) {
	v, ok := s.slots[key]
	return v, ok
}

func (s *Store) put(key string, v any) {
	if s.slots == nil {
		s.slots = make(map[string]any)
	}
	s.slots[key] = v
}
