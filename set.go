package probetable

// Set is a key-only variant of Map. It shares the growth, probing and
// deletion behavior of Map.
type Set struct {
	table[struct{}]
}

// Returns a new set with the given initial capacity.
func NewSet(capacity int, opts ...Option[struct{}]) (*Set, error) {
	var s Set
	if err := s.init(capacity, opts...); err != nil {
		return nil, err
	}

	return &s, nil
}

// Puts a key in the set.
func (s *Set) Put(key int) error {
	return s.set(key, struct{}{})
}

// Deletes a key from the set.
func (s *Set) Delete(key int) bool {
	return s.delete(key)
}
