package probetable

import "iter"

// Map is a hash table over non-negative integer keys, using open addressing
// with linear probing. A key's home slot is key mod capacity; collisions
// advance one slot at a time.
//
// The map grows before an insertion whenever only two free slots are left,
// to capacity*2+5, placing every entry again under the new capacity.
// Deleting clears the slot without leaving a tombstone, so keys that collided
// past a deleted slot may no longer be found by Get.
//
// Map is not safe for concurrent use.
type Map[V any] struct {
	table[V]
}

// Slot is a snapshot of a single slot of the map.
type Slot[V any] struct {
	Key      int
	Value    V
	Occupied bool
}

// Returns a new map with the given initial capacity.
func New[V any](capacity int, opts ...Option[V]) (*Map[V], error) {
	var m Map[V]
	if err := m.init(capacity, opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

// Returns the value stored for a key.
func (m *Map[V]) Get(key int) (V, bool) {
	return m.get(key)
}

// Inserts a key or updates its value, growing the map first if needed.
func (m *Map[V]) Set(key int, value V) error {
	return m.set(key, value)
}

// Removes a key. Returns whether it was found on its probe path.
func (m *Map[V]) Delete(key int) bool {
	return m.delete(key)
}

// Returns a copy of every slot in index order.
func (m *Map[V]) Slots() []Slot[V] {
	out := make([]Slot[V], len(m.slots))
	for i, s := range m.slots {
		if s.used {
			out[i] = Slot[V]{Key: s.key, Value: s.value, Occupied: true}
		}
	}

	return out
}

// Yields the stored entries in slot order.
func (m *Map[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i := range m.slots {
			if !m.slots[i].used {
				continue
			}

			if !yield(m.slots[i].key, m.slots[i].value) {
				return
			}
		}
	}
}
