package probetable

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type slot[V any] struct {
	key   int
	value V
	used  bool
}

type table[V any] struct {
	slots    []slot[V]
	capacity int
	resizes  int

	logger *zap.Logger

	emptyV V
}

type Option[V any] func(t *table[V])

// Sets the logger resize events are reported to.
func WithLogger[V any](logger *zap.Logger) Option[V] {
	return func(t *table[V]) {
		t.logger = logger
	}
}

func (t *table[V]) init(capacity int, opts ...Option[V]) error {
	if capacity <= 0 {
		return errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}

	t.slots = make([]slot[V], capacity)
	t.capacity = capacity

	for _, opt := range opts {
		opt(t)
	}

	if t.logger == nil {
		t.logger = zap.NewNop()
	}

	return nil
}

// Returns the number of slots, which is also the hashing modulus.
func (t *table[V]) Capacity() int {
	return t.capacity
}

// Returns the number of occupied slots. It scans the whole table.
func (t *table[V]) Len() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].used {
			n++
		}
	}

	return n
}

// Checks whether any slot holds the key. It scans the whole table rather
// than following the key's probe path, so it still reports keys that a
// lookup can no longer reach after a delete.
func (t *table[V]) Has(key int) bool {
	for i := range t.slots {
		if t.slots[i].used && t.slots[i].key == key {
			return true
		}
	}

	return false
}

// Clears every slot, retaining the capacity.
func (t *table[V]) Reset() {
	clear(t.slots)
}

func (t *table[V]) get(key int) (V, bool) {
	idx, ok := t.find(key)
	if !ok {
		return t.emptyV, false
	}

	return t.slots[idx].value, true
}

func (t *table[V]) set(key int, value V) error {
	if key < 0 {
		return errors.Wrapf(ErrNegativeKey, "got %d", key)
	}

	// The trigger is checked before placing the key, updates included.
	// For capacity >= 2 occupancy reaches capacity-2 before exceeding it,
	// so this fires exactly on equality.
	if t.Len() >= t.capacity-2 {
		t.grow()
	}

	for !t.place(key, value) {
		t.grow()
	}

	return nil
}

func (t *table[V]) delete(key int) bool {
	idx, ok := t.find(key)
	if !ok {
		return false
	}

	// No tombstone: keys that probed past this slot may become unreachable
	// by get and delete, while Has still finds them.
	t.slots[idx] = slot[V]{}

	return true
}

// find follows the key's probe path. It stops at the key, at an empty slot,
// or after a full lap back to the home slot.
func (t *table[V]) find(key int) (int, bool) {
	if key < 0 {
		return 0, false
	}

	home := homeSlot(key, t.capacity)
	for idx := home; t.slots[idx].used; {
		if t.slots[idx].key == key {
			return idx, true
		}

		idx = probeNext(idx, t.capacity)
		if idx == home {
			break
		}
	}

	return 0, false
}

// place stores the entry in the first empty slot of the key's probe path,
// or overwrites the value if the key is met first. Returns false if a full
// lap found neither.
func (t *table[V]) place(key int, value V) bool {
	home := homeSlot(key, t.capacity)
	for idx := home; ; {
		s := &t.slots[idx]
		if !s.used {
			s.key = key
			s.value = value
			s.used = true

			return true
		}

		if s.key == key {
			s.value = value
			return true
		}

		idx = probeNext(idx, t.capacity)
		if idx == home {
			return false
		}
	}
}

// grow moves every entry into a larger slot array. Probe positions depend
// on the capacity, so entries are placed again in old index order instead
// of being copied.
func (t *table[V]) grow() {
	old := t.slots

	t.capacity = grownCapacity(t.capacity)
	t.slots = make([]slot[V], t.capacity)

	moved := 0
	for i := range old {
		if !old[i].used {
			continue
		}

		t.place(old[i].key, old[i].value)
		moved++
	}

	t.resizes++

	t.logger.Debug("table resized",
		zap.Int("from", len(old)),
		zap.Int("to", t.capacity),
		zap.Int("entries", moved),
	)
}
