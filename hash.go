package probetable

// homeSlot returns the slot a key hashes to directly, before any probing.
func homeSlot(key, capacity int) int {
	return key % capacity
}

// probeNext returns the next candidate slot of a linear probe.
func probeNext(idx, capacity int) int {
	return (idx + 1) % capacity
}

// grownCapacity returns the capacity a table of the given capacity grows to.
// Doubling plus five keeps capacities odd: 7 -> 19 -> 43 -> 91.
func grownCapacity(capacity int) int {
	return capacity*2 + 5
}
