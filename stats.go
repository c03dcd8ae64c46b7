package probetable

type Stats struct {
	Size     int
	Capacity int
	Free     int
	Resizes  int
	// Longest distance between a stored key and its home slot.
	MaxProbeDistance int
	LoadFactor       float32
}

func (t *table[V]) Stats() Stats {
	s := Stats{
		Capacity: t.capacity,
		Resizes:  t.resizes,
	}

	for i := range t.slots {
		if !t.slots[i].used {
			continue
		}

		s.Size++

		dist := (i - homeSlot(t.slots[i].key, t.capacity) + t.capacity) % t.capacity
		s.MaxProbeDistance = max(s.MaxProbeDistance, dist)
	}

	s.Free = s.Capacity - s.Size
	s.LoadFactor = float32(s.Size) / float32(s.Capacity)

	return s
}
