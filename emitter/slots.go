package emitter

// slotList is an append-only arena of slots keyed by stable integer indices.
// Removing an entry tombstones its slot instead of shifting siblings, so
// keys captured before a mutation stay valid while an iteration over the
// same list is in progress.
type slotList[T any] struct {
	slots []*T
}

// add stores v in a fresh slot and returns its key.
func (l *slotList[T]) add(v *T) int {
	l.slots = append(l.slots, v)
	return len(l.slots) - 1
}

// get returns the value at key, or nil for a tombstoned or unknown slot.
func (l *slotList[T]) get(key int) *T {
	if key < 0 || key >= len(l.slots) {
		return nil
	}
	return l.slots[key]
}

// remove tombstones the slot at key. Removing an unknown or already-empty
// slot is a no-op.
func (l *slotList[T]) remove(key int) {
	if key >= 0 && key < len(l.slots) {
		l.slots[key] = nil
	}
}

// size returns the number of slots, tombstones included. An emission pass
// snapshots this before iterating so slots appended mid-pass wait for the
// next one.
func (l *slotList[T]) size() int {
	return len(l.slots)
}

// clear tombstones every slot, then resets the list. An iteration holding a
// reference to the list sees only tombstones from here on.
func (l *slotList[T]) clear() {
	for i := range l.slots {
		l.slots[i] = nil
	}
	l.slots = l.slots[:0]
}
