package node

import "sync/atomic"

// Slot is the addressable cell that holds a node. AddressRefs keep a
// pointer to a Slot rather than to the Node it currently holds, so that
// Optimize (or any later re-bind) can swap Slot.Value without
// invalidating outstanding references — the same property the original
// gets from a shared<unique<base>> double indirection, here obtained for
// free because a *Slot is itself a shared, GC-managed cell (spec §9,
// "Shared slot handles").
type Slot struct {
	// ID is a small integer identity assigned at construction, used by
	// the cycle detector in place of pointer-identity hashing (spec §9,
	// "Clone identity remapping" / cycle-detection note).
	ID uint32

	// Value is the node currently installed in this slot. Nil means the
	// slot exists (e.g. an intermediate Wrapper segment) but has no
	// value of its own yet.
	Value Node
}

var nextSlotID uint32

func newSlotID() uint32 {
	return atomic.AddUint32(&nextSlotID, 1)
}

// NewSlot allocates a Slot with a fresh ID wrapping value (which may be nil).
func NewSlot(value Node) *Slot {
	return &Slot{ID: newSlotID(), Value: value}
}
