package node

import "github.com/RoaringBitmap/roaring"

// visitSet tracks the slot IDs currently being evaluated within one
// top-level Get call, so AddressRef can detect a reference cycle as
// explicit state rather than by catching a stack overflow (spec §9,
// "Cycle detection should be explicit state"). A roaring bitmap of
// small integer slot IDs plays the role the teacher's lattice/graph
// packages use bitmaps for elsewhere (attribute incidence in
// internal/lattice/context.go, node-id indexing in internal/graph) —
// here it indexes "is this slot on the current evaluation stack".
type visitSet struct {
	bitmap *roaring.Bitmap
}

func newVisitSet() *visitSet {
	return &visitSet{bitmap: roaring.New()}
}

// enter reports whether id was already being visited (a cycle) and, if
// not, marks it visited. Pair every successful enter with a leave.
func (v *visitSet) enter(id uint32) (alreadyVisiting bool) {
	if v.bitmap.Contains(id) {
		return true
	}
	v.bitmap.Add(id)
	return false
}

func (v *visitSet) leave(id uint32) {
	v.bitmap.Remove(id)
}

// visiting exposes the EvalContext's cycle-detection set, lazily
// allocating one if the context was constructed without NewEvalContext
// (e.g. a zero-value EvalContext built directly in a test).
func (ec *EvalContext) visitSetOrInit() *visitSet {
	if ec.visiting == nil {
		ec.visiting = newVisitSet()
	}
	return ec.visiting
}

// EnterSlot marks slot.ID as currently evaluating, reporting a Cycle
// error if it was already on the stack. Call LeaveSlot when done,
// typically via `defer`.
func (ec *EvalContext) EnterSlot(slot *Slot) error {
	if ec.visitSetOrInit().enter(slot.ID) {
		return Sentinel(Cycle)
	}
	return nil
}

// LeaveSlot clears slot.ID from the evaluation stack.
func (ec *EvalContext) LeaveSlot(slot *Slot) {
	ec.visitSetOrInit().leave(slot.ID)
}
