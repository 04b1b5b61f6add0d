// Package list implements an intrusive circular doubly-linked list.
//
// A Head is embedded in the struct it links, and bound to it with Init, so a
// link reached while walking a ring can be turned back into its owner with
// Entry. A ring is anchored by a sentinel Head that carries no owner:
//
//	var sentinel list.Head[*item]
//	sentinel.Init(nil)
//
//	it := &item{}
//	it.link.Init(it)
//	list.AddTail(&it.link, &sentinel)
//
// The ring is empty when sentinel.Next == &sentinel == sentinel.Prev.
// None of the functions in this package allocate, and none of them fail.
package list

// Head is a link in a ring.
type Head[T any] struct {
	Next, Prev *Head[T]

	owner T // zero for a sentinel
}

// Init closes h onto itself and binds it to owner.
func (h *Head[T]) Init(owner T) *Head[T] {
	h.Next = h
	h.Prev = h
	h.owner = owner
	return h
}

// Entry returns the value h was bound to.
func (h *Head[T]) Entry() T {
	return h.owner
}

// Empty reports whether ring h has no members besides h.
func (h *Head[T]) Empty() bool {
	return h.Next == h
}

// Singular reports whether ring h has exactly one member besides h.
func (h *Head[T]) Singular() bool {
	return !h.Empty() && h.Next == h.Prev
}

// First returns the owner of the first link of ring h,
// or the zero value if the ring is empty.
func (h *Head[T]) First() T {
	return h.Next.owner
}

// Last returns the owner of the last link of ring h,
// or the zero value if the ring is empty.
func (h *Head[T]) Last() T {
	return h.Prev.owner
}

// link n between prev and next
func link[T any](n, prev, next *Head[T]) {
	next.Prev = n
	n.Next = next
	n.Prev = prev
	prev.Next = n
}

// unlink whatever sits between prev and next
func unlink[T any](prev, next *Head[T]) {
	next.Prev = prev
	prev.Next = next
}

// Add links n as the first member of ring h.
func Add[T any](n, h *Head[T]) {
	link(n, h, h.Next)
}

// AddTail links n as the last member of ring h.
func AddTail[T any](n, h *Head[T]) {
	link(n, h.Prev, h)
}

// Del unlinks n from its ring and closes n onto itself.
func Del[T any](n *Head[T]) {
	unlink(n.Prev, n.Next)
	n.Next = n
	n.Prev = n
}

// Move unlinks n from its ring and links it as the first member of ring h.
func Move[T any](n, h *Head[T]) {
	unlink(n.Prev, n.Next)
	Add(n, h)
}

// MoveTail unlinks n from its ring and links it as the last member of ring h.
func MoveTail[T any](n, h *Head[T]) {
	unlink(n.Prev, n.Next)
	AddTail(n, h)
}
