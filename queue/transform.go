package queue

import (
	"github.com/min1324/ringq/list"
)

// DeleteMid deletes the middle element, the one at 0-based index ⌊n/2⌋
// for a queue of n elements. It returns false if q is nil or empty.
func (q *Queue) DeleteMid() bool {
	if q == nil || q.head.Empty() {
		return false
	}
	h := &q.head
	slow, fast := h.Next, h.Next
	for fast != h && fast.Next != h {
		slow = slow.Next
		fast = fast.Next.Next
	}
	list.Del(slow)
	entry(slow).Release()
	return true
}

// DeleteDup deletes every element whose value occurs more than once,
// keeping none of the copies, so only values that were unique remain.
// q must be sorted in ascending order; this is not checked.
//
// It returns false if q is nil.
func (q *Queue) DeleteDup() bool {
	if q == nil {
		return false
	}
	if q.head.Empty() {
		return true
	}

	var gc list.Head[*Element]
	gc.Init(nil)

	h := &q.head
	dup := false
	for pos := range h.Safe() {
		next := pos.Next
		if next == h {
			// last element closes a run it belongs to
			if dup {
				list.MoveTail(pos, &gc)
			}
			break
		}
		if entry(pos).Value == entry(next).Value {
			dup = true
			list.MoveTail(pos, &gc)
		} else if dup {
			dup = false
			list.MoveTail(pos, &gc)
		}
	}

	for pos := range gc.Safe() {
		list.Del(pos)
		entry(pos).Release()
	}
	return true
}

// Swap swaps every two adjacent elements. A trailing odd element stays put.
func (q *Queue) Swap() {
	if q == nil || q.head.Empty() {
		return
	}
	h := &q.head
	for pos := h.Next; pos != h && pos.Next != h; pos = pos.Next {
		// pos goes behind its successor, and pos.Next is the next pair
		list.Move(pos, pos.Next)
	}
}

// Reverse reverses the order of the elements in place.
// Nothing is allocated or released.
func (q *Queue) Reverse() {
	if q == nil || q.head.Empty() {
		return
	}
	h := &q.head
	for pos := h.Next; pos != h; pos = pos.Prev {
		pos.Next, pos.Prev = pos.Prev, pos.Next
	}
	h.Next, h.Prev = h.Prev, h.Next
}
