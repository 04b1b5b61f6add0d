package queue

import (
	"strings"

	"github.com/min1324/ringq/list"
)

type link = list.Head[*Element]

// Sort sorts the elements in ascending order of Value with a stable,
// top-down merge sort. Elements are relinked, never copied.
func (q *Queue) Sort() {
	if q == nil || q.head.Empty() || q.head.Singular() {
		return
	}
	h := &q.head

	// cut the ring into a nil-terminated chain over Next
	h.Prev.Next = nil
	first := mergeSort(h.Next)

	// rebuild back links and close the ring through h
	prev := h
	for pos := first; pos != nil; pos = pos.Next {
		prev.Next = pos
		pos.Prev = prev
		prev = pos
	}
	prev.Next = h
	h.Prev = prev
}

// mergeSort sorts the nil-terminated chain starting at first and returns
// the new first link. Prev links are left stale.
func mergeSort(first *link) *link {
	if first.Next == nil {
		return first
	}

	slow, fast := first, first.Next
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}
	mid := slow.Next
	slow.Next = nil

	return merge(mergeSort(first), mergeSort(mid))
}

// merge merges two sorted chains. On equal values l goes first.
func merge(l, r *link) *link {
	var first link
	tail := &first
	for l != nil && r != nil {
		if strings.Compare(entry(l).Value, entry(r).Value) <= 0 {
			tail.Next = l
			l = l.Next
		} else {
			tail.Next = r
			r = r.Next
		}
		tail = tail.Next
	}
	if l != nil {
		tail.Next = l
	} else {
		tail.Next = r
	}
	return first.Next
}
