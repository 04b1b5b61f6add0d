package queue

import (
	"iter"

	"github.com/min1324/ringq/list"
)

// Queue is a string queue on a circular doubly-linked list.
// A nil *Queue is a valid, absent queue: every method is a no-op on it.
type Queue struct {
	head list.Head[*Element] // sentinel, never carries a value
}

// New return an empty Queue
func New() *Queue {
	var q Queue
	q.head.Init(nil)
	return &q
}

// Free releases every element, then the queue itself.
// q must not be used afterwards.
func (q *Queue) Free() {
	if q == nil || q.head.Next == nil {
		return
	}
	for pos := range q.head.Safe() {
		list.Del(pos)
		entry(pos).Release()
	}
	q.head.Next = nil
	q.head.Prev = nil
}

// InsertHead puts a copy of s at the head of the queue.
// It returns false if q is nil.
func (q *Queue) InsertHead(s string) bool {
	if q == nil {
		return false
	}
	e := newElement(s)
	list.Add(&e.list, &q.head)
	return true
}

// InsertTail puts a copy of s at the tail of the queue.
// It returns false if q is nil.
func (q *Queue) InsertTail(s string) bool {
	if q == nil {
		return false
	}
	e := newElement(s)
	list.AddTail(&e.list, &q.head)
	return true
}

// RemoveHead unlinks and returns the head element, or nil if q is nil
// or empty. The element is not released: it belongs to the caller now.
//
// If sp is non-nil the removed value is copied into it, truncated to
// len(sp)-1 bytes and terminated with a NUL byte.
func (q *Queue) RemoveHead(sp []byte) *Element {
	if q == nil || q.head.Empty() {
		return nil
	}
	return q.remove(q.head.First(), sp)
}

// RemoveTail is like RemoveHead, at the other end.
func (q *Queue) RemoveTail(sp []byte) *Element {
	if q == nil || q.head.Empty() {
		return nil
	}
	return q.remove(q.head.Last(), sp)
}

func (q *Queue) remove(e *Element, sp []byte) *Element {
	list.Del(&e.list)
	if sp != nil {
		e.copyTo(sp)
	}
	return e
}

// Size counts the elements. It walks the whole ring every time.
func (q *Queue) Size() int {
	if q == nil || q.head.Empty() {
		return 0
	}
	n := 0
	for range q.head.All() {
		n++
	}
	return n
}

// All iterates the elements from head to tail.
func (q *Queue) All() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		if q == nil {
			return
		}
		for pos := range q.head.All() {
			if !yield(entry(pos)) {
				return
			}
		}
	}
}

// Values returns the values from head to tail.
func (q *Queue) Values() []string {
	if q == nil {
		return nil
	}
	vals := make([]string, 0)
	for e := range q.All() {
		vals = append(vals, e.Value)
	}
	return vals
}

// Check verifies the ring links of q. An absent queue is valid.
func (q *Queue) Check() error {
	if q == nil {
		return nil
	}
	return q.head.Check(0)
}
