package queue

import (
	"strings"

	"github.com/min1324/ringq/list"
)

// Element is a queue entry. It owns its Value.
type Element struct {
	Value string

	list list.Head[*Element]
}

// newElement allocates an unlinked element holding a private copy of s.
func newElement(s string) *Element {
	e := &Element{Value: strings.Clone(s)}
	e.list.Init(e)
	return e
}

// entry returns the element that owns link h.
func entry(h *list.Head[*Element]) *Element {
	return h.Entry()
}

// Release drops the element's value and links.
// The element must already be unlinked from any queue.
func (e *Element) Release() {
	if e == nil {
		return
	}
	e.Value = ""
	e.list.Next = nil
	e.list.Prev = nil
}

// copyTo copies up to len(sp)-1 bytes of the value into sp,
// followed by a NUL byte.
func (e *Element) copyTo(sp []byte) {
	if len(sp) == 0 {
		return
	}
	n := copy(sp[:len(sp)-1], e.Value)
	sp[n] = 0
}
