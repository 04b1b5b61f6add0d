package list

import (
	"errors"
	"fmt"
	"iter"
)

var (
	ErrNil    = errors.New("list: nil link")
	ErrBroken = errors.New("list: broken back link")
	ErrCycle  = errors.New("list: ring does not return to head")
)

// All iterates the links of ring h from first to last.
// The ring must not be modified during the walk.
func (h *Head[T]) All() iter.Seq[*Head[T]] {
	return func(yield func(*Head[T]) bool) {
		for pos := h.Next; pos != h; pos = pos.Next {
			if !yield(pos) {
				return
			}
		}
	}
}

// Safe iterates the links of ring h from first to last.
// The link being visited may be unlinked or moved to another ring.
func (h *Head[T]) Safe() iter.Seq[*Head[T]] {
	return func(yield func(*Head[T]) bool) {
		for pos, next := h.Next, h.Next.Next; pos != h; pos, next = next, next.Next {
			if !yield(pos) {
				return
			}
		}
	}
}

// Backward iterates the links of ring h from last to first.
func (h *Head[T]) Backward() iter.Seq[*Head[T]] {
	return func(yield func(*Head[T]) bool) {
		for pos := h.Prev; pos != h; pos = pos.Prev {
			if !yield(pos) {
				return
			}
		}
	}
}

// Check walks ring h and reports the first link that breaks the ring:
// a nil pointer, a successor whose Prev does not point back, or a walk
// longer than limit links that never gets back to h. A limit <= 0 means
// no bound.
func (h *Head[T]) Check(limit int) error {
	if h.Next == nil || h.Prev == nil {
		return fmt.Errorf("head: %w", ErrNil)
	}
	pos := h
	for i := 0; limit <= 0 || i <= limit; i++ {
		next := pos.Next
		if next == nil {
			return fmt.Errorf("link %d: %w", i, ErrNil)
		}
		if next.Prev != pos {
			return fmt.Errorf("link %d: %w", i, ErrBroken)
		}
		if next == h {
			return nil
		}
		pos = next
	}
	return fmt.Errorf("after %d links: %w", limit, ErrCycle)
}
