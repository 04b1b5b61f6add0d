// Package queue implements a string queue on an intrusive circular
// doubly-linked list (see package list).
//
// The queue is a sentinel link; every Element embeds its own link and owns
// its value. All operations splice links, none copy values between elements.
//
//	kind          methods                   effect
//	insert        InsertHead/InsertTail     new element at head/tail
//	remove        RemoveHead/RemoveTail     element unlinked, returned to caller
//	delete        DeleteMid/DeleteDup/Free  element unlinked and released
//
// "remove" hands the element over to the caller, who releases it when done.
// "delete" releases the element itself.
//
// A nil *Queue stands for an absent queue: insert reports false, remove
// returns nil, Size returns 0, and the transforms do nothing.
//
// Size is never cached: it walks the ring on every call.
//
// A Queue is not safe for concurrent use.
package queue
