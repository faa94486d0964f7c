package pqueue

import "errors"

// Sentinel errors for BinaryHeap operations.
var (
	// ErrDuplicateElement indicates Insert was called for an identity that
	// already resides in the heap.
	ErrDuplicateElement = errors.New("pqueue: element with this identity already resides in heap")

	// ErrEmptyHeap indicates First or Remove was called on an empty heap.
	ErrEmptyHeap = errors.New("pqueue: heap is empty")

	// ErrUnknownIdentifier indicates IncreasePriority or IncreasePriorityAt
	// referenced an identity or array position not currently resident.
	ErrUnknownIdentifier = errors.New("pqueue: identifier does not reference a resident element")

	// ErrPriorityNotImproving indicates IncreasePriority(At) was called with
	// a new priority that is not strictly less than the element's current
	// priority.
	ErrPriorityNotImproving = errors.New("pqueue: new priority does not improve on current priority")
)
