// Package pqueue implements a mutable-priority binary min-heap with a
// hash index for O(1) location of a resident element by identity,
// enabling an O(log n) IncreasePriority (decrease-key) operation.
//
// What:
//
//   - BinaryHeap[ID, P]: array-backed binary heap (root at 0, children at
//     2i+1/2i+2) of elements keyed by a comparable identity ID and
//     ordered by an ordered priority P.
//   - A parallel map[ID]int tracks each resident element's current array
//     slot, updated on every swap so decrease-key does not need a linear
//     scan to find its target.
//
// Why:
//
//   - container/heap (the standard library's heap interface) supports
//     Push/Pop but no direct way to locate-then-fix an arbitrary element
//     by identity in better than O(n); a Dijkstra-style expansion that
//     relaxes many edges needs true decrease-key to stay O(log n) per
//     relaxation instead of growing the heap with stale duplicate
//     entries. No package in this corpus implements hash-indexed
//     decrease-key directly (lvlath's dijkstra and prim_kruskal both use
//     container/heap's lazy "push a duplicate, skip stale pops on
//     removal" pattern) so this package is new code, grounded on the
//     corpus's sentinel-error and package-layout conventions rather than
//     on a borrowed algorithm body.
//
// Failure semantics (spec sentinel errors, all distinguishable by kind):
//
//   - ErrDuplicateElement: Insert of an identity already resident.
//   - ErrEmptyHeap: First/Remove on an empty heap.
//   - ErrUnknownIdentifier: IncreasePriority/IncreasePriorityAt reference
//     an identity or position not currently resident.
//   - ErrPriorityNotImproving: IncreasePriority(At) called with a new
//     priority that is not strictly less than the current one.
//
// Complexity: Insert/IncreasePriority(At) O(log n); First O(1); Remove
// O(log n); HeapSize/IsEmpty O(1).
package pqueue
