package skeleton

import "errors"

// ErrHeapInvariant reports a heap decrease-key violation surfacing out of
// the Dijkstra loop -- per spec §7 this must never happen in practice,
// since the loop only calls IncreasePriority when the tentative distance
// is already known to be strictly smaller. Its presence here is a bug
// guard, not a user-facing error path.
var ErrHeapInvariant = errors.New("skeleton: heap reported a decrease-key violation")
