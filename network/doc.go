// Package network translates a skeleton (the medial-axis voxel set
// produced by package skeleton) into a graph, per spec §4.9.
//
// A Node is a skeleton voxel whose skeleton-neighbour count is not
// exactly 2: an endpoint (0 or 1 neighbours) or a junction (3 or more).
// A Link is a maximal chain of skeleton voxels with exactly 2
// neighbours, connecting two nodes (possibly the same node, for a
// closed loop with no junction).
//
// Extraction walks outward from every node along its skeleton
// neighbours, consuming degree-2 voxels until another node is reached,
// the same traversal shape as lvlath gridgraph.ToCoreGraph's
// neighbour-walk, generalized from "emit one edge per adjacent cell
// pair" to "emit one edge per maximal degree-2 chain". The resulting
// topology is also materialized as a *core.Graph so any lvlath graph
// algorithm can run over it.
package network
