package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/core"

	"github.com/flowdiscovery/voxelskeleton/neighbor"
	"github.com/flowdiscovery/voxelskeleton/point"
)

// Node is a skeleton voxel whose skeleton-neighbour count is not
// exactly 2: an endpoint of a dangling branch, a junction where
// branches meet, or (after ring promotion, see Extract) the chosen
// representative of a closed loop with no junction at all.
type Node struct {
	Point  point.Point3
	Degree int
}

// Link is a maximal chain of skeleton voxels with exactly 2 skeleton
// neighbours, connecting From to To (which may be equal, for a ring).
// Voxels lists the chain in walk order including both endpoints.
type Link struct {
	From, To point.Point3
	Voxels   []point.Point3
	Length   float64
}

// Network is the graph form of a skeleton: Nodes and Links as voxel
// data, plus the same topology materialized as a *core.Graph (vertex
// IDs are "x,y,z") so lvlath graph algorithms can run over it directly.
type Network struct {
	Nodes []Node
	Links []Link
	Graph *core.Graph
}

// Extract builds a Network from a skeleton voxel set, per spec §4.9. An
// empty skeleton yields an empty, non-error Network. neighbours should
// be the same connectivity used to produce the skeleton.
func Extract(skeleton []point.Point3, neighbours neighbor.Calculator3) (*Network, error) {
	net := &Network{Graph: core.NewGraph(core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())}
	if len(skeleton) == 0 {
		return net, nil
	}

	skelSet := make(map[point.Point3]bool, len(skeleton))
	for _, p := range skeleton {
		skelSet[p] = true
	}

	degree := make(map[point.Point3]int, len(skeleton))
	for _, p := range skeleton {
		degree[p] = skeletonDegree(p, skelSet, neighbours)
	}

	visited := make(map[point.Point3]bool, len(skeleton))
	used := make(map[edgeKey]bool)

	for _, p := range skeleton {
		if degree[p] == 2 {
			continue
		}
		node := Node{Point: p, Degree: degree[p]}
		net.Nodes = append(net.Nodes, node)
		visited[p] = true
		if err := net.addVertex(p); err != nil {
			return nil, err
		}
	}

	for _, n := range net.Nodes {
		for _, q := range neighbours(n.Point) {
			if !skelSet[q] {
				continue
			}
			k := makeEdgeKey(n.Point, q)
			if used[k] {
				continue
			}
			used[k] = true
			link, err := walkChain(n.Point, q, degree, skelSet, neighbours, used)
			if err != nil {
				return nil, err
			}
			for _, v := range link.Voxels {
				visited[v] = true
			}
			net.Links = append(net.Links, link)
			if err := net.addLinkEdge(link); err != nil {
				return nil, err
			}
		}
	}

	// Any skeleton voxel left unvisited belongs to a closed loop with no
	// junction (every voxel on it has degree 2): pick the smallest point
	// of each such component as a synthetic node and emit a self-loop
	// Link spanning the whole ring.
	for _, p := range skeleton {
		if visited[p] {
			continue
		}
		component := floodFillUnvisited(p, skelSet, visited, neighbours)
		start := component[0]
		for _, c := range component[1:] {
			if c.Less(start) {
				start = c
			}
		}
		for _, c := range component {
			visited[c] = true
		}

		node := Node{Point: start, Degree: 2}
		net.Nodes = append(net.Nodes, node)
		if err := net.addVertex(start); err != nil {
			return nil, err
		}

		ring := walkRing(start, skelSet, neighbours)
		net.Links = append(net.Links, ring)
		if err := net.addLinkEdge(ring); err != nil {
			return nil, err
		}
	}

	return net, nil
}

func (net *Network) addVertex(p point.Point3) error {
	if err := net.Graph.AddVertex(vertexID(p)); err != nil {
		return fmt.Errorf("network: adding vertex %v: %w", p, err)
	}
	return nil
}

func (net *Network) addLinkEdge(link Link) error {
	weight := int64(math.Round(link.Length))
	if _, err := net.Graph.AddEdge(vertexID(link.From), vertexID(link.To), weight); err != nil {
		return fmt.Errorf("network: adding edge %v->%v: %w", link.From, link.To, err)
	}
	return nil
}

func vertexID(p point.Point3) string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// skeletonDegree counts how many of p's neighbours (under neighbours)
// are themselves skeleton voxels.
func skeletonDegree(p point.Point3, skelSet map[point.Point3]bool, neighbours neighbor.Calculator3) int {
	n := 0
	for _, q := range neighbours(p) {
		if skelSet[q] {
			n++
		}
	}
	return n
}

// edgeKey canonically identifies an undirected adjacency between two
// skeleton voxels, so each adjacency is walked at most once regardless
// of which endpoint the traversal started from.
type edgeKey struct{ A, B point.Point3 }

func makeEdgeKey(a, b point.Point3) edgeKey {
	if b.Less(a) {
		a, b = b, a
	}
	return edgeKey{A: a, B: b}
}

// walkChain follows the degree-2 chain starting with the edge start->
// next until another node (a voxel with degree != 2) is reached,
// marking every traversed adjacency as used so it is never re-walked
// from the far end.
func walkChain(
	start, next point.Point3,
	degree map[point.Point3]int,
	skelSet map[point.Point3]bool,
	neighbours neighbor.Calculator3,
	used map[edgeKey]bool,
) (Link, error) {
	chain := []point.Point3{start, next}
	prev, cur := start, next

	for degree[cur] == 2 {
		nxt, ok := otherNeighbour(cur, prev, skelSet, neighbours)
		if !ok {
			// Dead end on a voxel reporting degree 2: inconsistent input.
			return Link{}, fmt.Errorf("network: degree-2 voxel %v has no unexplored neighbour", cur)
		}
		used[makeEdgeKey(cur, nxt)] = true
		chain = append(chain, nxt)
		prev, cur = cur, nxt
	}

	return Link{From: start, To: cur, Voxels: chain, Length: chainLength(chain)}, nil
}

// walkRing walks one full loop around a closed, junction-free skeleton
// component, starting and ending at start.
func walkRing(start point.Point3, skelSet map[point.Point3]bool, neighbours neighbor.Calculator3) Link {
	var firstStep point.Point3
	for _, q := range neighbours(start) {
		if skelSet[q] {
			firstStep = q
			break
		}
	}

	chain := []point.Point3{start, firstStep}
	prev, cur := start, firstStep
	for cur != start {
		nxt, ok := otherNeighbour(cur, prev, skelSet, neighbours)
		if !ok {
			break
		}
		chain = append(chain, nxt)
		prev, cur = cur, nxt
	}

	return Link{From: start, To: start, Voxels: chain, Length: chainLength(chain)}
}

// otherNeighbour returns cur's skeleton neighbour other than prev.
// Ambiguous only if cur's degree exceeds 2, which callers never invoke
// this against.
func otherNeighbour(cur, prev point.Point3, skelSet map[point.Point3]bool, neighbours neighbor.Calculator3) (point.Point3, bool) {
	for _, q := range neighbours(cur) {
		if q == prev || !skelSet[q] {
			continue
		}
		return q, true
	}
	return point.Point3{}, false
}

func floodFillUnvisited(start point.Point3, skelSet, visited map[point.Point3]bool, neighbours neighbor.Calculator3) []point.Point3 {
	seen := map[point.Point3]bool{start: true}
	queue := []point.Point3{start}
	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		for _, q := range neighbours(cur) {
			if !skelSet[q] || visited[q] || seen[q] {
				continue
			}
			seen[q] = true
			queue = append(queue, q)
		}
	}
	return queue
}

func chainLength(chain []point.Point3) float64 {
	var total float64
	for i := 1; i < len(chain); i++ {
		dx := float64(chain[i].X - chain[i-1].X)
		dy := float64(chain[i].Y - chain[i-1].Y)
		dz := float64(chain[i].Z - chain[i-1].Z)
		total += math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	return total
}
