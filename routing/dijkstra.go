package routing

import "container/heap"

// Path is a shortest path through the graph: its total weight in minutes
// and the ordered edge ids realizing it.
type Path struct {
	Weight float64
	Edges  []EdgeID
}

const noEdge = EdgeID(-1)

// ShortestPath runs Dijkstra's algorithm from one vertex to another and
// returns the minimum-weight path, or ok=false when the target is
// unreachable. from == to yields a zero-weight path with no edges.
//
// Each call is a pure function of (from, to) over the immutable graph: all
// scratch state is allocated per call, so concurrent queries never
// interfere. Ties on tentative distance break toward the lower vertex id,
// keeping results reproducible for a fixed graph.
func ShortestPath(g *Graph, from, to VertexID) (Path, bool) {
	dist := make([]float64, g.VertexCount())
	settled := make([]bool, g.VertexCount())
	via := make([]EdgeID, g.VertexCount()) // edge finalizing each vertex
	for i := range dist {
		dist[i] = -1 // unreached
		via[i] = noEdge
	}
	dist[from] = 0

	pq := &minQueue{{vertex: from, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(queueItem)
		if settled[item.vertex] {
			continue // stale entry from lazy decrease-key
		}
		settled[item.vertex] = true
		if item.vertex == to {
			break
		}
		for _, id := range g.Outgoing(item.vertex) {
			e := g.Edge(id)
			candidate := dist[item.vertex] + e.Weight
			if dist[e.To] >= 0 && dist[e.To] <= candidate {
				continue
			}
			dist[e.To] = candidate
			via[e.To] = id
			heap.Push(pq, queueItem{vertex: e.To, dist: candidate})
		}
	}

	if !settled[to] {
		return Path{}, false
	}

	// Walk the via edges back from the target to recover the edge order.
	var edges []EdgeID
	for v := to; v != from; {
		id := via[v]
		edges = append(edges, id)
		v = g.Edge(id).From
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return Path{Weight: dist[to], Edges: edges}, true
}

// queueItem pairs a vertex with its tentative distance from the source.
type queueItem struct {
	vertex VertexID
	dist   float64
}

// minQueue is a min-heap of queueItem using the lazy decrease-key scheme:
// improved distances push a fresh entry, stale entries are skipped when
// popped.
type minQueue []queueItem

func (q minQueue) Len() int { return len(q) }

func (q minQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].vertex < q[j].vertex
}

func (q minQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *minQueue) Push(x any) { *q = append(*q, x.(queueItem)) }

func (q *minQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
