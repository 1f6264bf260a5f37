package routing

// VertexID identifies a graph vertex. Vertices for one stop are
// consecutive: the even arrival vertex first, the departure vertex right
// after it.
type VertexID int

// EdgeID identifies a graph edge. Ids are dense and assigned in insertion
// order, which keeps the graph and the segment table in lockstep.
type EdgeID int

// Edge is a directed edge weighted with travel time in minutes.
type Edge struct {
	From   VertexID
	To     VertexID
	Weight float64
}

// Graph is a directed weighted graph with a fixed vertex set. It is
// filled once during construction and read-only afterwards.
type Graph struct {
	edges    []Edge
	outgoing [][]EdgeID
}

// NewGraph allocates a graph with vertexCount vertices and no edges.
func NewGraph(vertexCount int) *Graph {
	return &Graph{outgoing: make([][]EdgeID, vertexCount)}
}

// AddEdge appends a directed edge and returns its id.
func (g *Graph) AddEdge(e Edge) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], id)
	return id
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.outgoing) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns the edge with the given id.
func (g *Graph) Edge(id EdgeID) Edge { return g.edges[id] }

// Outgoing returns the ids of all edges leaving v, in insertion order.
func (g *Graph) Outgoing(v VertexID) []EdgeID { return g.outgoing[v] }

// TotalWeight sums the weights of all edges. Handy for checking that two
// builds of the same network produced the same graph.
func (g *Graph) TotalWeight() float64 {
	var total float64
	for i := range g.edges {
		total += g.edges[i].Weight
	}
	return total
}
