package dag

// Graph is a collection of nodes and their dependencies. It is not safe for
// concurrent mutation.
type Graph struct {
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
	// order records insertion order so traversals are deterministic.
	order []string
}

type node struct {
	id string
	// deps holds the IDs of the nodes this node depends on (predecessors).
	deps []string
	// dependents holds the IDs of the nodes that depend on this node (successors).
	dependents []string
}
