package dag

// Graph is a set of named nodes and the dependencies between them. It is
// built and read by a single goroutine.
type Graph struct {
	nodes map[string]*node
	// order keeps insertion order for deterministic traversal.
	order []string
}

type node struct {
	id string
	// deps are the nodes this node waits for.
	deps map[string]*node
	// dependents are the nodes waiting for this one.
	dependents map[string]*node
}
