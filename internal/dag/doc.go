// Package dag provides the dependency graph used to order task execution.
// Nodes are task names; an edge from A to B means B depends on A.
package dag
