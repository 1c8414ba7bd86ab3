// Package render prints the task graph of a finalized project and dumps
// resolved configuration for inspection.
package render
