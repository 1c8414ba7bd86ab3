// Package convention implements lazily resolved task properties.
//
// A Property holds an optional explicit value and a convention: a deferred
// computation evaluated against the current state of a configuration object.
// Reads return the explicit value when one was assigned, otherwise they
// re-evaluate the convention. Nothing is cached, so configuration changed
// after a task was created, but before it runs, is still observed.
//
// Properties are grouped in a Set keyed by name. Bind attaches a convention
// to a named property with a compile-time checked type; binding twice replaces
// the previous convention rather than layering a second fallback.
package convention
