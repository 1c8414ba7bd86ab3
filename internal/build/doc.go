// Package build is the host build model the compliance plugin attaches to.
//
// A Project owns a TaskContainer, a FacilityManager and an ExtensionContainer
// and moves through two phases. During the declare phase build descriptions
// and facilities may freely mutate configuration, add source sets and create
// tasks. Finalize is the barrier: it runs the queued AfterEvaluate actions
// exactly once, in registration order, and closes the declare phase.
//
// Task creation is funnelled through per-kind factories registered on the
// TaskContainer, so every task of a kind is configured the same way no matter
// who asks for it. Optional facilities are registered by the host and may be
// activated by the build description; interested parties subscribe with
// WithFacility instead of probing types at runtime.
package build
