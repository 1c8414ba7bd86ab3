// Package hcl loads a build description written in HCL and applies it to a
// project during the declare phase.
//
// A description activates facilities, declares extra source sets, edits the
// two configuration singletons, creates tasks of any registered kind and
// queues explicit overrides for tasks that only exist after the finalize
// barrier. Every file of a description is parsed before anything is applied,
// so the order of blocks across files does not matter.
package hcl
