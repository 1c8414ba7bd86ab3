// Package app contains the core application logic. It builds a project from
// a build description, attaches the license plugin, closes the declare phase
// and then lists, dumps or runs tasks, decoupled from any specific entrypoint
// like a CLI.
package app
