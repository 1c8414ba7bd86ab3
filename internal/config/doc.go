// Package config defines the two build-wide configuration objects of the
// compliance plugin, Compliance and Report, and the Registry that creates
// them exactly once per build with their documented defaults.
//
// Both objects are plain mutable structs. Build descriptions write them
// during the declare phase; tasks never copy them but read them through
// convention properties, so late writes are still observed.
package config
