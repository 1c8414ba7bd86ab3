// Package plugin attaches the license compliance plugin to a build project.
//
// Apply registers the two configuration singletons, installs the task
// factories that bind every header and report task to them, creates the
// "license" and "licenseFormat" aggregates and the report task, and
// subscribes to the optional facilities the host may activate. Each
// activated facility contributes its code groups to the tracked collection
// and queues graph synthesis for the finalize barrier, where one check and
// one format task per tracked group of that facility are created.
package plugin
