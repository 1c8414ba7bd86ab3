// Package tasks defines the two task kinds of the compliance plugin.
//
// HeaderTask checks (Check == true) or formats license headers of one code
// group; ReportTask produces dependency license reports. Both expose their
// settings as convention properties. ConfigureHeaderTask and
// ConfigureReportTask bind those properties to the build-wide configuration;
// the plugin calls them from the task factories so every task of a kind is
// bound the same way however it was created.
//
// The header algorithm and report rendering are not implemented here. At
// execution time a task resolves its properties into a request and hands it
// to a HeaderProcessor or ReportGenerator.
package tasks
