package config

import (
	"fmt"

	"github.com/specialistvlad/licensegrid/internal/build"
)

// Kind names a configuration singleton.
type Kind string

const (
	KindCompliance Kind = "license"
	KindReport     Kind = "downloadLicenses"
)

// Registry owns the two configuration singletons of a build.
type Registry struct {
	reportsDir string
	compliance *Compliance
	report     *Report
}

// NewRegistry returns an empty registry. reportsDir seeds report destinations.
func NewRegistry(reportsDir string) *Registry {
	return &Registry{reportsDir: reportsDir}
}

// Register creates the singleton of the given kind with its defaults.
// A kind may be registered once per build.
func (r *Registry) Register(kind Kind) (any, error) {
	switch kind {
	case KindCompliance:
		if r.compliance != nil {
			return nil, &build.ConfigurationError{Subject: string(kind), Reason: "configuration already registered"}
		}
		r.compliance = NewCompliance()
		return r.compliance, nil
	case KindReport:
		if r.report != nil {
			return nil, &build.ConfigurationError{Subject: string(kind), Reason: "configuration already registered"}
		}
		r.report = NewReport(r.reportsDir)
		return r.report, nil
	}
	return nil, &build.ConfigurationError{Subject: string(kind), Reason: fmt.Sprintf("unknown configuration kind %q", kind)}
}

// Compliance returns the registered compliance configuration or nil.
func (r *Registry) Compliance() *Compliance { return r.compliance }

// Report returns the registered report configuration or nil.
func (r *Registry) Report() *Report { return r.report }
