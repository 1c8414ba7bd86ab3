package config

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultDependencyConfiguration is the runtime dependency scope.
const DefaultDependencyConfiguration = "runtime"

// ReportFormat toggles one output format of the dependency license report.
type ReportFormat struct {
	Enabled     bool
	Destination string
}

// ReportFormats holds the per-format switches.
type ReportFormats struct {
	HTML ReportFormat
	XML  ReportFormat
	JSON ReportFormat
}

// Format returns the switch for "html", "xml" or "json".
func (f *ReportFormats) Format(name string) (*ReportFormat, bool) {
	switch strings.ToLower(name) {
	case "html":
		return &f.HTML, true
	case "xml":
		return &f.XML, true
	case "json":
		return &f.JSON, true
	}
	return nil, false
}

// Report is the build-wide dependency license report configuration.
type Report struct {
	ReportByDependency         bool
	ReportByLicenseType        bool
	IncludeProjectDependencies bool
	IgnoreFatalParseErrors     bool

	ReportByDependencyFileName string
	ReportByLicenseFileName    string

	ExcludeDependencies []string

	// Licenses overrides the declared license of a dependency.
	Licenses map[string]string
	// Aliases maps a canonical license name to the names normalized to it.
	Aliases map[string][]string

	Formats ReportFormats

	DependencyConfiguration string
}

// NewReport returns the configuration with its defaults. reportsDir is the
// project's reports directory.
func NewReport(reportsDir string) *Report {
	dest := filepath.Join(reportsDir, "license")
	return &Report{
		ReportByDependency:         true,
		ReportByLicenseType:        true,
		ReportByDependencyFileName: "dependency-license",
		ReportByLicenseFileName:    "license-dependency",
		Licenses:                   make(map[string]string),
		Aliases:                    make(map[string][]string),
		Formats: ReportFormats{
			HTML: ReportFormat{Enabled: true, Destination: dest},
			XML:  ReportFormat{Enabled: true, Destination: dest},
			JSON: ReportFormat{Enabled: true, Destination: dest},
		},
		DependencyConfiguration: DefaultDependencyConfiguration,
	}
}

// NormalizeLicense maps an alias to its canonical license name. Matching is
// case-insensitive and canonical names are tried in sorted order, so an alias
// listed under several names always resolves to the first of them. Unknown
// names are returned unchanged.
func NormalizeLicense(aliases map[string][]string, name string) string {
	for _, canonical := range slices.Sorted(maps.Keys(aliases)) {
		if strings.EqualFold(canonical, name) {
			return canonical
		}
		for _, alias := range aliases[canonical] {
			if strings.EqualFold(alias, name) {
				return canonical
			}
		}
	}
	return name
}
