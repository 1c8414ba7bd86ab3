package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level construct of a description file.
type fileRoot struct {
	Plugins    []string          `hcl:"plugins,optional"`
	SourceSets []*SourceSetBlock `hcl:"source_set,block"`
	License    []*LicenseBlock   `hcl:"license,block"`
	Reports    []*ReportBlock    `hcl:"license_report,block"`
	Tasks      []*TaskBlock      `hcl:"task,block"`
	Configures []*ConfigureBlock `hcl:"configure,block"`
}

// SourceSetBlock adds a code group to a facility.
type SourceSetBlock struct {
	Name         string   `hcl:"name,label"`
	Facility     string   `hcl:"facility"`
	SrcDirs      []string `hcl:"srcdirs,optional"`
	ResourceDirs []string `hcl:"resdirs,optional"`
}

// LicenseBlock edits the compliance configuration. Absent attributes leave
// the current value alone.
type LicenseBlock struct {
	Header              *string                  `hcl:"header,optional"`
	HeaderURI           *string                  `hcl:"header_uri,optional"`
	IgnoreFailures      *bool                    `hcl:"ignore_failures,optional"`
	DryRun              *bool                    `hcl:"dry_run,optional"`
	SkipExistingHeaders *bool                    `hcl:"skip_existing_headers,optional"`
	UseDefaultMappings  *bool                    `hcl:"use_default_mappings,optional"`
	StrictCheck         *bool                    `hcl:"strict_check,optional"`
	Encoding            *string                  `hcl:"encoding,optional"`
	SourceSets          *[]string                `hcl:"source_sets,optional"`
	Include             []string                 `hcl:"include,optional"`
	Exclude             []string                 `hcl:"exclude,optional"`
	Mapping             map[string]string        `hcl:"mapping,optional"`
	Properties          map[string]string        `hcl:"properties,optional"`
	InheritedMappings   map[string]string        `hcl:"inherited_mappings,optional"`
	HeaderDefinitions   []*HeaderDefinitionBlock `hcl:"header_definition,block"`
}

// HeaderDefinitionBlock registers a custom header style.
type HeaderDefinitionBlock struct {
	Type                      string `hcl:"type,label"`
	FirstLine                 string `hcl:"first_line,optional"`
	BeforeEachLine            string `hcl:"before_each_line,optional"`
	EndLine                   string `hcl:"end_line,optional"`
	AfterEachLine             string `hcl:"after_each_line,optional"`
	SkipLinePattern           string `hcl:"skip_line_pattern,optional"`
	FirstLineDetectionPattern string `hcl:"first_line_detection_pattern,optional"`
	LastLineDetectionPattern  string `hcl:"last_line_detection_pattern,optional"`
	AllowBlankLines           bool   `hcl:"allow_blank_lines,optional"`
	MultiLine                 bool   `hcl:"multi_line,optional"`
	PadLines                  bool   `hcl:"pad_lines,optional"`
}

// ReportBlock edits the report configuration.
type ReportBlock struct {
	ReportByDependency         *bool               `hcl:"report_by_dependency,optional"`
	ReportByLicenseType        *bool               `hcl:"report_by_license_type,optional"`
	IncludeProjectDependencies *bool               `hcl:"include_project_dependencies,optional"`
	IgnoreFatalParseErrors     *bool               `hcl:"ignore_fatal_parse_errors,optional"`
	ReportByDependencyFileName *string             `hcl:"report_by_dependency_file_name,optional"`
	ReportByLicenseFileName    *string             `hcl:"report_by_license_file_name,optional"`
	ExcludeDependencies        []string            `hcl:"exclude_dependencies,optional"`
	Licenses                   map[string]string   `hcl:"licenses,optional"`
	Aliases                    map[string][]string `hcl:"aliases,optional"`
	DependencyConfiguration    *string             `hcl:"dependency_configuration,optional"`
	Formats                    []*FormatBlock      `hcl:"report,block"`
}

// FormatBlock toggles one report output format.
type FormatBlock struct {
	Name        string  `hcl:"name,label"`
	Enabled     *bool   `hcl:"enabled,optional"`
	Destination *string `hcl:"destination,optional"`
}

// TaskBlock creates a task. Remaining attributes become explicit property
// overrides.
type TaskBlock struct {
	Name        string   `hcl:"name,label"`
	Type        string   `hcl:"type"`
	Check       *bool    `hcl:"check,optional"`
	Description *string  `hcl:"description,optional"`
	DependsOn   []string `hcl:"depends_on,optional"`
	Remain      hcl.Body `hcl:",remain"`
}

// ConfigureBlock overrides properties of an existing task once the project
// is finalized.
type ConfigureBlock struct {
	Name        string   `hcl:"name,label"`
	Description *string  `hcl:"description,optional"`
	DependsOn   []string `hcl:"depends_on,optional"`
	Remain      hcl.Body `hcl:",remain"`
}
