package config

import (
	"fmt"
	"maps"
	"strings"

	"github.com/specialistvlad/licensegrid/internal/build"
)

// DefaultEncoding is used when the build does not name one.
const DefaultEncoding = "UTF-8"

// Compliance is the build-wide license header configuration.
type Compliance struct {
	Header    string
	HeaderURI string

	IgnoreFailures      bool
	DryRun              bool
	SkipExistingHeaders bool
	UseDefaultMappings  bool
	StrictCheck         bool

	Encoding string

	// SourceSets are the code groups that get check and format tasks.
	// Membership is read once per facility at the finalize barrier.
	SourceSets *build.SourceSetContainer

	HeaderDefinitions map[string]HeaderDefinition
	Includes          []string
	Excludes          []string

	// Mapping maps a file extension to a header definition type.
	Mapping map[string]string

	// InheritedProperties and InheritedMappings are visible to per-file-type
	// header templates.
	InheritedProperties map[string]string
	InheritedMappings   map[string]string
}

// NewCompliance returns the configuration with its defaults.
func NewCompliance() *Compliance {
	return &Compliance{
		Header:              "LICENSE",
		UseDefaultMappings:  true,
		Encoding:            DefaultEncoding,
		SourceSets:          build.NewSourceSetContainer(),
		HeaderDefinitions:   make(map[string]HeaderDefinition),
		Mapping:             make(map[string]string),
		InheritedProperties: make(map[string]string),
		InheritedMappings:   make(map[string]string),
	}
}

// AddHeaderDefinition registers a custom header syntax by its type.
func (c *Compliance) AddHeaderDefinition(def HeaderDefinition) error {
	if err := def.Validate(); err != nil {
		return &build.ConfigurationError{Subject: "license", Reason: err.Error()}
	}
	key := strings.ToLower(def.Type)
	if _, exists := c.HeaderDefinitions[key]; exists {
		return &build.ConfigurationError{Subject: "license", Reason: fmt.Sprintf("header definition %q already defined", def.Type)}
	}
	c.HeaderDefinitions[key] = def
	return nil
}

// Map associates a file extension with a header definition type.
func (c *Compliance) Map(extension, headerType string) {
	c.Mapping[strings.TrimPrefix(extension, ".")] = headerType
}

// Include adds include patterns.
func (c *Compliance) Include(patterns ...string) {
	c.Includes = append(c.Includes, patterns...)
}

// Exclude adds exclude patterns.
func (c *Compliance) Exclude(patterns ...string) {
	c.Excludes = append(c.Excludes, patterns...)
}

// Snapshot copies the reference-typed fields so a reader cannot mutate the
// configuration through a resolved property value.
func (c *Compliance) Snapshot() Compliance {
	out := *c
	out.HeaderDefinitions = maps.Clone(c.HeaderDefinitions)
	out.Includes = append([]string(nil), c.Includes...)
	out.Excludes = append([]string(nil), c.Excludes...)
	out.Mapping = maps.Clone(c.Mapping)
	out.InheritedProperties = maps.Clone(c.InheritedProperties)
	out.InheritedMappings = maps.Clone(c.InheritedMappings)
	return out
}
