package tasks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/licensegrid/internal/build"
	"github.com/specialistvlad/licensegrid/internal/config"
	"github.com/specialistvlad/licensegrid/internal/convention"
)

// ConfigureHeaderTask binds every property of t to the matching field of
// cfg. Values are read from cfg on each access. Calling it again replaces
// the bindings; explicit values set on t are kept.
func ConfigureHeaderTask(t *HeaderTask, cfg *config.Compliance) error {
	s := t.Properties()
	err := errors.Join(
		convention.Bind(s, "header", func() string { return cfg.Header }),
		convention.Bind(s, "headerURI", func() string { return cfg.HeaderURI }),
		convention.Bind(s, "ignoreFailures", func() bool { return cfg.IgnoreFailures }),
		convention.Bind(s, "dryRun", func() bool { return cfg.DryRun }),
		convention.Bind(s, "skipExistingHeaders", func() bool { return cfg.SkipExistingHeaders }),
		convention.Bind(s, "useDefaultMappings", func() bool { return cfg.UseDefaultMappings }),
		convention.Bind(s, "strictCheck", func() bool { return cfg.StrictCheck }),
		convention.Bind(s, "encoding", func() string {
			if cfg.Encoding == "" {
				return config.DefaultEncoding
			}
			return cfg.Encoding
		}),
		convention.Bind(s, "includes", func() []string { return cfg.Includes }),
		convention.Bind(s, "excludes", func() []string { return cfg.Excludes }),
		convention.Bind(s, "mapping", func() map[string]string { return cfg.Mapping }),
		convention.Bind(s, "inheritedProperties", func() map[string]string { return cfg.InheritedProperties }),
		convention.Bind(s, "inheritedMappings", func() map[string]string { return cfg.InheritedMappings }),
		convention.Bind(s, "headerDefinitions", func() map[string]config.HeaderDefinition { return cfg.HeaderDefinitions }),
	)
	if err != nil {
		return err
	}
	return requireBound(s)
}

// ConfigureReportTask binds every property of t, including the per-format
// switches, to the matching field of cfg.
func ConfigureReportTask(t *ReportTask, cfg *config.Report) error {
	s := t.Properties()
	errs := []error{
		convention.Bind(s, "reportByDependency", func() bool { return cfg.ReportByDependency }),
		convention.Bind(s, "reportByLicenseType", func() bool { return cfg.ReportByLicenseType }),
		convention.Bind(s, "includeProjectDependencies", func() bool { return cfg.IncludeProjectDependencies }),
		convention.Bind(s, "ignoreFatalParseErrors", func() bool { return cfg.IgnoreFatalParseErrors }),
		convention.Bind(s, "reportByDependencyFileName", func() string { return cfg.ReportByDependencyFileName }),
		convention.Bind(s, "reportByLicenseFileName", func() string { return cfg.ReportByLicenseFileName }),
		convention.Bind(s, "excludeDependencies", func() []string { return cfg.ExcludeDependencies }),
		convention.Bind(s, "licenses", func() map[string]string { return cfg.Licenses }),
		convention.Bind(s, "aliases", func() map[string][]string { return cfg.Aliases }),
		convention.Bind(s, "dependencyConfiguration", func() string { return cfg.DependencyConfiguration }),
	}
	for _, name := range reportFormats {
		errs = append(errs,
			convention.Bind(s, name+"Enabled", func() bool {
				f, _ := cfg.Formats.Format(name)
				return f.Enabled
			}),
			convention.Bind(s, name+"Destination", func() string {
				f, _ := cfg.Formats.Format(name)
				return f.Destination
			}),
		)
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	return requireBound(s)
}

// requireBound fails when a property was left without a convention, so a
// new task property cannot silently resolve to its zero value.
func requireBound(s *convention.Set) error {
	if unbound := s.Unbound(); len(unbound) > 0 {
		return &build.ConfigurationError{
			Subject: s.Owner(),
			Reason:  fmt.Sprintf("properties without a convention: %s", strings.Join(unbound, ", ")),
		}
	}
	return nil
}
