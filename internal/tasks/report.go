package tasks

import (
	"context"
	"errors"
	"maps"
	"slices"

	"github.com/specialistvlad/licensegrid/internal/build"
	"github.com/specialistvlad/licensegrid/internal/convention"
	"github.com/specialistvlad/licensegrid/internal/ctxlog"
)

// KindReport is the task kind of dependency license report tasks.
const KindReport build.Kind = "downloadLicenses"

// reportFormats lists the per-format property prefixes in output order.
var reportFormats = []string{"html", "xml", "json"}

// ReportTask produces dependency license reports.
type ReportTask struct {
	build.BaseTask

	ReportByDependency         *convention.Property[bool]
	ReportByLicenseType        *convention.Property[bool]
	IncludeProjectDependencies *convention.Property[bool]
	IgnoreFatalParseErrors     *convention.Property[bool]
	ReportByDependencyFileName *convention.Property[string]
	ReportByLicenseFileName    *convention.Property[string]
	ExcludeDependencies        *convention.Property[[]string]
	Licenses                   *convention.Property[map[string]string]
	Aliases                    *convention.Property[map[string][]string]
	DependencyConfiguration    *convention.Property[string]

	// Enabled and Destination are keyed by "html", "xml" and "json".
	Enabled     map[string]*convention.Property[bool]
	Destination map[string]*convention.Property[string]

	props     *convention.Set
	generator ReportGenerator
}

// NewReportTask creates an unbound report task. A nil generator means
// PlanningGenerator.
func NewReportTask(name string, generator ReportGenerator) *ReportTask {
	if generator == nil {
		generator = PlanningGenerator{}
	}
	s := convention.NewSet(name)
	t := &ReportTask{
		BaseTask:                   build.NewBaseTask(name, KindReport),
		ReportByDependency:         convention.Register[bool](s, "reportByDependency"),
		ReportByLicenseType:        convention.Register[bool](s, "reportByLicenseType"),
		IncludeProjectDependencies: convention.Register[bool](s, "includeProjectDependencies"),
		IgnoreFatalParseErrors:     convention.Register[bool](s, "ignoreFatalParseErrors"),
		ReportByDependencyFileName: convention.Register[string](s, "reportByDependencyFileName"),
		ReportByLicenseFileName:    convention.Register[string](s, "reportByLicenseFileName"),
		ExcludeDependencies:        convention.Register[[]string](s, "excludeDependencies").WithCopy(slices.Clone[[]string]),
		Licenses:                   convention.Register[map[string]string](s, "licenses").WithCopy(maps.Clone[map[string]string]),
		Aliases:                    convention.Register[map[string][]string](s, "aliases").WithCopy(cloneAliases),
		DependencyConfiguration:    convention.Register[string](s, "dependencyConfiguration"),
		Enabled:                    make(map[string]*convention.Property[bool]),
		Destination:                make(map[string]*convention.Property[string]),
		props:                      s,
		generator:                  generator,
	}
	for _, f := range reportFormats {
		t.Enabled[f] = convention.Register[bool](s, f+"Enabled")
		t.Destination[f] = convention.Register[string](s, f+"Destination")
	}
	return t
}

// cloneAliases copies the alias lists as well as the map.
func cloneAliases(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}

// Properties exposes the task's convention properties by name.
func (t *ReportTask) Properties() *convention.Set { return t.props }

// Request resolves every property now.
func (t *ReportTask) Request() ReportRequest {
	req := ReportRequest{
		Task:                       t.Name(),
		ReportByDependency:         t.ReportByDependency.Get(),
		ReportByLicenseType:        t.ReportByLicenseType.Get(),
		IncludeProjectDependencies: t.IncludeProjectDependencies.Get(),
		IgnoreFatalParseErrors:     t.IgnoreFatalParseErrors.Get(),
		ReportByDependencyFileName: t.ReportByDependencyFileName.Get(),
		ReportByLicenseFileName:    t.ReportByLicenseFileName.Get(),
		ExcludeDependencies:        t.ExcludeDependencies.Get(),
		Licenses:                   t.Licenses.Get(),
		Aliases:                    t.Aliases.Get(),
		DependencyConfiguration:    t.DependencyConfiguration.Get(),
	}
	for _, f := range reportFormats {
		if t.Enabled[f].Get() {
			req.Outputs = append(req.Outputs, ReportOutput{Format: f, Destination: t.Destination[f].Get()})
		}
	}
	return req
}

// Execute resolves the request and hands it to the generator. Unusable
// license metadata only warns when ignoreFatalParseErrors is set.
func (t *ReportTask) Execute(ctx context.Context) error {
	req := t.Request()
	err := t.generator.Generate(ctx, req)
	if err != nil && req.IgnoreFatalParseErrors && errors.Is(err, ErrReportGeneration) {
		ctxlog.FromContext(ctx).Warn("License metadata errors ignored.", "error", err)
		return nil
	}
	return err
}
