package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/licensegrid/internal/build"
	"github.com/specialistvlad/licensegrid/internal/config"
	"github.com/specialistvlad/licensegrid/internal/ctxlog"
)

// apply runs the merged description against p in a fixed order: facilities,
// source sets, configuration, tasks, then deferred overrides.
func (l *Loader) apply(ctx context.Context, p *build.Project, evalCtx *hcl.EvalContext, root *fileRoot) error {
	logger := ctxlog.FromContext(ctx)

	for _, id := range root.Plugins {
		if err := p.Facilities.Activate(ctx, id); err != nil {
			return err
		}
	}

	for _, b := range root.SourceSets {
		if err := l.addSourceSet(p, b); err != nil {
			return err
		}
	}

	if len(root.License) > 0 {
		cfg, ok := build.FindExtension[*config.Compliance](p.Extensions, string(config.KindCompliance))
		if !ok {
			return &build.ConfigurationError{Subject: "license", Reason: "license configuration is not registered"}
		}
		for _, b := range root.License {
			if err := applyLicense(cfg, b); err != nil {
				return err
			}
		}
	}

	if len(root.Reports) > 0 {
		cfg, ok := build.FindExtension[*config.Report](p.Extensions, string(config.KindReport))
		if !ok {
			return &build.ConfigurationError{Subject: "license_report", Reason: "report configuration is not registered"}
		}
		for _, b := range root.Reports {
			if err := applyReport(p, cfg, b); err != nil {
				return err
			}
		}
	}

	for _, b := range root.Tasks {
		if err := l.createTask(p, evalCtx, b); err != nil {
			return err
		}
		logger.Debug("Task declared.", "task", b.Name, "type", b.Type)
	}

	for _, b := range root.Configures {
		err := p.AfterEvaluate(func(ctx context.Context) error {
			task, ok := p.Tasks.Get(b.Name)
			if !ok {
				return &build.ConfigurationError{Subject: b.Name, Reason: "configure block targets an unknown task"}
			}
			ctxlog.FromContext(ctx).Debug("Applying task overrides.", "task", b.Name)
			return configureTask(task, evalCtx, b.Description, b.DependsOn, b.Remain)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) addSourceSet(p *build.Project, b *SourceSetBlock) error {
	f, ok := p.Facilities.Lookup(b.Facility)
	if !ok {
		return &build.ConfigurationError{Subject: b.Name, Reason: fmt.Sprintf("unknown facility %q", b.Facility)}
	}
	set := &build.SourceSet{Name: b.Name, Facility: f.ID()}
	for _, dir := range b.SrcDirs {
		set.SrcDirs = append(set.SrcDirs, p.File(dir))
	}
	for _, dir := range b.ResourceDirs {
		set.ResourceDirs = append(set.ResourceDirs, p.File(dir))
	}
	return f.SourceSets().Add(set)
}

func applyLicense(cfg *config.Compliance, b *LicenseBlock) error {
	setIf(&cfg.Header, b.Header)
	setIf(&cfg.HeaderURI, b.HeaderURI)
	setIf(&cfg.IgnoreFailures, b.IgnoreFailures)
	setIf(&cfg.DryRun, b.DryRun)
	setIf(&cfg.SkipExistingHeaders, b.SkipExistingHeaders)
	setIf(&cfg.UseDefaultMappings, b.UseDefaultMappings)
	setIf(&cfg.StrictCheck, b.StrictCheck)
	setIf(&cfg.Encoding, b.Encoding)

	cfg.Include(b.Include...)
	cfg.Exclude(b.Exclude...)
	for ext, style := range b.Mapping {
		cfg.Map(ext, style)
	}
	for k, v := range b.Properties {
		cfg.InheritedProperties[k] = v
	}
	for k, v := range b.InheritedMappings {
		cfg.InheritedMappings[k] = v
	}

	for _, d := range b.HeaderDefinitions {
		err := cfg.AddHeaderDefinition(config.HeaderDefinition{
			Type:                      d.Type,
			FirstLine:                 d.FirstLine,
			BeforeEachLine:            d.BeforeEachLine,
			EndLine:                   d.EndLine,
			AfterEachLine:             d.AfterEachLine,
			SkipLinePattern:           d.SkipLinePattern,
			FirstLineDetectionPattern: d.FirstLineDetectionPattern,
			LastLineDetectionPattern:  d.LastLineDetectionPattern,
			AllowBlankLines:           d.AllowBlankLines,
			MultiLine:                 d.MultiLine,
			PadLines:                  d.PadLines,
		})
		if err != nil {
			return err
		}
	}

	if b.SourceSets != nil {
		if missing := cfg.SourceSets.Retain(*b.SourceSets); len(missing) > 0 {
			return &build.ConfigurationError{
				Subject: "license.source_sets",
				Reason:  fmt.Sprintf("unknown source sets: %s", strings.Join(missing, ", ")),
			}
		}
	}
	return nil
}

func applyReport(p *build.Project, cfg *config.Report, b *ReportBlock) error {
	setIf(&cfg.ReportByDependency, b.ReportByDependency)
	setIf(&cfg.ReportByLicenseType, b.ReportByLicenseType)
	setIf(&cfg.IncludeProjectDependencies, b.IncludeProjectDependencies)
	setIf(&cfg.IgnoreFatalParseErrors, b.IgnoreFatalParseErrors)
	setIf(&cfg.ReportByDependencyFileName, b.ReportByDependencyFileName)
	setIf(&cfg.ReportByLicenseFileName, b.ReportByLicenseFileName)
	setIf(&cfg.DependencyConfiguration, b.DependencyConfiguration)

	cfg.ExcludeDependencies = append(cfg.ExcludeDependencies, b.ExcludeDependencies...)
	for dep, license := range b.Licenses {
		cfg.Licenses[dep] = license
	}
	for canonical, aliases := range b.Aliases {
		cfg.Aliases[canonical] = append(cfg.Aliases[canonical], aliases...)
	}

	for _, f := range b.Formats {
		format, ok := cfg.Formats.Format(f.Name)
		if !ok {
			return &build.ConfigurationError{Subject: "license_report", Reason: fmt.Sprintf("unknown report format %q", f.Name)}
		}
		setIf(&format.Enabled, f.Enabled)
		if f.Destination != nil {
			format.Destination = p.File(*f.Destination)
		}
	}
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
