package plugin

import (
	"context"

	"github.com/specialistvlad/licensegrid/internal/build"
	"github.com/specialistvlad/licensegrid/internal/config"
	"github.com/specialistvlad/licensegrid/internal/ctxlog"
	"github.com/specialistvlad/licensegrid/internal/facility"
	"github.com/specialistvlad/licensegrid/internal/tasks"
)

const (
	// CheckBase is the check-all aggregate and the prefix of check tasks.
	CheckBase = "license"
	// FormatBase is the format-all aggregate and the prefix of format tasks.
	FormatBase = "licenseFormat"
	// ReportTaskName is the dependency license report task.
	ReportTaskName = "downloadLicenses"

	taskGroup = "license"
)

// DefaultFacilities are probed when Options.Facilities is empty.
var DefaultFacilities = []string{
	facility.JavaID,
	facility.AndroidAppID,
	facility.AndroidLibraryID,
}

// Options customises Apply. The zero value is usable.
type Options struct {
	Processor  tasks.HeaderProcessor
	Generator  tasks.ReportGenerator
	Facilities []string
}

// Plugin is the attached state of one project.
type Plugin struct {
	project  *build.Project
	registry *config.Registry
	opts     Options

	checkAll  build.Task
	formatAll build.Task

	verificationWired bool
}

// Apply attaches the plugin to p. It must run during the declare phase.
func Apply(ctx context.Context, p *build.Project, opts Options) (*Plugin, error) {
	logger := ctxlog.FromContext(ctx)
	if len(opts.Facilities) == 0 {
		opts.Facilities = DefaultFacilities
	}

	pl := &Plugin{project: p, registry: config.NewRegistry(p.ReportsDir()), opts: opts}
	if err := pl.registerConfig(); err != nil {
		return nil, err
	}
	logger.Debug("License configuration registered.", "extensions", p.Extensions.Names())

	if err := pl.registerFactories(); err != nil {
		return nil, err
	}
	if err := pl.createBaseTasks(); err != nil {
		return nil, err
	}

	if err := Detect(ctx, p.Facilities, opts.Facilities, pl.onFacility); err != nil {
		return nil, err
	}
	// Queued from inside the barrier so it lands behind every synthesizer
	// registered during the declare phase.
	err := p.AfterEvaluate(func(context.Context) error {
		return p.AfterEvaluate(pl.verifyClaimed)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("License plugin applied.", "project", p.Name)
	return pl, nil
}

// Compliance returns the build's compliance configuration.
func (pl *Plugin) Compliance() *config.Compliance { return pl.registry.Compliance() }

// Report returns the build's report configuration.
func (pl *Plugin) Report() *config.Report { return pl.registry.Report() }

func (pl *Plugin) registerConfig() error {
	for _, kind := range []config.Kind{config.KindCompliance, config.KindReport} {
		ext, err := pl.registry.Register(kind)
		if err != nil {
			return err
		}
		if err := pl.project.Extensions.Add(string(kind), ext); err != nil {
			return err
		}
	}
	return nil
}

// registerFactories funnels every header and report task, whoever creates
// it, through the same binding step.
func (pl *Plugin) registerFactories() error {
	err := pl.project.Tasks.RegisterKind(tasks.KindHeader, func(name string) (build.Task, error) {
		t := tasks.NewHeaderTask(name, pl.project.Dir, pl.opts.Processor)
		t.SetGroup(taskGroup)
		if err := tasks.ConfigureHeaderTask(t, pl.registry.Compliance()); err != nil {
			return nil, err
		}
		return t, nil
	})
	if err != nil {
		return err
	}
	return pl.project.Tasks.RegisterKind(tasks.KindReport, func(name string) (build.Task, error) {
		t := tasks.NewReportTask(name, pl.opts.Generator)
		t.SetGroup("reporting")
		if err := tasks.ConfigureReportTask(t, pl.registry.Report()); err != nil {
			return nil, err
		}
		return t, nil
	})
}

func (pl *Plugin) createBaseTasks() error {
	var err error
	if pl.checkAll, err = pl.project.Tasks.Create(CheckBase, build.KindLifecycle); err != nil {
		return err
	}
	pl.checkAll.SetGroup(taskGroup)
	pl.checkAll.SetDescription("Checks for header consistency.")

	if pl.formatAll, err = pl.project.Tasks.Create(FormatBase, build.KindLifecycle); err != nil {
		return err
	}
	pl.formatAll.SetGroup(taskGroup)
	pl.formatAll.SetDescription("Applies the license found in the header file in files missing the header.")

	report, err := pl.project.Tasks.Create(ReportTaskName, tasks.KindReport)
	if err != nil {
		return err
	}
	report.SetDescription("Generates reports on the licenses of project dependencies.")
	return nil
}

// onFacility is the one-shot reaction to an activated facility: track its
// groups now, synthesize its tasks at the finalize barrier.
func (pl *Plugin) onFacility(ctx context.Context, f build.Facility) error {
	ctxlog.FromContext(ctx).Debug("Facility detected, tracking its source sets.", "facility", f.ID())
	tracked := pl.registry.Compliance().SourceSets
	f.SourceSets().All(tracked.Track)

	return pl.project.AfterEvaluate(func(ctx context.Context) error {
		return pl.synthesize(ctxlog.With(ctx, "facility", f.ID()), f)
	})
}
