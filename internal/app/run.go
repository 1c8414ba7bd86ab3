package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/licensegrid/internal/build"
	"github.com/specialistvlad/licensegrid/internal/config"
	"github.com/specialistvlad/licensegrid/internal/convention"
	"github.com/specialistvlad/licensegrid/internal/ctxlog"
	"github.com/specialistvlad/licensegrid/internal/render"
)

// Run executes the requested tasks unless a listing or a configuration dump
// was asked for.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	switch {
	case a.config.List:
		return a.list()
	case a.config.DumpConfig:
		a.dump()
		return nil
	}

	a.logger.Info("🚀 Running tasks...", "tasks", a.config.Tasks)
	if err := build.Run(ctx, a.project, a.config.Tasks...); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("🏁 Execution finished.")
	return nil
}

func (a *App) list() error {
	views := render.Views(a.project)
	if a.config.Output == OutputYAML {
		return render.YAML(a.outW, views)
	}
	return render.Text(a.outW, views)
}

// taskDump shows which resolved values were set on the task itself.
type taskDump struct {
	Explicit []string
	Resolved map[string]any
}

// complianceDump replaces the live source set container with member IDs.
type complianceDump struct {
	config.Compliance
	TrackedSourceSets []string
}

func (a *App) dump() {
	c := a.plugin.Compliance().Snapshot()
	var tracked []string
	for _, s := range c.SourceSets.Snapshot() {
		tracked = append(tracked, s.ID())
	}
	c.SourceSets = nil

	render.Dump(a.outW, "license", complianceDump{Compliance: c, TrackedSourceSets: tracked})
	render.Dump(a.outW, "downloadLicenses", *a.plugin.Report())

	for _, t := range a.project.Tasks.All() {
		configurable, ok := t.(interface{ Properties() *convention.Set })
		if !ok {
			continue
		}
		props := configurable.Properties()
		render.Dump(a.outW, "task "+t.Name(), taskDump{Explicit: props.Explicit(), Resolved: props.Resolve()})
	}
}
