package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/specialistvlad/licensegrid/internal/build"
	"github.com/specialistvlad/licensegrid/internal/ctxlog"
	"github.com/specialistvlad/licensegrid/internal/facility"
	"github.com/specialistvlad/licensegrid/internal/plugin"
)

// Loader applies a build description to a project during the declare phase.
type Loader interface {
	Load(ctx context.Context, p *build.Project, paths ...string) error
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	project *build.Project
	plugin  *plugin.Plugin
}

// NewApp configures a project from the build description and closes its
// declare phase. Results go to outW, logs to logW. opts customises the
// plugin's collaborators.
func NewApp(ctx context.Context, outW, logW io.Writer, cfg *Config, loader Loader, opts plugin.Options) (*App, error) {
	logger := newLogger(cfg, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	dir, err := filepath.Abs(cfg.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project directory: %w", err)
	}
	project := build.NewProject(filepath.Base(dir), dir)
	if err := facility.RegisterBuiltin(project); err != nil {
		return nil, err
	}
	logger.Debug("Built-in facilities registered.", "facilities", project.Facilities.Known())

	pl, err := plugin.Apply(ctx, project, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to apply license plugin: %w", err)
	}

	if err := loader.Load(ctx, project, cfg.BuildFile); err != nil {
		return nil, fmt.Errorf("failed to load build description: %w", err)
	}
	logger.Debug("Build description applied.", "active_facilities", project.Facilities.Active())

	if err := project.Finalize(ctx); err != nil {
		return nil, err
	}

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		project: project,
		plugin:  pl,
	}, nil
}

// Project returns the configured project. This is primarily for testing.
func (a *App) Project() *build.Project {
	return a.project
}
