package build

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/licensegrid/internal/ctxlog"
	"github.com/specialistvlad/licensegrid/internal/dag"
)

// Plan returns the requested tasks and all their transitive dependencies in
// execution order.
func Plan(p *Project, names ...string) ([]Task, error) {
	g, order, err := planGraph(p, names...)
	if err != nil {
		return nil, err
	}
	tasks := make([]Task, 0, g.Len())
	for _, name := range order {
		t, _ := p.Tasks.Get(name)
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// planGraph builds the dependency graph of the requested tasks and orders it.
func planGraph(p *Project, names ...string) (*dag.Graph, []string, error) {
	g := dag.New()
	visited := make(map[string]bool)

	var visit func(name, requiredBy string) error
	visit = func(name, requiredBy string) error {
		if visited[name] {
			return nil
		}
		task, ok := p.Tasks.Get(name)
		if !ok {
			if requiredBy == "" {
				return fmt.Errorf("task %q not found in project %s", name, p.Name)
			}
			return fmt.Errorf("task %q required by %s not found in project %s", name, requiredBy, p.Name)
		}
		visited[name] = true
		g.AddNode(name)
		for _, dep := range task.Dependencies() {
			if err := visit(dep, name); err != nil {
				return err
			}
			if err := g.AddEdge(dep, name); err != nil {
				return err
			}
		}
		return nil
	}

	for _, name := range names {
		if err := visit(name, ""); err != nil {
			return nil, nil, err
		}
	}

	order, err := g.TopologicalOrder()
	if err != nil {
		return nil, nil, fmt.Errorf("error validating task graph: %w", err)
	}
	return g, order, nil
}

// Run executes the requested tasks of a finalized project sequentially,
// stopping at the first failure.
func Run(ctx context.Context, p *Project, names ...string) error {
	logger := ctxlog.FromContext(ctx)
	if p.Phase() != PhaseFinalized {
		return configErrorf(p.Name, "tasks cannot run before the project is finalized")
	}

	g, order, err := planGraph(p, names...)
	if err != nil {
		return err
	}
	logger.Debug("Execution plan ready.", "requested", names, "tasks", g.Len())

	for _, name := range order {
		task, _ := p.Tasks.Get(name)
		if after, _ := g.Dependencies(name); len(after) > 0 {
			logger.Debug("Task dependencies done.", "task", name, "after", after)
		}

		start := time.Now()
		logger.Info("▶️ Task started.", "task", name)
		if err := task.Execute(ctxlog.With(ctx, "task", name)); err != nil {
			logger.Error("Task failed.", "task", name, "error", err)
			if blocked, _ := g.Dependents(name); len(blocked) > 0 {
				logger.Warn("Dependent tasks will not run.", "task", name, "blocked", blocked)
			}
			return fmt.Errorf("task %s failed: %w", name, err)
		}
		logger.Info("✅ Task finished.", "task", name, "duration", time.Since(start))
	}
	return nil
}
