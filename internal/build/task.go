package build

import (
	"context"
	"sort"
)

// Kind identifies a task type. Each kind has exactly one factory.
type Kind string

// KindLifecycle is the built-in kind for aggregate tasks without actions.
const KindLifecycle Kind = "lifecycle"

// Task is the handle the host hands out for every created task.
type Task interface {
	Name() string
	Kind() Kind
	Group() string
	SetGroup(group string)
	Description() string
	SetDescription(description string)
	// DependsOn adds task names this task depends on.
	DependsOn(names ...string)
	// Dependencies returns the sorted dependency names.
	Dependencies() []string
	Execute(ctx context.Context) error
}

// BaseTask implements the bookkeeping part of Task. Concrete tasks embed it
// and provide Execute.
type BaseTask struct {
	name        string
	kind        Kind
	group       string
	description string
	deps        map[string]struct{}
}

// NewBaseTask returns the embeddable part of a task.
func NewBaseTask(name string, kind Kind) BaseTask {
	return BaseTask{name: name, kind: kind, deps: make(map[string]struct{})}
}

func (t *BaseTask) Name() string { return t.name }

func (t *BaseTask) Kind() Kind { return t.kind }

func (t *BaseTask) Group() string { return t.group }

func (t *BaseTask) SetGroup(group string) { t.group = group }

func (t *BaseTask) Description() string { return t.description }

func (t *BaseTask) SetDescription(description string) { t.description = description }

func (t *BaseTask) DependsOn(names ...string) {
	for _, n := range names {
		t.deps[n] = struct{}{}
	}
}

func (t *BaseTask) Dependencies() []string {
	deps := make([]string, 0, len(t.deps))
	for n := range t.deps {
		deps = append(deps, n)
	}
	sort.Strings(deps)
	return deps
}

// LifecycleTask groups other tasks; executing it does nothing.
type LifecycleTask struct {
	BaseTask
}

// NewLifecycleTask creates an aggregate task.
func NewLifecycleTask(name string) *LifecycleTask {
	return &LifecycleTask{BaseTask: NewBaseTask(name, KindLifecycle)}
}

// Execute implements Task.
func (t *LifecycleTask) Execute(context.Context) error { return nil }
