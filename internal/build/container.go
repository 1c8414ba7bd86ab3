package build

import (
	"fmt"
	"sort"
)

// Factory constructs a fully configured task of one kind.
type Factory func(name string) (Task, error)

// TaskContainer holds the project's tasks by name and the factory for every
// known kind.
type TaskContainer struct {
	tasks     map[string]Task
	order     []string
	factories map[Kind]Factory
}

// NewTaskContainer returns a container that already knows KindLifecycle.
func NewTaskContainer() *TaskContainer {
	c := &TaskContainer{
		tasks:     make(map[string]Task),
		factories: make(map[Kind]Factory),
	}
	c.factories[KindLifecycle] = func(name string) (Task, error) {
		return NewLifecycleTask(name), nil
	}
	return c
}

// RegisterKind installs the factory for kind. Each kind may be registered once.
func (c *TaskContainer) RegisterKind(kind Kind, factory Factory) error {
	if factory == nil {
		return configErrorf(string(kind), "factory is required")
	}
	if _, exists := c.factories[kind]; exists {
		return configErrorf(string(kind), "task kind already registered")
	}
	c.factories[kind] = factory
	return nil
}

// Create builds a task through the kind's factory and adds it under name.
func (c *TaskContainer) Create(name string, kind Kind) (Task, error) {
	if name == "" {
		return nil, configErrorf(string(kind), "task name is required")
	}
	if existing, exists := c.tasks[name]; exists {
		return nil, configErrorf(name, "task name collides with existing %s task", existing.Kind())
	}
	factory, ok := c.factories[kind]
	if !ok {
		return nil, configErrorf(name, "unknown task kind %q", kind)
	}
	task, err := factory(name)
	if err != nil {
		return nil, fmt.Errorf("failed to create task %s: %w", name, err)
	}
	if task.Name() != name || task.Kind() != kind {
		return nil, configErrorf(name, "factory for %q returned %s task %q", kind, task.Kind(), task.Name())
	}
	c.tasks[name] = task
	c.order = append(c.order, name)
	return task, nil
}

// Get returns the named task.
func (c *TaskContainer) Get(name string) (Task, bool) {
	t, ok := c.tasks[name]
	return t, ok
}

// All returns tasks in creation order.
func (c *TaskContainer) All() []Task {
	out := make([]Task, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.tasks[name])
	}
	return out
}

// Names returns the sorted task names.
func (c *TaskContainer) Names() []string {
	names := append([]string(nil), c.order...)
	sort.Strings(names)
	return names
}
