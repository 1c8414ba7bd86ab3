package build

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/licensegrid/internal/ctxlog"
)

// VerificationTask is the host's standard verification lifecycle task.
const VerificationTask = "check"

// Phase is the configuration phase of a project.
type Phase int

const (
	PhaseDeclare Phase = iota
	PhaseFinalized
	// PhaseFailed is terminal: a finalize action failed and the task graph
	// is incomplete.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseFinalized:
		return "finalized"
	case PhaseFailed:
		return "failed"
	}
	return "declare"
}

// Project is the build model of one project directory.
type Project struct {
	Name string
	Dir  string

	Tasks      *TaskContainer
	Facilities *FacilityManager
	Extensions *ExtensionContainer

	phase      Phase
	finalizers []func(context.Context) error
}

// NewProject creates a project in the declare phase with the standard
// verification task already present.
func NewProject(name, dir string) *Project {
	p := &Project{
		Name:       name,
		Dir:        dir,
		Tasks:      NewTaskContainer(),
		Facilities: NewFacilityManager(),
		Extensions: NewExtensionContainer(),
	}
	check, _ := p.Tasks.Create(VerificationTask, KindLifecycle)
	check.SetGroup("verification")
	check.SetDescription("Runs all checks.")
	return p
}

// BuildDir is where generated outputs go.
func (p *Project) BuildDir() string { return filepath.Join(p.Dir, "build") }

// ReportsDir is the root directory for reports.
func (p *Project) ReportsDir() string { return filepath.Join(p.BuildDir(), "reports") }

// File resolves path against the project directory.
func (p *Project) File(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Dir, path)
}

// Phase returns the current configuration phase.
func (p *Project) Phase() Phase { return p.phase }

// AfterEvaluate queues fn to run at the finalize barrier.
func (p *Project) AfterEvaluate(fn func(context.Context) error) error {
	if p.phase != PhaseDeclare {
		return configErrorf(p.Name, "cannot register finalize action: project already %s", p.phase)
	}
	p.finalizers = append(p.finalizers, fn)
	return nil
}

// Finalize closes the declare phase and runs every queued action once, in
// order. Actions queued by other actions run in the same pass. The first
// failing action leaves the project in PhaseFailed; it cannot be finalized
// again.
func (p *Project) Finalize(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	if p.phase != PhaseDeclare {
		return configErrorf(p.Name, "project already %s", p.phase)
	}
	logger.Debug("Finalize barrier reached.", "project", p.Name, "actions", len(p.finalizers))

	for i := 0; i < len(p.finalizers); i++ {
		if err := p.finalizers[i](ctx); err != nil {
			p.finalizers = nil
			p.phase = PhaseFailed
			return fmt.Errorf("finalize %s: %w", p.Name, err)
		}
	}
	p.finalizers = nil
	p.phase = PhaseFinalized

	logger.Debug("Project finalized.", "project", p.Name, "tasks", len(p.Tasks.Names()))
	return nil
}
