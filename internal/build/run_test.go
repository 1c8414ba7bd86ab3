package build

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunProject(t *testing.T, log *[]string, failing string) *Project {
	t.Helper()
	p := NewProject("demo", t.TempDir())
	require.NoError(t, p.Tasks.RegisterKind("rec", func(name string) (Task, error) {
		task := &recordingTask{BaseTask: NewBaseTask(name, "rec"), log: log}
		if name == failing {
			task.err = errors.New("violation")
		}
		return task, nil
	}))
	return p
}

func TestRun(t *testing.T) {
	t.Run("executes dependencies first", func(t *testing.T) {
		ctx, _ := testContext(t)
		var log []string
		p := newRunProject(t, &log, "")
		for _, n := range []string{"licenseTest", "licenseMain"} {
			_, err := p.Tasks.Create(n, "rec")
			require.NoError(t, err)
		}
		agg, err := p.Tasks.Create("license", KindLifecycle)
		require.NoError(t, err)
		agg.DependsOn("licenseMain", "licenseTest")
		check, _ := p.Tasks.Get(VerificationTask)
		check.DependsOn("license")
		require.NoError(t, p.Finalize(ctx))

		require.NoError(t, Run(ctx, p, VerificationTask))
		assert.Equal(t, []string{"licenseMain", "licenseTest"}, log)

		plan, err := Plan(p, VerificationTask)
		require.NoError(t, err)
		var names []string
		for _, task := range plan {
			names = append(names, task.Name())
		}
		assert.Equal(t, []string{"licenseMain", "licenseTest", "license", "check"}, names)
	})

	t.Run("refuses to run before finalize", func(t *testing.T) {
		ctx, _ := testContext(t)
		p := NewProject("demo", t.TempDir())
		assert.True(t, isConfigError(Run(ctx, p, VerificationTask)))
	})

	t.Run("stops at the first failing task", func(t *testing.T) {
		ctx, logs := testContext(t)
		var log []string
		p := newRunProject(t, &log, "a")
		_, err := p.Tasks.Create("a", "rec")
		require.NoError(t, err)
		b, err := p.Tasks.Create("b", "rec")
		require.NoError(t, err)
		b.DependsOn("a")
		require.NoError(t, p.Finalize(ctx))

		err = Run(ctx, p, "b")
		assert.ErrorContains(t, err, "task a failed: violation")
		assert.Equal(t, []string{"a"}, log)
		assert.Contains(t, logs.String(), "Dependent tasks will not run.")
		assert.Contains(t, logs.String(), "blocked=[b]")
	})

	t.Run("unknown tasks are reported", func(t *testing.T) {
		ctx, _ := testContext(t)
		p := NewProject("demo", t.TempDir())
		check, _ := p.Tasks.Get(VerificationTask)
		check.DependsOn("ghost")
		require.NoError(t, p.Finalize(ctx))

		assert.ErrorContains(t, Run(ctx, p, "nope"), `task "nope" not found`)
		assert.ErrorContains(t, Run(ctx, p, VerificationTask), `task "ghost" required by check`)
	})

	t.Run("dependency cycles are rejected", func(t *testing.T) {
		ctx, _ := testContext(t)
		p := NewProject("demo", t.TempDir())
		a, _ := p.Tasks.Create("a", KindLifecycle)
		b, _ := p.Tasks.Create("b", KindLifecycle)
		a.DependsOn("b")
		b.DependsOn("a")
		require.NoError(t, p.Finalize(ctx))
		assert.ErrorContains(t, Run(ctx, p, "a"), "cycle detected")
	})
}
