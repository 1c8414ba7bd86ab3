package build

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	p := NewProject("demo", "/work/demo")
	check, ok := p.Tasks.Get(VerificationTask)
	require.True(t, ok)
	assert.Equal(t, "verification", check.Group())
	assert.Equal(t, PhaseDeclare, p.Phase())
	assert.Equal(t, filepath.Join("/work/demo", "build", "reports"), p.ReportsDir())
	assert.Equal(t, filepath.Join("/work/demo", "LICENSE"), p.File("LICENSE"))
	assert.Equal(t, "/abs/HEADER", p.File("/abs/HEADER"))
}

func TestProjectFinalize(t *testing.T) {
	t.Run("runs queued actions once in order", func(t *testing.T) {
		ctx, _ := testContext(t)
		p := NewProject("demo", t.TempDir())
		var order []string
		require.NoError(t, p.AfterEvaluate(func(context.Context) error {
			order = append(order, "first")
			return p.AfterEvaluate(func(context.Context) error {
				order = append(order, "nested")
				return nil
			})
		}))
		require.NoError(t, p.AfterEvaluate(func(context.Context) error {
			order = append(order, "second")
			return nil
		}))

		require.NoError(t, p.Finalize(ctx))
		assert.Equal(t, []string{"first", "second", "nested"}, order)
		assert.Equal(t, PhaseFinalized, p.Phase())
		assert.Equal(t, "finalized", p.Phase().String())
	})

	t.Run("second finalize and late registration fail", func(t *testing.T) {
		ctx, _ := testContext(t)
		p := NewProject("demo", t.TempDir())
		require.NoError(t, p.Finalize(ctx))
		assert.True(t, isConfigError(p.Finalize(ctx)))
		assert.True(t, isConfigError(p.AfterEvaluate(func(context.Context) error { return nil })))
	})

	t.Run("action errors abort finalize", func(t *testing.T) {
		ctx, _ := testContext(t)
		p := NewProject("demo", t.TempDir())
		require.NoError(t, p.AfterEvaluate(func(context.Context) error { return errors.New("boom") }))
		err := p.Finalize(ctx)
		assert.ErrorContains(t, err, "finalize demo: boom")
		assert.Equal(t, PhaseFailed, p.Phase())
	})

	t.Run("a failed finalize is not retried", func(t *testing.T) {
		ctx, _ := testContext(t)
		p := NewProject("demo", t.TempDir())
		runs := 0
		require.NoError(t, p.AfterEvaluate(func(context.Context) error {
			runs++
			return nil
		}))
		require.NoError(t, p.AfterEvaluate(func(context.Context) error { return errors.New("boom") }))

		require.Error(t, p.Finalize(ctx))
		err := p.Finalize(ctx)
		assert.True(t, isConfigError(err))
		assert.ErrorContains(t, err, "project already failed")
		assert.Equal(t, 1, runs)
		assert.True(t, isConfigError(p.AfterEvaluate(func(context.Context) error { return nil })))
		assert.True(t, isConfigError(Run(ctx, p, VerificationTask)))
	})
}

func TestExtensionContainer(t *testing.T) {
	c := NewExtensionContainer()
	require.NoError(t, c.Add("license", &struct{ Header string }{"LICENSE"}))
	assert.True(t, isConfigError(c.Add("license", 1)))

	ext, ok := FindExtension[*struct{ Header string }](c, "license")
	require.True(t, ok)
	assert.Equal(t, "LICENSE", ext.Header)

	_, ok = FindExtension[string](c, "license")
	assert.False(t, ok)
	assert.Equal(t, []string{"license"}, c.Names())
}
