package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/licensegrid/internal/build"
	"github.com/specialistvlad/licensegrid/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestRun_LoadError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	invalidHCL := `
		license {
			header = "HEADER"
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "build.hcl"), []byte(invalidHCL), 0o600))
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, logs, []string{"-project-dir", tempDir})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load build description")
	require.Contains(t, err.Error(), "failed to parse HCL file")
}

func TestRun_ConfigurationError(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	description := `task "license" { type = "license" }`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "build.hcl"), []byte(description), 0o600))

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-project-dir", tempDir})
	require.Error(t, err)
	require.True(t, errors.Is(err, build.ErrConfiguration))
}

func TestRun_ListTasks(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "build.hcl"), []byte(`plugins = ["java"]`), 0o600))
	out := &bytes.Buffer{}

	require.NoError(t, run(context.Background(), out, &bytes.Buffer{}, []string{"-project-dir", tempDir, "-list"}))
	require.Contains(t, out.String(), "licenseMain")
	require.Contains(t, out.String(), "downloadLicenses")
}

func TestRun_DefaultTask(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "build.hcl"), []byte(`plugins = ["java"]`), 0o600))
	logs := &bytes.Buffer{}

	require.NoError(t, run(context.Background(), &bytes.Buffer{}, logs, []string{"-project-dir", tempDir}))
	require.Contains(t, logs.String(), "task=licenseMain")
	require.Contains(t, logs.String(), "Planned header processing.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
