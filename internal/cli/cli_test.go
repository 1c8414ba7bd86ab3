package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, exit, err := Parse(nil, &bytes.Buffer{})
		require.NoError(t, err)
		assert.False(t, exit)
		assert.Equal(t, ".", cfg.ProjectDir)
		assert.Equal(t, ".", cfg.BuildFile)
		assert.Equal(t, []string{"check"}, cfg.Tasks)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.Output)
	})

	t.Run("all options", func(t *testing.T) {
		args := []string{
			"-project-dir", "proj", "-f", "proj/build.hcl",
			"-log-format", "JSON", "-log-level", "debug",
			"-list", "-output", "yaml", "-dump-config",
			"licenseFormat", "downloadLicenses",
		}
		cfg, exit, err := Parse(args, &bytes.Buffer{})
		require.NoError(t, err)
		assert.False(t, exit)
		assert.Equal(t, "proj", cfg.ProjectDir)
		assert.Equal(t, "proj/build.hcl", cfg.BuildFile)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.True(t, cfg.List)
		assert.True(t, cfg.DumpConfig)
		assert.Equal(t, "yaml", cfg.Output)
		assert.Equal(t, []string{"licenseFormat", "downloadLicenses"}, cfg.Tasks)
	})

	t.Run("long file flag wins", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-file", "a.hcl", "-f", "b.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "a.hcl", cfg.BuildFile)
	})

	t.Run("help", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, exit, err := Parse([]string{"-h"}, out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"-nope"}, "flag provided but not defined: -nope"},
		{"log format", []string{"-log-format", "xml"}, "invalid log-format"},
		{"log level", []string{"-log-level", "trace"}, "invalid log-level"},
		{"output", []string{"-output", "json"}, `invalid output "json"`},
		{"empty project dir", []string{"-project-dir", ""}, "ProjectDir is a required"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, exit, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.False(t, exit)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}
