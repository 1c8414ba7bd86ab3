package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/licensegrid/internal/build"
)

// Output formats of the task listing.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProjectDir string
	BuildFile  string // .hcl file or directory; defaults to ProjectDir

	Tasks []string // defaults to the verification task

	LogFormat string
	LogLevel  string

	List       bool
	Output     string
	DumpConfig bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectDir == "" {
		return nil, errors.New("ProjectDir is a required configuration field and cannot be empty")
	}
	if cfg.BuildFile == "" {
		cfg.BuildFile = cfg.ProjectDir
	}
	if len(cfg.Tasks) == 0 {
		cfg.Tasks = []string{build.VerificationTask}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.LogFormat == "" {
		cfg.LogFormat = LogFormatText
	}
	format, err := ParseLogFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	cfg.LogFormat = format

	switch cfg.Output {
	case "":
		cfg.Output = OutputText
	case OutputText, OutputYAML:
	default:
		return nil, fmt.Errorf("invalid output %q: must be %q or %q", cfg.Output, OutputText, OutputYAML)
	}
	return &cfg, nil
}
