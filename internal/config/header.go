package config

import (
	"fmt"
	"strings"
)

// HeaderDefinition describes the comment syntax used to write a license
// header into one family of file types.
type HeaderDefinition struct {
	Type                      string
	FirstLine                 string
	BeforeEachLine            string
	EndLine                   string
	AfterEachLine             string
	SkipLinePattern           string
	FirstLineDetectionPattern string
	LastLineDetectionPattern  string
	AllowBlankLines           bool
	MultiLine                 bool
	PadLines                  bool
}

// Validate reports every missing mandatory field at once.
func (d HeaderDefinition) Validate() error {
	var errs []string
	if d.Type == "" {
		errs = append(errs, "type is required")
	}
	if d.FirstLine == "" {
		errs = append(errs, "first line is required")
	}
	if d.EndLine == "" {
		errs = append(errs, "end line is required")
	}
	if d.FirstLineDetectionPattern == "" {
		errs = append(errs, "first line detection pattern is required")
	}
	if d.LastLineDetectionPattern == "" {
		errs = append(errs, "last line detection pattern is required")
	}
	if len(errs) > 0 {
		return fmt.Errorf("header definition %q is invalid:\n- %s", d.Type, strings.Join(errs, "\n- "))
	}
	return nil
}
