package tasks

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/licensegrid/internal/config"
	"github.com/specialistvlad/licensegrid/internal/ctxlog"
	"golang.org/x/text/encoding"
)

var (
	// ErrComplianceViolation marks a missing or mismatched header.
	ErrComplianceViolation = errors.New("license header violation")
	// ErrReportGeneration marks unusable dependency license metadata.
	ErrReportGeneration = errors.New("license report generation failed")
)

// HeaderRequest is everything a HeaderTask resolved at execution time.
type HeaderRequest struct {
	Task  string
	Check bool

	Header     string
	HeaderFile string
	HeaderURI  string

	IgnoreFailures      bool
	DryRun              bool
	SkipExistingHeaders bool
	UseDefaultMappings  bool
	StrictCheck         bool

	EncodingName string
	Encoding     encoding.Encoding

	Files []string

	Mapping             map[string]string
	InheritedProperties map[string]string
	InheritedMappings   map[string]string
	HeaderDefinitions   map[string]config.HeaderDefinition
}

// HeaderResult lists what a processor found or changed.
type HeaderResult struct {
	Missing []string
	Updated []string
}

// HeaderProcessor checks or inserts headers.
type HeaderProcessor interface {
	Process(ctx context.Context, req HeaderRequest) (HeaderResult, error)
}

// Violation builds the error a processor returns for files with missing or
// mismatched headers. With IgnoreFailures set the caller should only warn.
func Violation(req HeaderRequest, files []string) error {
	if len(files) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s: %d file(s):\n- %s", ErrComplianceViolation, req.Task, len(files), strings.Join(files, "\n- "))
}

// ReportOutput is one enabled report format.
type ReportOutput struct {
	Format      string
	Destination string
}

// ReportRequest is everything a ReportTask resolved at execution time.
type ReportRequest struct {
	Task string

	ReportByDependency         bool
	ReportByLicenseType        bool
	IncludeProjectDependencies bool
	IgnoreFatalParseErrors     bool

	ReportByDependencyFileName string
	ReportByLicenseFileName    string

	ExcludeDependencies []string
	Licenses            map[string]string
	Aliases             map[string][]string

	Outputs []ReportOutput

	DependencyConfiguration string
}

// Files returns the report files the request asks for, in a stable order.
func (r ReportRequest) Files() []string {
	var files []string
	for _, out := range r.Outputs {
		if r.ReportByDependency {
			files = append(files, filepath.Join(out.Destination, r.ReportByDependencyFileName+"."+out.Format))
		}
		if r.ReportByLicenseType {
			files = append(files, filepath.Join(out.Destination, r.ReportByLicenseFileName+"."+out.Format))
		}
	}
	return files
}

// ReportGenerator scans dependencies and writes reports.
type ReportGenerator interface {
	Generate(ctx context.Context, req ReportRequest) error
}

// PlanningProcessor logs what a header task would process without touching
// any file. It is the default processor.
type PlanningProcessor struct{}

// Process implements HeaderProcessor.
func (PlanningProcessor) Process(ctx context.Context, req HeaderRequest) (HeaderResult, error) {
	logger := ctxlog.FromContext(ctx)
	mode := "format"
	if req.Check {
		mode = "check"
	}
	logger.Info("Planned header processing.",
		"mode", mode,
		"files", len(req.Files),
		"header", req.HeaderFile,
		"encoding", req.EncodingName,
		"strict", req.StrictCheck,
		"dry_run", req.DryRun,
	)
	for _, f := range req.Files {
		logger.Debug("Header input.", "file", f)
	}
	return HeaderResult{}, nil
}

// PlanningGenerator logs the reports a report task would write. It is the
// default generator.
type PlanningGenerator struct{}

// Generate implements ReportGenerator.
func (PlanningGenerator) Generate(ctx context.Context, req ReportRequest) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Planned license report.",
		"configuration", req.DependencyConfiguration,
		"excluded", len(req.ExcludeDependencies),
		"overrides", len(req.Licenses),
		"files", req.Files(),
	)
	for dep, license := range req.Licenses {
		logger.Debug("License override.", "dependency", dep, "license", config.NormalizeLicense(req.Aliases, license))
	}
	return nil
}
