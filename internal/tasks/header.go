package tasks

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"

	"github.com/specialistvlad/licensegrid/internal/build"
	"github.com/specialistvlad/licensegrid/internal/config"
	"github.com/specialistvlad/licensegrid/internal/convention"
	"github.com/specialistvlad/licensegrid/internal/ctxlog"
	"golang.org/x/text/encoding/ianaindex"
)

// KindHeader is the task kind of check and format tasks.
const KindHeader build.Kind = "license"

// Source enumerates a task's input files at execution time.
type Source func(filter build.Filter) ([]string, error)

// HeaderTask checks or formats the license headers of a file collection.
type HeaderTask struct {
	build.BaseTask

	// Check selects pure verification. A format task also inserts missing
	// headers unless DryRun is set.
	Check bool

	Header              *convention.Property[string]
	HeaderURI           *convention.Property[string]
	IgnoreFailures      *convention.Property[bool]
	DryRun              *convention.Property[bool]
	SkipExistingHeaders *convention.Property[bool]
	UseDefaultMappings  *convention.Property[bool]
	StrictCheck         *convention.Property[bool]
	Encoding            *convention.Property[string]
	Includes            *convention.Property[[]string]
	Excludes            *convention.Property[[]string]
	Mapping             *convention.Property[map[string]string]
	InheritedProperties *convention.Property[map[string]string]
	InheritedMappings   *convention.Property[map[string]string]
	HeaderDefinitions   *convention.Property[map[string]config.HeaderDefinition]

	props     *convention.Set
	baseDir   string
	source    Source
	processor HeaderProcessor
}

// NewHeaderTask creates an unbound header task. baseDir resolves a relative
// header path; a nil processor means PlanningProcessor.
func NewHeaderTask(name, baseDir string, processor HeaderProcessor) *HeaderTask {
	if processor == nil {
		processor = PlanningProcessor{}
	}
	s := convention.NewSet(name)
	return &HeaderTask{
		BaseTask:            build.NewBaseTask(name, KindHeader),
		Header:              convention.Register[string](s, "header"),
		HeaderURI:           convention.Register[string](s, "headerURI"),
		IgnoreFailures:      convention.Register[bool](s, "ignoreFailures"),
		DryRun:              convention.Register[bool](s, "dryRun"),
		SkipExistingHeaders: convention.Register[bool](s, "skipExistingHeaders"),
		UseDefaultMappings:  convention.Register[bool](s, "useDefaultMappings"),
		StrictCheck:         convention.Register[bool](s, "strictCheck"),
		Encoding:            convention.Register[string](s, "encoding"),
		Includes:            convention.Register[[]string](s, "includes").WithCopy(slices.Clone[[]string]),
		Excludes:            convention.Register[[]string](s, "excludes").WithCopy(slices.Clone[[]string]),
		Mapping:             convention.Register[map[string]string](s, "mapping").WithCopy(maps.Clone[map[string]string]),
		InheritedProperties: convention.Register[map[string]string](s, "inheritedProperties").WithCopy(maps.Clone[map[string]string]),
		InheritedMappings:   convention.Register[map[string]string](s, "inheritedMappings").WithCopy(maps.Clone[map[string]string]),
		HeaderDefinitions:   convention.Register[map[string]config.HeaderDefinition](s, "headerDefinitions").WithCopy(maps.Clone[map[string]config.HeaderDefinition]),
		props:               s,
		baseDir:             baseDir,
		processor:           processor,
	}
}

// Properties exposes the task's convention properties by name.
func (t *HeaderTask) Properties() *convention.Set { return t.props }

// SetSource sets the input file collection.
func (t *HeaderTask) SetSource(src Source) { t.source = src }

// Files enumerates the inputs with the currently resolved include and
// exclude patterns. A task without a source has no inputs.
func (t *HeaderTask) Files() ([]string, error) {
	if t.source == nil {
		return nil, nil
	}
	return t.source(build.Filter{Includes: t.Includes.Get(), Excludes: t.Excludes.Get()})
}

// Request resolves every property now.
func (t *HeaderTask) Request() (HeaderRequest, error) {
	name := t.Encoding.Get()
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return HeaderRequest{}, fmt.Errorf("unsupported encoding %q", name)
	}

	files, err := t.Files()
	if err != nil {
		return HeaderRequest{}, fmt.Errorf("failed to enumerate inputs of %s: %w", t.Name(), err)
	}

	header := t.Header.Get()
	headerFile := header
	if header != "" && !filepath.IsAbs(header) {
		headerFile = filepath.Join(t.baseDir, header)
	}

	return HeaderRequest{
		Task:                t.Name(),
		Check:               t.Check,
		Header:              header,
		HeaderFile:          headerFile,
		HeaderURI:           t.HeaderURI.Get(),
		IgnoreFailures:      t.IgnoreFailures.Get(),
		DryRun:              t.DryRun.Get(),
		SkipExistingHeaders: t.SkipExistingHeaders.Get(),
		UseDefaultMappings:  t.UseDefaultMappings.Get(),
		StrictCheck:         t.StrictCheck.Get(),
		EncodingName:        name,
		Encoding:            enc,
		Files:               files,
		Mapping:             t.Mapping.Get(),
		InheritedProperties: t.InheritedProperties.Get(),
		InheritedMappings:   t.InheritedMappings.Get(),
		HeaderDefinitions:   t.HeaderDefinitions.Get(),
	}, nil
}

// Execute resolves the request and hands it to the processor. Files the
// processor reports as still missing a header fail the task unless
// ignoreFailures is set.
func (t *HeaderTask) Execute(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	req, err := t.Request()
	if err != nil {
		return err
	}

	res, err := t.processor.Process(ctx, req)
	if err == nil {
		err = Violation(req, res.Missing)
	}
	if err != nil {
		if req.IgnoreFailures && errors.Is(err, ErrComplianceViolation) {
			logger.Warn("License header violations ignored.", "error", err)
			return nil
		}
		return err
	}
	if len(res.Updated) > 0 {
		logger.Info("Headers updated.", "files", len(res.Updated))
	}
	return nil
}
