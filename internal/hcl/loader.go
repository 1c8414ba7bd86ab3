package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/licensegrid/internal/build"
	"github.com/specialistvlad/licensegrid/internal/ctxlog"
	"github.com/specialistvlad/licensegrid/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Loader reads HCL build descriptions.
type Loader struct{}

// NewLoader creates a new HCL build description loader.
func NewLoader() *Loader {
	return &Loader{}
}

// projectVars is exposed to expressions as the "project" object.
type projectVars struct {
	Name     string `cty:"name"`
	Dir      string `cty:"dir"`
	BuildDir string `cty:"build_dir"`
}

// description is the merged content of every loaded file.
type description struct {
	files int
	root  fileRoot
}

// Load parses every .hcl file under paths and applies the result to p.
// Missing paths are skipped. It must run during the declare phase.
func (l *Loader) Load(ctx context.Context, p *build.Project, paths ...string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	evalCtx, err := l.evalContext(p)
	if err != nil {
		return err
	}

	desc, err := l.parse(ctx, evalCtx, paths)
	if err != nil {
		return err
	}
	logger.Debug("Discovered HCL files.", "count", desc.files)

	if err := l.apply(ctx, p, evalCtx, &desc.root); err != nil {
		return err
	}

	logger.Debug("HCL loading complete.",
		"plugins", len(desc.root.Plugins),
		"source_sets", len(desc.root.SourceSets),
		"tasks", len(desc.root.Tasks),
		"configures", len(desc.root.Configures),
	)
	return nil
}

func (l *Loader) evalContext(p *build.Project) (*hcl.EvalContext, error) {
	vars := projectVars{Name: p.Name, Dir: p.Dir, BuildDir: p.BuildDir()}
	ty, err := gocty.ImpliedType(vars)
	if err != nil {
		return nil, fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	val, err := gocty.ToCtyValue(vars, ty)
	if err != nil {
		return nil, err
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"project": val},
	}, nil
}

func (l *Loader) parse(ctx context.Context, evalCtx *hcl.EvalContext, paths []string) (*description, error) {
	logger := ctxlog.FromContext(ctx)
	desc := &description{}
	parser := hclparse.NewParser()
	seen := make(map[string]struct{})

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				logger.Debug("Build description path does not exist, skipping.", "path", path)
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}

		for _, file := range files {
			if _, ok := seen[file]; ok {
				continue
			}
			seen[file] = struct{}{}

			hclFile, diags := parser.ParseHCLFile(file)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
			}

			var root fileRoot
			diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
			}
			desc.merge(&root)
			desc.files++
		}
	}
	return desc, nil
}

func (d *description) merge(r *fileRoot) {
	d.root.Plugins = append(d.root.Plugins, r.Plugins...)
	d.root.SourceSets = append(d.root.SourceSets, r.SourceSets...)
	d.root.License = append(d.root.License, r.License...)
	d.root.Reports = append(d.root.Reports, r.Reports...)
	d.root.Tasks = append(d.root.Tasks, r.Tasks...)
	d.root.Configures = append(d.root.Configures, r.Configures...)
}
