package hcl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/licensegrid/internal/build"
	"github.com/specialistvlad/licensegrid/internal/convention"
	"github.com/specialistvlad/licensegrid/internal/tasks"
)

// configurable is a task that exposes convention properties.
type configurable interface {
	Properties() *convention.Set
}

func (l *Loader) createTask(p *build.Project, evalCtx *hcl.EvalContext, b *TaskBlock) error {
	task, err := p.Tasks.Create(b.Name, build.Kind(b.Type))
	if err != nil {
		return err
	}
	if b.Check != nil {
		ht, ok := task.(*tasks.HeaderTask)
		if !ok {
			return &build.ConfigurationError{Subject: b.Name, Reason: fmt.Sprintf("check is not supported by %s tasks", b.Type)}
		}
		ht.Check = *b.Check
	}
	return configureTask(task, evalCtx, b.Description, b.DependsOn, b.Remain)
}

// configureTask applies the common task attributes and turns every other
// attribute of body into an explicit property value.
func configureTask(task build.Task, evalCtx *hcl.EvalContext, description *string, dependsOn []string, body hcl.Body) error {
	if description != nil {
		task.SetDescription(*description)
	}
	task.DependsOn(dependsOn...)
	if body == nil {
		return nil
	}

	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("invalid attributes for task %s: %w", task.Name(), diags)
	}
	if len(attrs) == 0 {
		return nil
	}

	c, ok := task.(configurable)
	if !ok {
		return &build.ConfigurationError{Subject: task.Name(), Reason: fmt.Sprintf("%s tasks have no configurable properties", task.Kind())}
	}
	props := c.Properties()
	byKey := propertyKeys(props)

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		attr := attrs[name]
		prop, ok := byKey[attributeKey(name)]
		if !ok {
			return &build.ConfigurationError{Subject: task.Name(), Reason: fmt.Sprintf("unknown property %q", name)}
		}
		err := props.Assign(prop, func(target any) error {
			if diags := gohcl.DecodeExpression(attr.Expr, evalCtx, target); diags.HasErrors() {
				return diags
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// propertyKeys indexes property names by their attribute key.
func propertyKeys(props *convention.Set) map[string]string {
	out := make(map[string]string)
	for _, name := range props.Names() {
		out[attributeKey(name)] = name
	}
	return out
}

// attributeKey folds "header_uri" and "headerURI" to the same key.
func attributeKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}
