package render

import (
	"sort"

	"github.com/specialistvlad/licensegrid/internal/build"
)

// TaskView is the printable form of one task.
type TaskView struct {
	Name        string   `yaml:"name"`
	Kind        string   `yaml:"kind"`
	Group       string   `yaml:"group,omitempty"`
	Description string   `yaml:"description,omitempty"`
	DependsOn   []string `yaml:"depends_on,omitempty"`
}

// Views returns every task of p ordered by group, then name. Ungrouped
// tasks come last.
func Views(p *build.Project) []TaskView {
	all := p.Tasks.All()
	views := make([]TaskView, 0, len(all))
	for _, t := range all {
		views = append(views, TaskView{
			Name:        t.Name(),
			Kind:        string(t.Kind()),
			Group:       t.Group(),
			Description: t.Description(),
			DependsOn:   t.Dependencies(),
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if (a.Group == "") != (b.Group == "") {
			return b.Group == ""
		}
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.Name < b.Name
	})
	return views
}
