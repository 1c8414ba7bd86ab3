package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Text writes views as titled groups, one "name - description" line per
// task. Styling is dropped when w is not a terminal.
func Text(w io.Writer, views []TaskView) error {
	r := lipgloss.NewRenderer(w)
	titleStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	nameStyle := r.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	depStyle := r.NewStyle().Foreground(lipgloss.Color("#999999"))

	var b strings.Builder
	current := "\x00"
	for _, v := range views {
		if v.Group != current {
			if current != "\x00" {
				b.WriteString("\n")
			}
			current = v.Group
			title := groupTitle(v.Group)
			b.WriteString(titleStyle.Render(title) + "\n")
			b.WriteString(strings.Repeat("-", len(title)) + "\n")
		}

		line := nameStyle.Render(v.Name)
		if v.Description != "" {
			line += " - " + v.Description
		}
		b.WriteString(line + "\n")
		if len(v.DependsOn) > 0 {
			b.WriteString(depStyle.Render("    depends on: "+strings.Join(v.DependsOn, ", ")) + "\n")
		}
	}

	_, err := fmt.Fprint(w, b.String())
	return err
}

func groupTitle(group string) string {
	if group == "" {
		return "Other tasks"
	}
	return strings.ToUpper(group[:1]) + group[1:] + " tasks"
}
