package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAML writes views as a YAML document under a "tasks" key.
func YAML(w io.Writer, views []TaskView) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	doc := struct {
		Tasks []TaskView `yaml:"tasks"`
	}{Tasks: views}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode task listing: %w", err)
	}
	return enc.Close()
}
