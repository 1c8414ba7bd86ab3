package render

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/licensegrid/internal/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleProject(t *testing.T) *build.Project {
	t.Helper()
	p := build.NewProject("demo", t.TempDir())
	for _, name := range []string{"licenseFormat", "license", "scratch"} {
		_, err := p.Tasks.Create(name, build.KindLifecycle)
		require.NoError(t, err)
	}
	checkAll, _ := p.Tasks.Get("license")
	checkAll.SetGroup("license")
	checkAll.SetDescription("Checks for header consistency.")
	formatAll, _ := p.Tasks.Get("licenseFormat")
	formatAll.SetGroup("license")

	verify, _ := p.Tasks.Get(build.VerificationTask)
	verify.DependsOn("license")
	return p
}

func TestViewsOrder(t *testing.T) {
	views := Views(sampleProject(t))

	var names []string
	for _, v := range views {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"license", "licenseFormat", "check", "scratch"}, names)
	assert.Equal(t, []string{"license"}, views[2].DependsOn)
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, Views(sampleProject(t))))
	out := buf.String()

	assert.Contains(t, out, "License tasks\n-------------\n")
	assert.Contains(t, out, "license - Checks for header consistency.\n")
	assert.Contains(t, out, "Verification tasks\n")
	assert.Contains(t, out, "check - Runs all checks.\n    depends on: license\n")
	assert.Contains(t, out, "Other tasks\n")
	assert.NotContains(t, out, "\x1b[")
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, Views(sampleProject(t))))

	var doc struct {
		Tasks []TaskView `yaml:"tasks"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Tasks, 4)
	assert.Equal(t, "check", doc.Tasks[2].Name)
	assert.Equal(t, "verification", doc.Tasks[2].Group)
	assert.Equal(t, []string{"license"}, doc.Tasks[2].DependsOn)
	assert.Contains(t, buf.String(), "depends_on:")
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	Dump(&buf, "license", map[string]any{"strictCheck": true, "header": "LICENSE"})
	out := buf.String()

	assert.Contains(t, out, "# license\n")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("header")), bytes.Index(buf.Bytes(), []byte("strictCheck")))
}
