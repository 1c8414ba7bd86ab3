package facility

import (
	"path/filepath"

	"github.com/specialistvlad/licensegrid/internal/build"
	"github.com/specialistvlad/licensegrid/internal/fsutil"
)

// JavaID identifies the plain module system.
const JavaID = "java"

// Java contributes "main" and "test" source sets and enumerates source
// roots only.
type Java struct {
	sets *build.SourceSetContainer
}

// NewJava creates the facility with the conventional layout under dir.
func NewJava(dir string) *Java {
	j := &Java{sets: build.NewSourceSetContainer()}
	for _, name := range []string{"main", "test"} {
		_ = j.sets.Add(&build.SourceSet{
			Name:         name,
			Facility:     JavaID,
			SrcDirs:      []string{filepath.Join(dir, "src", name, "java")},
			ResourceDirs: []string{filepath.Join(dir, "src", name, "resources")},
		})
	}
	return j
}

func (j *Java) ID() string { return JavaID }

func (j *Java) Infix() string { return "" }

func (j *Java) SourceSets() *build.SourceSetContainer { return j.sets }

// Files enumerates the set's source roots.
func (j *Java) Files(set *build.SourceSet, filter build.Filter) ([]string, error) {
	return fsutil.CollectFiles(set.SrcDirs, filter)
}
