package facility

import (
	"path/filepath"

	"github.com/specialistvlad/licensegrid/internal/build"
	"github.com/specialistvlad/licensegrid/internal/fsutil"
)

const (
	AndroidAppID     = "com.android.application"
	AndroidLibraryID = "com.android.library"

	androidInfix = "Android"
)

// Android is a platform-variant module system. Its groups are variant
// source sets whose inputs combine sources and resources.
type Android struct {
	id   string
	sets *build.SourceSetContainer
}

// NewAndroidApp creates the application variant facility.
func NewAndroidApp(dir string) *Android { return newAndroid(AndroidAppID, dir) }

// NewAndroidLibrary creates the library variant facility.
func NewAndroidLibrary(dir string) *Android { return newAndroid(AndroidLibraryID, dir) }

func newAndroid(id, dir string) *Android {
	a := &Android{id: id, sets: build.NewSourceSetContainer()}
	for _, name := range []string{"main", "debug", "release"} {
		_ = a.sets.Add(&build.SourceSet{
			Name:         name,
			Facility:     id,
			SrcDirs:      []string{filepath.Join(dir, "src", name, "java")},
			ResourceDirs: []string{filepath.Join(dir, "src", name, "res")},
		})
	}
	return a
}

func (a *Android) ID() string { return a.id }

func (a *Android) Infix() string { return androidInfix }

func (a *Android) SourceSets() *build.SourceSetContainer { return a.sets }

// Files enumerates sources and resources of the variant.
func (a *Android) Files(set *build.SourceSet, filter build.Filter) ([]string, error) {
	roots := append(append([]string{}, set.SrcDirs...), set.ResourceDirs...)
	return fsutil.CollectFiles(roots, filter)
}
