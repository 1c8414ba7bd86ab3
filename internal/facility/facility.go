package facility

import "github.com/specialistvlad/licensegrid/internal/build"

// Builtin returns every facility this host ships, rooted at dir.
func Builtin(dir string) []build.Facility {
	return []build.Facility{
		NewJava(dir),
		NewAndroidApp(dir),
		NewAndroidLibrary(dir),
	}
}

// RegisterBuiltin makes the built-in facilities available to a project.
// They stay inactive until the build description applies them.
func RegisterBuiltin(p *build.Project) error {
	for _, f := range Builtin(p.Dir) {
		if err := p.Facilities.Register(f); err != nil {
			return err
		}
	}
	return nil
}
