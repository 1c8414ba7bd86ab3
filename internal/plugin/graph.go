package plugin

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/specialistvlad/licensegrid/internal/build"
	"github.com/specialistvlad/licensegrid/internal/ctxlog"
	"github.com/specialistvlad/licensegrid/internal/tasks"
)

// TaskName is base + infix + the group name with its first letter upper-cased.
func TaskName(base, infix, group string) string {
	return base + infix + capitalize(group)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// synthesize creates the check and format task of every tracked group that
// belongs to f. The tracked collection is read once; later additions are
// not picked up.
func (pl *Plugin) synthesize(ctx context.Context, f build.Facility) error {
	logger := ctxlog.FromContext(ctx)
	groups := pl.registry.Compliance().SourceSets.Snapshot()

	created := 0
	for _, set := range groups {
		if set.Facility != f.ID() {
			continue
		}
		check, err := pl.createHeaderTask(f, set, CheckBase, true)
		if err != nil {
			return err
		}
		format, err := pl.createHeaderTask(f, set, FormatBase, false)
		if err != nil {
			return err
		}
		pl.checkAll.DependsOn(check.Name())
		pl.formatAll.DependsOn(format.Name())
		created++
		logger.Debug("License tasks created.", "source_set", set.Name, "check", check.Name(), "format", format.Name())
	}

	if err := pl.wireVerification(); err != nil {
		return err
	}
	logger.Info("License task graph synthesized.", "source_sets", created)
	return nil
}

// verifyClaimed fails for tracked groups that no active facility owns: no
// facility can enumerate their files, so they would get no tasks at all.
func (pl *Plugin) verifyClaimed(context.Context) error {
	var unclaimed []string
	for _, set := range pl.registry.Compliance().SourceSets.Snapshot() {
		if set.Facility != "" && pl.project.Facilities.IsActive(set.Facility) {
			continue
		}
		if set.Facility == "" {
			unclaimed = append(unclaimed, set.Name)
		} else {
			unclaimed = append(unclaimed, fmt.Sprintf("%s (facility %s is not active)", set.Name, set.Facility))
		}
	}
	if len(unclaimed) > 0 {
		return &build.ConfigurationError{
			Subject: CheckBase,
			Reason:  "source sets not owned by an active facility: " + strings.Join(unclaimed, ", "),
		}
	}
	return nil
}

func (pl *Plugin) createHeaderTask(f build.Facility, set *build.SourceSet, base string, check bool) (*tasks.HeaderTask, error) {
	name := TaskName(base, f.Infix(), set.Name)
	t, err := pl.project.Tasks.Create(name, tasks.KindHeader)
	if err != nil {
		return nil, err
	}
	ht, ok := t.(*tasks.HeaderTask)
	if !ok {
		return nil, &build.ConfigurationError{Subject: name, Reason: fmt.Sprintf("expected header task, got %T", t)}
	}

	ht.Check = check
	ht.SetSource(func(filter build.Filter) ([]string, error) {
		return f.Files(set, filter)
	})
	if check {
		ht.SetDescription(fmt.Sprintf("Scanning license on %s files", set.Name))
	} else {
		ht.SetDescription(fmt.Sprintf("Applying license on %s files", set.Name))
	}
	return ht, nil
}

// wireVerification makes the host's verification task depend on the
// check-all aggregate, once per build.
func (pl *Plugin) wireVerification() error {
	if pl.verificationWired {
		return nil
	}
	verify, ok := pl.project.Tasks.Get(build.VerificationTask)
	if !ok {
		return &build.ConfigurationError{Subject: build.VerificationTask, Reason: "verification task not found"}
	}
	verify.DependsOn(pl.checkAll.Name())
	pl.verificationWired = true
	return nil
}
