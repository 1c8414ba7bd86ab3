package build

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/specialistvlad/licensegrid/internal/ctxlog"
)

func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger), buf
}

type fakeFacility struct {
	id    string
	infix string
	sets  *SourceSetContainer
}

func newFakeFacility(id, infix string) *fakeFacility {
	return &fakeFacility{id: id, infix: infix, sets: NewSourceSetContainer()}
}

func (f *fakeFacility) ID() string                      { return f.id }
func (f *fakeFacility) Infix() string                   { return f.infix }
func (f *fakeFacility) SourceSets() *SourceSetContainer { return f.sets }
func (f *fakeFacility) Files(s *SourceSet, _ Filter) ([]string, error) {
	return append([]string(nil), s.SrcDirs...), nil
}

type recordingTask struct {
	BaseTask
	log *[]string
	err error
}

func (t *recordingTask) Execute(context.Context) error {
	*t.log = append(*t.log, t.Name())
	return t.err
}

func isConfigError(err error) bool { return errors.Is(err, ErrConfiguration) }
