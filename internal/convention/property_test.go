package convention

import (
	"errors"
	"maps"
	"testing"

	"github.com/specialistvlad/licensegrid/internal/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Header   string
	DryRun   bool
	Excludes []string
	Props    map[string]string
}

func TestPropertyResolution(t *testing.T) {
	t.Run("zero value without convention", func(t *testing.T) {
		s := NewSet("task")
		p := Register[string](s, "header")
		assert.Equal(t, "", p.Get())
		assert.False(t, p.IsExplicit())
	})

	t.Run("convention is re-evaluated on every read", func(t *testing.T) {
		cfg := &settings{Header: "A"}
		s := NewSet("task")
		p := Register[string](s, "header")
		require.NoError(t, Bind(s, "header", func() string { return cfg.Header }))

		assert.Equal(t, "A", p.Get())
		cfg.Header = "B"
		assert.Equal(t, "B", p.Get())
	})

	t.Run("explicit value wins over later convention changes", func(t *testing.T) {
		cfg := &settings{Header: "A"}
		s := NewSet("task")
		p := Register[string](s, "header")
		require.NoError(t, Bind(s, "header", func() string { return cfg.Header }))

		p.Set("X")
		cfg.Header = "Y"
		assert.Equal(t, "X", p.Get())
		assert.True(t, p.IsExplicit())

		p.Unset()
		assert.Equal(t, "Y", p.Get())
	})

	t.Run("explicit zero value still wins", func(t *testing.T) {
		cfg := &settings{DryRun: true}
		s := NewSet("task")
		p := Register[bool](s, "dryRun")
		require.NoError(t, Bind(s, "dryRun", func() bool { return cfg.DryRun }))

		p.Set(false)
		assert.False(t, p.Get())
	})

	t.Run("list and map properties resolve uniformly", func(t *testing.T) {
		cfg := &settings{Excludes: []string{"a"}, Props: map[string]string{"year": "2025"}}
		s := NewSet("task")
		ex := Register[[]string](s, "excludes")
		props := Register[map[string]string](s, "props")
		require.NoError(t, Bind(s, "excludes", func() []string { return cfg.Excludes }))
		require.NoError(t, Bind(s, "props", func() map[string]string { return cfg.Props }))

		cfg.Excludes = append(cfg.Excludes, "b")
		cfg.Props["year"] = "2026"
		assert.Equal(t, []string{"a", "b"}, ex.Get())
		assert.Equal(t, map[string]string{"year": "2026"}, props.Get())
	})
}

func TestBind(t *testing.T) {
	t.Run("unknown property is a configuration error", func(t *testing.T) {
		s := NewSet("licenseMain")
		err := Bind(s, "nope", func() string { return "" })
		require.Error(t, err)
		assert.True(t, errors.Is(err, build.ErrConfiguration))
		assert.ErrorContains(t, err, `no property "nope"`)
	})

	t.Run("type mismatch is a configuration error", func(t *testing.T) {
		s := NewSet("licenseMain")
		Register[bool](s, "dryRun")
		err := Bind(s, "dryRun", func() string { return "yes" })
		assert.True(t, errors.Is(err, build.ErrConfiguration))
	})

	t.Run("rebinding replaces instead of layering", func(t *testing.T) {
		s := NewSet("task")
		p := Register[string](s, "header")
		require.NoError(t, Bind(s, "header", func() string { return "first" }))
		require.NoError(t, Bind(s, "header", func() string { return "second" }))
		assert.Equal(t, "second", p.Get())

		p.Set("explicit")
		require.NoError(t, Bind(s, "header", func() string { return "third" }))
		assert.Equal(t, "explicit", p.Get())
	})
}

func TestSet(t *testing.T) {
	s := NewSet("task")
	header := Register[string](s, "header")
	Register[bool](s, "dryRun")
	require.NoError(t, Bind(s, "header", func() string { return "LICENSE" }))

	assert.Equal(t, []string{"header", "dryRun"}, s.Names())
	assert.Equal(t, []string{"dryRun"}, s.Unbound())
	assert.Empty(t, s.Explicit())

	header.Set("HEADER")
	assert.Equal(t, []string{"header"}, s.Explicit())
	assert.Equal(t, map[string]any{"header": "HEADER", "dryRun": false}, s.Resolve())

	assert.Panics(t, func() { Register[string](s, "header") })
}

func TestSetAssign(t *testing.T) {
	s := NewSet("task")
	p := Register[[]string](s, "excludes")

	err := s.Assign("excludes", func(target any) error {
		*(target.(*[]string)) = []string{"**/*.json"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"**/*.json"}, p.Get())
	assert.True(t, p.IsExplicit())

	err = s.Assign("missing", func(any) error { return nil })
	assert.True(t, errors.Is(err, build.ErrConfiguration))

	err = s.Assign("excludes", func(any) error { return errors.New("boom") })
	assert.ErrorContains(t, err, "task.excludes: boom")
}

func TestWithCopy(t *testing.T) {
	cfg := &settings{Props: map[string]string{"year": "2026"}}
	s := NewSet("task")
	p := Register[map[string]string](s, "props").WithCopy(maps.Clone[map[string]string])
	require.NoError(t, Bind(s, "props", func() map[string]string { return cfg.Props }))

	t.Run("convention values are copied", func(t *testing.T) {
		p.Get()["year"] = "1999"
		assert.Equal(t, "2026", cfg.Props["year"])
	})

	t.Run("explicit values are copied on set and on read", func(t *testing.T) {
		explicit := map[string]string{"owner": "acme"}
		p.Set(explicit)
		explicit["owner"] = "changed"
		assert.Equal(t, "acme", p.Get()["owner"])

		p.Get()["owner"] = "changed"
		assert.Equal(t, "acme", p.Get()["owner"])
	})

	t.Run("without a copy function values are shared", func(t *testing.T) {
		shared := Register[[]string](s, "excludes")
		list := []string{"a"}
		shared.Set(list)
		list[0] = "b"
		assert.Equal(t, []string{"b"}, shared.Get())
	})
}
