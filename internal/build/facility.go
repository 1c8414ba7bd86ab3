package build

import (
	"context"
	"sort"

	"github.com/specialistvlad/licensegrid/internal/ctxlog"
	"github.com/specialistvlad/licensegrid/internal/fsutil"
)

// Facility is an optional source-producing capability of the host, such as
// a plain module system or a platform-variant module system.
type Facility interface {
	ID() string
	// Infix distinguishes task names of this facility from others.
	Infix() string
	// SourceSets is the facility's own live collection of code groups.
	SourceSets() *SourceSetContainer
	// Files enumerates the input files of one of the facility's groups.
	Files(set *SourceSet, filter Filter) ([]string, error)
}

// Filter narrows the files a facility enumerates.
type Filter = fsutil.Filter

// Reaction runs once when a facility becomes active.
type Reaction func(ctx context.Context, f Facility) error

// FacilityManager answers "is this facility available / active" and notifies
// subscribers on activation.
type FacilityManager struct {
	known     map[string]Facility
	active    map[string]bool
	order     []string
	reactions map[string][]Reaction
}

// NewFacilityManager returns a manager without facilities.
func NewFacilityManager() *FacilityManager {
	return &FacilityManager{
		known:     make(map[string]Facility),
		active:    make(map[string]bool),
		reactions: make(map[string][]Reaction),
	}
}

// Register makes a facility available to the build. It is not active yet.
func (m *FacilityManager) Register(f Facility) error {
	if _, exists := m.known[f.ID()]; exists {
		return configErrorf(f.ID(), "facility already registered")
	}
	m.known[f.ID()] = f
	return nil
}

// Lookup resolves a facility identifier. A miss is not an error.
func (m *FacilityManager) Lookup(id string) (Facility, bool) {
	f, ok := m.known[id]
	return f, ok
}

// IsActive reports whether the facility was activated in this build.
func (m *FacilityManager) IsActive(id string) bool { return m.active[id] }

// Active returns activated facility IDs in activation order.
func (m *FacilityManager) Active() []string {
	return append([]string(nil), m.order...)
}

// Known returns the sorted IDs of registered facilities.
func (m *FacilityManager) Known() []string {
	ids := make([]string, 0, len(m.known))
	for id := range m.known {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Activate turns a registered facility on and runs its pending reactions.
// A failing reaction stops the run; the reactions after it stay pending and
// run when the facility is activated again. Otherwise activating an active
// facility again is a no-op.
func (m *FacilityManager) Activate(ctx context.Context, id string) error {
	f, ok := m.known[id]
	if !ok {
		return configErrorf(id, "unknown facility")
	}
	if !m.active[id] {
		m.active[id] = true
		m.order = append(m.order, id)
		ctxlog.FromContext(ctx).Debug("Facility activated.", "facility", id)
	}

	for len(m.reactions[id]) > 0 {
		react := m.reactions[id][0]
		m.reactions[id] = m.reactions[id][1:]
		if err := react(ctx, f); err != nil {
			return err
		}
	}
	delete(m.reactions, id)
	return nil
}

// WithFacility subscribes a one-shot reaction. It runs immediately if the
// facility is already active and is silently dropped if the facility is
// unknown to this host.
func (m *FacilityManager) WithFacility(ctx context.Context, id string, react Reaction) error {
	f, ok := m.known[id]
	if !ok {
		return nil
	}
	if m.active[id] {
		return react(ctx, f)
	}
	m.reactions[id] = append(m.reactions[id], react)
	return nil
}
