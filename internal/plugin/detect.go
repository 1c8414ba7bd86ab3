package plugin

import (
	"context"

	"github.com/specialistvlad/licensegrid/internal/build"
	"github.com/specialistvlad/licensegrid/internal/ctxlog"
)

// Detect subscribes react to every listed facility the host knows about.
// Facilities the host cannot resolve are skipped without error.
func Detect(ctx context.Context, m *build.FacilityManager, ids []string, react build.Reaction) error {
	logger := ctxlog.FromContext(ctx)
	for _, id := range ids {
		if _, ok := m.Lookup(id); !ok {
			logger.Debug("Facility not available in this build, skipping.", "facility", id)
			continue
		}
		if err := m.WithFacility(ctx, id, react); err != nil {
			return err
		}
	}
	return nil
}
