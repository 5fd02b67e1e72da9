package scheduling

import (
	"time"

	"github.com/BruksfildServices01/agenda-saas/internal/audit"
)

type InvalidateSnapshots struct {
	cache *SnapshotCache
	audit Auditor
}

func NewInvalidateSnapshots(
	cache *SnapshotCache,
	audit Auditor,
) *InvalidateSnapshots {
	return &InvalidateSnapshots{
		cache: cache,
		audit: audit,
	}
}

// Execute limpa os snapshots do negócio; period opcional restringe ao
// prefixo do dia (varredura linear, caches pequenos).
func (uc *InvalidateSnapshots) Execute(businessID uint, period *time.Time) int {
	prefix := snapshotPrefix(businessID)
	if period != nil {
		prefix = snapshotPeriodPrefix(businessID, *period)
	}

	n := uc.cache.ClearByPrefix(prefix)

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		Action:     "cache_invalidated",
		Entity:     "capacity_snapshot",
		Metadata:   map[string]any{"cleared": n, "prefix": prefix},
	})

	return n
}
