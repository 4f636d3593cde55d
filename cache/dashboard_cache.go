package dashboard_cache

import (
	"sync"
	"time"

	"github.com/Cartlytics/cartlytics-insights-backend/models"
)

const TTL = 5 * time.Minute

// ── Overview cache ───────────────────────────────────────────────────────────
// The composed overview touches every aggregation, so repeated requests for
// the same date range (the dashboard polls it) are served from memory. The
// dataset is static between reloads, which makes staleness a non-issue; the
// TTL only bounds memory for rarely-revisited ranges.

type overviewEntry struct {
	data      models.DashboardOverview
	fetchedAt time.Time
}

var (
	overviewMu    sync.RWMutex
	overviewCache = map[string]overviewEntry{}
)

// Key builds the cache key for a date range.
func Key(start, end string) string {
	return start + "|" + end
}

func GetOverview(key string) (models.DashboardOverview, bool) {
	overviewMu.RLock()
	defer overviewMu.RUnlock()
	entry, ok := overviewCache[key]
	if ok && time.Since(entry.fetchedAt) < TTL {
		return entry.data, true
	}
	return models.DashboardOverview{}, false
}

func SetOverview(key string, data models.DashboardOverview) {
	overviewMu.Lock()
	defer overviewMu.Unlock()
	overviewCache[key] = overviewEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate everything (call after a dataset reload) ──────────────────────

func Invalidate() {
	overviewMu.Lock()
	overviewCache = map[string]overviewEntry{}
	overviewMu.Unlock()
}
