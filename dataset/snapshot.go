// Package dataset owns the in-memory copy of the transaction dataset. The
// whole dataset is loaded once at startup and published as an immutable
// Snapshot; handlers filter it by date range and hand the result to the
// analytics package. Reloads swap the snapshot atomically behind a RWMutex.
package dataset

import (
	"sync"
	"time"

	"github.com/Cartlytics/cartlytics-insights-backend/models"
)

// Snapshot is an immutable view of the loaded dataset. Callers must not
// mutate the slices it returns.
type Snapshot struct {
	lines       []models.OrderLine
	geo         []models.GeoPoint
	minApproved time.Time
	maxApproved time.Time
	hasDates    bool
	loadedAt    time.Time
}

func NewSnapshot(lines []models.OrderLine, geo []models.GeoPoint) *Snapshot {
	s := &Snapshot{lines: lines, geo: geo, loadedAt: time.Now()}
	for _, r := range lines {
		if r.OrderApprovedAt == nil {
			continue
		}
		t := *r.OrderApprovedAt
		if !s.hasDates {
			s.minApproved, s.maxApproved = t, t
			s.hasDates = true
			continue
		}
		if t.Before(s.minApproved) {
			s.minApproved = t
		}
		if t.After(s.maxApproved) {
			s.maxApproved = t
		}
	}
	return s
}

func (s *Snapshot) Lines() []models.OrderLine { return s.lines }

func (s *Snapshot) Geo() []models.GeoPoint { return s.geo }

func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Bounds returns the min and max order_approved_at in the dataset. ok is
// false when no row carries an approved timestamp.
func (s *Snapshot) Bounds() (min, max time.Time, ok bool) {
	return s.minApproved, s.maxApproved, s.hasDates
}

// FilterRange returns the order lines whose approved date falls inside the
// inclusive [start, end] calendar-day range. Rows with no approved timestamp
// never match, the same exclusion the grouped views apply.
func (s *Snapshot) FilterRange(start, end time.Time) []models.OrderLine {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)

	out := []models.OrderLine{}
	for _, r := range s.lines {
		if r.OrderApprovedAt == nil {
			continue
		}
		t := r.OrderApprovedAt.UTC()
		if !t.Before(from) && t.Before(to) {
			out = append(out, r)
		}
	}
	return out
}

var (
	mu      sync.RWMutex
	current *Snapshot
)

// Current returns the serving snapshot, or nil before the first load.
func Current() *Snapshot {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set publishes a new serving snapshot.
func Set(s *Snapshot) {
	mu.Lock()
	current = s
	mu.Unlock()
}
