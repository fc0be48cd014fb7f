package segment

import (
	"math"
	"strings"
	"time"

	"matka-admin/internal/filter"
	"matka-admin/internal/model"
	"matka-admin/pkg/dates"
)

// activeWindowDays is the recency boundary for the play-active and
// play-inactive cohorts. <= 7 is active, > 7 is inactive; the dashboard
// tiles cross-link to these exact counts, so the boundary must not move.
const activeWindowDays = 7

// Recency computes whole days, rounded up, between now and the record's
// last-active date. ok is false when the date does not parse; such users
// land in neither recency cohort, matching how the source dashboard
// treated NaN comparisons.
func Recency(now time.Time, lastActive string) (int, bool) {
	d, ok := dates.ParseDisplayDate(lastActive)
	if !ok {
		return 0, false
	}
	return int(math.Ceil(now.Sub(d).Hours() / 24)), true
}

// Classify returns the members of the named cohort. Segments are
// evaluated independently and are deliberately neither mutually exclusive
// nor exhaustive; that property is part of the business rules. "now" is
// an explicit parameter because recency cohorts shift daily by design.
func Classify(users []model.Record, seg model.Segment, now time.Time, cfg model.SegmentConfig) []model.Record {
	if seg == model.SegmentAll || seg == "" {
		out := make([]model.Record, len(users))
		copy(out, users)
		return out
	}

	out := make([]model.Record, 0, len(users))
	for _, u := range users {
		if isMember(u, seg, now, cfg) {
			out = append(out, u)
		}
	}
	return out
}

func isMember(u model.Record, seg model.Segment, now time.Time, cfg model.SegmentConfig) bool {
	switch seg {
	case model.SegmentPlayActive:
		rec, ok := Recency(now, filter.FieldString(u, cfg.LastActiveField))
		return ok && rec <= activeWindowDays &&
			strings.EqualFold(filter.FieldString(u, cfg.StatusField), "active")
	case model.SegmentPlayInactive:
		rec, ok := Recency(now, filter.FieldString(u, cfg.LastActiveField))
		return ok && rec > activeWindowDays
	case model.SegmentBlockDevices:
		blocked, _ := u[cfg.DeviceBlockedField].(bool)
		return blocked
	default:
		return false
	}
}

// Counts evaluates every cohort over the same dataset and instant. The
// cohorts may overlap, so the counts do not sum to All.
func Counts(users []model.Record, now time.Time, cfg model.SegmentConfig) model.SegmentCounts {
	return model.SegmentCounts{
		All:          len(users),
		PlayActive:   len(Classify(users, model.SegmentPlayActive, now, cfg)),
		PlayInactive: len(Classify(users, model.SegmentPlayInactive, now, cfg)),
		BlockDevices: len(Classify(users, model.SegmentBlockDevices, now, cfg)),
	}
}

// RegistrationStats computes the summary-tile scalars. Today and
// yesterday compare display-date strings of the registration field;
// the trailing week compares full dates over [now-7d, now]. This window
// anchors on the registration date and is distinct from the last-active
// recency rule above.
func RegistrationStats(users []model.Record, now time.Time, cfg model.SegmentConfig) model.RegistrationStats {
	var stats model.RegistrationStats

	todayStr := dates.FormatDisplay(now)
	yesterdayStr := dates.FormatDisplay(now.AddDate(0, 0, -1))
	windowStart := now.AddDate(0, 0, -7)

	for _, u := range users {
		regStr := filter.FieldString(u, cfg.RegistrationField)
		if regStr == todayStr {
			stats.Today++
		}
		if regStr == yesterdayStr {
			stats.Yesterday++
		}
		if reg, ok := dates.ParseDisplayDate(regStr); ok {
			if !reg.Before(windowStart) && !reg.After(now) {
				stats.TrailingWeek++
			}
		}
	}
	return stats
}
