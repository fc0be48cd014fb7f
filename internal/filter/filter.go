package filter

import (
	"fmt"
	"strings"

	"matka-admin/internal/model"
	"matka-admin/pkg/dates"
)

// Apply runs every active dimension of spec against records and returns
// the survivors as a new slice. Dimensions combine conjunctively and each
// predicate is pure, so evaluation short-circuits on the first failing
// dimension per record. The input slice and its records are never mutated.
func Apply(records []model.Record, spec model.FilterSpec, cfg model.FilterConfig) []model.Record {
	out := make([]model.Record, 0, len(records))
	for _, rec := range records {
		if matches(rec, spec, cfg) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec model.Record, spec model.FilterSpec, cfg model.FilterConfig) bool {
	if !matchesDate(rec, spec.DateFilter, cfg.DateField) {
		return false
	}
	if !matchesStatus(rec, spec.StatusFilter, cfg.StatusField) {
		return false
	}
	if !matchesSearch(rec, spec.SearchQuery, cfg.SearchFields) {
		return false
	}
	return matchesCustom(rec, spec.CustomFilters)
}

// matchesDate is active only when at least one bound is non-empty.
func matchesDate(rec model.Record, df model.DateFilter, dateField string) bool {
	if df.StartDate == "" && df.EndDate == "" {
		return true
	}
	return dates.InRange(FieldString(rec, dateField), df.StartDate, df.EndDate)
}

// matchesStatus is a case-insensitive exact match on the status field.
func matchesStatus(rec model.Record, status, statusField string) bool {
	if status == "" {
		return true
	}
	return strings.EqualFold(FieldString(rec, statusField), status)
}

// matchesSearch reports whether any configured search field contains the
// query as a case-insensitive substring. A query that is empty after
// trimming disables the dimension entirely; it neither matches everything
// by accident nor filters everything out.
func matchesSearch(rec model.Record, query string, searchFields []string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, field := range searchFields {
		if strings.Contains(strings.ToLower(FieldString(rec, field)), query) {
			return true
		}
	}
	return false
}

// matchesCustom requires a case-insensitive exact match for every custom
// key with a non-empty value.
func matchesCustom(rec model.Record, custom map[string]string) bool {
	for key, want := range custom {
		if want == "" {
			continue
		}
		if !strings.EqualFold(FieldString(rec, key), want) {
			return false
		}
	}
	return true
}

// FieldString stringifies a record field for comparison. Missing fields
// and nil values become the empty string, so they fail any non-empty
// comparison instead of erroring.
func FieldString(rec model.Record, field string) string {
	val, ok := rec[field]
	if !ok || val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", val)
}
