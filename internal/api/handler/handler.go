package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"matka-admin/internal/export"
	"matka-admin/internal/model"
	"matka-admin/internal/summary"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Handler serves the admin API. Users holds the record collection the
// dataset collaborator loaded at startup; the core pipeline never mutates
// it. Now is injectable so recency cohorts are testable.
type Handler struct {
	Users      []model.Record
	Summary    model.DashboardSummary
	FilterCfg  model.FilterConfig
	SegmentCfg model.SegmentConfig
	Formatter  *summary.Formatter
	Exports    *export.Manager
	Now        func() time.Time
}

// New builds a handler with the default field configuration.
func New(users []model.Record, dashboard model.DashboardSummary, formatter *summary.Formatter, exports *export.Manager, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		Users:      users,
		Summary:    dashboard,
		FilterCfg:  model.DefaultUserFilterConfig(),
		SegmentCfg: model.DefaultSegmentConfig(),
		Formatter:  formatter,
		Exports:    exports,
		Now:        now,
	}
}

// filterSpecFromQuery builds a FilterSpec from list-endpoint query
// parameters. Query keys prefixed "f_" become custom equality filters.
func filterSpecFromQuery(q map[string][]string) model.FilterSpec {
	get := func(key string) string {
		if vals, ok := q[key]; ok && len(vals) > 0 {
			return vals[0]
		}
		return ""
	}

	spec := model.FilterSpec{
		DateFilter: model.DateFilter{
			StartDate: get("startDate"),
			EndDate:   get("endDate"),
		},
		StatusFilter: get("status"),
		SearchQuery:  get("search"),
	}

	for key, vals := range q {
		if strings.HasPrefix(key, "f_") && len(vals) > 0 && vals[0] != "" {
			if spec.CustomFilters == nil {
				spec.CustomFilters = make(map[string]string)
			}
			spec.CustomFilters[strings.TrimPrefix(key, "f_")] = vals[0]
		}
	}
	return spec
}

// pageParams reads page/pageSize with defaults. The page number is
// clamped to at least 1 here because the HTTP layer is the caller the
// pagination contract delegates clamping to.
func pageParams(q map[string][]string, defaultSize int) (page, pageSize int) {
	page, pageSize = 1, defaultSize
	if vals, ok := q["page"]; ok && len(vals) > 0 {
		if n, err := strconv.Atoi(vals[0]); err == nil && n > 0 {
			page = n
		}
	}
	if vals, ok := q["pageSize"]; ok && len(vals) > 0 {
		if n, err := strconv.Atoi(vals[0]); err == nil && n > 0 {
			pageSize = n
		}
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{"error": msg})
}
