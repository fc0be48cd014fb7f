package handler

import (
	"net/http"

	"matka-admin/internal/filter"
	"matka-admin/internal/model"
	"matka-admin/internal/segment"
	"matka-admin/pkg/paginate"
)

// ListUsers returns one page of the user dataset
// @Summary List users
// @Description Segment, filter and paginate the user dataset
// @Tags users
// @Produce json
// @Param segment query string false "Cohort: all, play-active, play-inactive, block-devices"
// @Param status query string false "Exact status match (case-insensitive)"
// @Param search query string false "Free-text search over configured fields"
// @Param startDate query string false "Registration range start (DD/MM/YYYY)"
// @Param endDate query string false "Registration range end (DD/MM/YYYY)"
// @Param page query int false "1-indexed page number"
// @Param pageSize query int false "Records per page"
// @Success 200 {object} model.Page "One page of matching users"
// @Failure 400 {object} map[string]interface{} "Invalid paging parameters"
// @Router /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	seg := model.Segment(q.Get("segment"))
	cohort := segment.Classify(h.Users, seg, h.Now(), h.SegmentCfg)

	spec := filterSpecFromQuery(q)
	filtered := filter.Apply(cohort, spec, h.FilterCfg)

	page, pageSize := pageParams(q, defaultPageSize)
	result, err := paginate.Paginate(filtered, page, pageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetUserSummary returns the summary-tile numbers
// @Summary User summary
// @Description Registration stats, cohort counts and display items
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "Summary payload"
// @Router /users/summary [get]
func (h *Handler) GetUserSummary(w http.ResponseWriter, r *http.Request) {
	now := h.Now()
	stats := segment.RegistrationStats(h.Users, now, h.SegmentCfg)
	counts := segment.Counts(h.Users, now, h.SegmentCfg)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"registrations":     stats,
		"segments":          counts,
		"registrationItems": h.Formatter.RegistrationItems(stats),
		"segmentItems":      h.Formatter.SegmentItems(counts),
	})
}

// GetDashboard returns the overview tiles
// @Summary Dashboard overview
// @Description Reshape the dashboard summary into ordered label/value items
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Dashboard items"
// @Router /dashboard [get]
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": h.Formatter.DashboardItems(h.Summary, h.Now()),
	})
}
