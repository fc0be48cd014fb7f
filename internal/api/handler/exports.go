package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"matka-admin/internal/export"
	"matka-admin/internal/filter"
	"matka-admin/internal/model"
	"matka-admin/internal/segment"
	"matka-admin/internal/store"
)

// ExportRequest is the payload of POST /api/v1/exports. The export runs
// over the filtered, unpaginated collection.
type ExportRequest struct {
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle,omitempty"`
	Filename string           `json:"filename"`
	Format   string           `json:"format"` // csv, pdf, xlsx
	Segment  model.Segment    `json:"segment,omitempty"`
	Columns  []model.Column   `json:"columns,omitempty"`
	Filters  model.FilterSpec `json:"filters"`
}

// CreateExport produces a report file
// @Summary Create export
// @Description Filter the dataset and serialize the full result as CSV, PDF or XLSX
// @Tags exports
// @Accept json
// @Produce json
// @Param export body ExportRequest true "Export request"
// @Success 200 {object} map[string]interface{} "Export result with download URL"
// @Failure 400 {object} map[string]interface{} "Invalid payload or format"
// @Failure 422 {object} map[string]interface{} "No records match the filters"
// @Router /exports [post]
func (h *Handler) CreateExport(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	cohort := segment.Classify(h.Users, req.Segment, h.Now(), h.SegmentCfg)
	filtered := filter.Apply(cohort, req.Filters, h.FilterCfg)

	spec := model.ExportSpec{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Filename: req.Filename,
		Columns:  req.Columns,
		Data:     filtered,
	}

	result, err := h.Exports.Export(spec, req.Format)
	if err != nil {
		switch {
		case errors.Is(err, export.ErrNoData):
			// A recoverable refusal, not a failure: the caller can
			// loosen the filters and try again.
			writeError(w, http.StatusUnprocessableEntity, "No records to export. Adjust the filters and try again.")
		case errors.Is(err, export.ErrUnknownFormat):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "Failed to generate report")
		}
		return
	}

	if err := store.SaveExport(req.Title, result); err != nil {
		fmt.Printf("❌ Failed to record export history: %v\n", err)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"export":       result,
		"download_url": h.Exports.Output.DownloadURL(result.FileName),
	})
}

// ListExports returns export history
// @Summary List exports
// @Description Export history, newest first
// @Tags exports
// @Produce json
// @Success 200 {object} map[string]interface{} "Export history"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /exports [get]
func (h *Handler) ListExports(w http.ResponseWriter, r *http.Request) {
	exports, err := store.ListExports()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch export history")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"exports": exports,
		"count":   len(exports),
	})
}

// DownloadReport serves a produced report file
// @Summary Download report
// @Description Download a report file produced by a previous export
// @Tags exports
// @Produce application/octet-stream
// @Param filename path string true "Report file name"
// @Success 200 {file} file "Report file"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /download/{filename} [get]
func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 4 {
		writeError(w, http.StatusBadRequest, "Invalid URL format")
		return
	}
	fileName := parts[3]

	filePath := h.Exports.Output.FilePath(fileName)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		writeError(w, http.StatusNotFound, "File not found")
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Type", "application/octet-stream")
	http.ServeFile(w, r, filePath)
}
