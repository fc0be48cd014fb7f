package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"matka-admin/internal/model"
	"matka-admin/internal/store"
)

// PresetRequest is the payload of POST /api/v1/filters.
type PresetRequest struct {
	Name         string           `json:"name"`
	ResourceType string           `json:"resourceType"`
	IsDefault    bool             `json:"isDefault"`
	Spec         model.FilterSpec `json:"spec"`
}

// CreateFilterPreset saves a filter preset
// @Summary Save filter preset
// @Description Persist a named filter configuration for later reuse
// @Tags filters
// @Accept json
// @Produce json
// @Param preset body PresetRequest true "Preset"
// @Success 200 {object} model.SavedFilter "Saved preset"
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Router /filters [post]
func (h *Handler) CreateFilterPreset(w http.ResponseWriter, r *http.Request) {
	var req PresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Preset name is required")
		return
	}
	if req.ResourceType == "" {
		req.ResourceType = "users"
	}

	preset, err := store.SaveFilterPreset(req.Name, req.ResourceType, req.Spec, req.IsDefault)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save preset")
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

// ListFilterPresets lists saved presets
// @Summary List filter presets
// @Description Saved filter presets for a resource type
// @Tags filters
// @Produce json
// @Param resource query string false "Resource type (default users)"
// @Success 200 {object} map[string]interface{} "Presets"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /filters [get]
func (h *Handler) ListFilterPresets(w http.ResponseWriter, r *http.Request) {
	resource := r.URL.Query().Get("resource")
	if resource == "" {
		resource = "users"
	}

	presets, err := store.ListFilterPresets(resource)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch presets")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"presets": presets,
		"count":   len(presets),
	})
}

// DeleteFilterPreset removes a preset
// @Summary Delete filter preset
// @Tags filters
// @Produce json
// @Param id path string true "Preset ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "Preset not found"
// @Router /filters/{id} [delete]
func (h *Handler) DeleteFilterPreset(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 4 {
		writeError(w, http.StatusBadRequest, "Invalid URL format")
		return
	}
	id := parts[3]

	if err := store.DeleteFilterPreset(id); err != nil {
		writeError(w, http.StatusNotFound, "Preset not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Preset deleted",
		"id":      id,
	})
}
