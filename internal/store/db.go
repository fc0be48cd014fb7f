package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"matka-admin/internal/model"
)

var db *sql.DB

// InitDB opens the sqlite database and creates the tables. Only export
// history and saved filter presets live here; record collections stay
// with the dataset collaborator.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	exportTable := `
	CREATE TABLE IF NOT EXISTS exports (
		id TEXT PRIMARY KEY,
		title TEXT,
		file_name TEXT,
		format TEXT,
		record_count INTEGER,
		file_path TEXT,
		success INTEGER,
		error_message TEXT,
		created_at DATETIME
	);
	`
	filterTable := `
	CREATE TABLE IF NOT EXISTS saved_filters (
		id TEXT PRIMARY KEY,
		name TEXT,
		resource_type TEXT,
		spec TEXT,
		is_default INTEGER,
		created_at DATETIME
	);
	`

	if _, err := db.Exec(exportTable); err != nil {
		return err
	}
	if _, err := db.Exec(filterTable); err != nil {
		return err
	}

	return nil
}

// SaveExport records the outcome of an export operation.
func SaveExport(title string, result model.ExportResult) error {
	_, err := db.Exec(`
		INSERT INTO exports (id, title, file_name, format, record_count, file_path, success, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, result.ID, title, result.FileName, result.Format, result.RecordCount,
		result.Path, result.Success, result.Error, result.ExportedAt)
	if err != nil {
		return fmt.Errorf("failed to insert export record: %w", err)
	}
	return nil
}

// ListExports returns export history, newest first.
func ListExports() ([]map[string]interface{}, error) {
	rows, err := db.Query(`
		SELECT id, title, file_name, format, record_count, success, created_at
		FROM exports ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query exports: %w", err)
	}
	defer rows.Close()

	var exports []map[string]interface{}
	for rows.Next() {
		var id, title, fileName, format string
		var recordCount int
		var success bool
		var createdAt time.Time
		if err := rows.Scan(&id, &title, &fileName, &format, &recordCount, &success, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan export row: %w", err)
		}
		exports = append(exports, map[string]interface{}{
			"id":           id,
			"title":        title,
			"file_name":    fileName,
			"format":       format,
			"record_count": recordCount,
			"success":      success,
			"created_at":   createdAt,
		})
	}
	return exports, rows.Err()
}

// SaveFilterPreset stores a named filter preset. Marking a preset default
// unsets any previous default for the same resource type.
func SaveFilterPreset(name, resourceType string, spec model.FilterSpec, isDefault bool) (*model.SavedFilter, error) {
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter spec: %w", err)
	}

	now := time.Now()
	preset := &model.SavedFilter{
		ID:           uuid.New().String(),
		Name:         name,
		ResourceType: resourceType,
		Spec:         spec,
		IsDefault:    isDefault,
		CreatedAt:    now,
	}

	if isDefault {
		if _, err := db.Exec(`
			UPDATE saved_filters SET is_default = 0 WHERE resource_type = ?
		`, resourceType); err != nil {
			return nil, fmt.Errorf("failed to clear previous default: %w", err)
		}
	}

	if _, err := db.Exec(`
		INSERT INTO saved_filters (id, name, resource_type, spec, is_default, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, preset.ID, preset.Name, preset.ResourceType, string(specJSON), preset.IsDefault, now); err != nil {
		return nil, fmt.Errorf("failed to insert filter preset: %w", err)
	}

	return preset, nil
}

// ListFilterPresets returns the presets saved for a resource type.
func ListFilterPresets(resourceType string) ([]model.SavedFilter, error) {
	rows, err := db.Query(`
		SELECT id, name, resource_type, spec, is_default, created_at
		FROM saved_filters WHERE resource_type = ? ORDER BY created_at DESC
	`, resourceType)
	if err != nil {
		return nil, fmt.Errorf("failed to query filter presets: %w", err)
	}
	defer rows.Close()

	var presets []model.SavedFilter
	for rows.Next() {
		var preset model.SavedFilter
		var specJSON string
		if err := rows.Scan(&preset.ID, &preset.Name, &preset.ResourceType, &specJSON, &preset.IsDefault, &preset.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan filter preset: %w", err)
		}
		if err := json.Unmarshal([]byte(specJSON), &preset.Spec); err != nil {
			return nil, fmt.Errorf("failed to decode filter spec: %w", err)
		}
		presets = append(presets, preset)
	}
	return presets, rows.Err()
}

// DeleteFilterPreset removes a preset by ID.
func DeleteFilterPreset(id string) error {
	result, err := db.Exec(`DELETE FROM saved_filters WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete filter preset: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("filter preset not found")
	}
	return nil
}
