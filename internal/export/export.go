package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"matka-admin/internal/filter"
	"matka-admin/internal/model"
	"matka-admin/pkg/utils"
)

// ErrNoData is returned when an export is requested for an empty dataset.
// The operation refuses to produce a file; callers surface the refusal to
// the user and may retry after changing filters.
var ErrNoData = errors.New("no records to export")

// ErrUnknownFormat is returned for export formats the serializer does not
// support.
var ErrUnknownFormat = errors.New("unknown export format")

// Manager turns export specs into report files on disk.
type Manager struct {
	Output *utils.OutputManager
}

// NewManager creates an export manager writing through out.
func NewManager(out *utils.OutputManager) *Manager {
	return &Manager{Output: out}
}

// Export serializes spec into the requested format ("csv", "pdf" or
// "xlsx") and writes the report under the managed output directory as
// {filename}_{unix-millis}.{format}. The returned result mirrors what
// happened either way; the error carries ErrNoData or ErrUnknownFormat
// for the refusal paths.
func (m *Manager) Export(spec model.ExportSpec, format string) (model.ExportResult, error) {
	result := model.ExportResult{
		ID:          uuid.New().String(),
		Format:      format,
		RecordCount: len(spec.Data),
		ExportedAt:  time.Now(),
	}

	var (
		content []byte
		err     error
	)
	switch strings.ToLower(format) {
	case "csv":
		content, err = BuildCSV(spec)
	case "pdf":
		content, err = BuildPDF(spec, result.ExportedAt)
	case "xlsx":
		content, err = BuildXLSX(spec)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	if err := m.Output.EnsureOutputDirExists(); err != nil {
		result.Error = err.Error()
		return result, fmt.Errorf("failed to create output directory: %w", err)
	}

	result.FileName = ReportFileName(spec.Filename, strings.ToLower(format), result.ExportedAt)
	result.Path = m.Output.FilePath(result.FileName)
	if err := os.WriteFile(result.Path, content, 0644); err != nil {
		result.Error = err.Error()
		return result, fmt.Errorf("failed to write report file: %w", err)
	}

	result.Success = true
	fmt.Printf("💾 Export: %d records written to %s\n", result.RecordCount, result.Path)
	return result, nil
}

// ReportFileName builds the {filename}_{unix-millis}.{ext} report name.
// An empty base falls back to "report".
func ReportFileName(base, ext string, at time.Time) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = "report"
	}
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%s_%d.%s", base, at.UnixMilli(), ext)
}

// BuildCSV serializes spec as UTF-8, comma-delimited text: header row
// first, one record per line. Cells are quote-wrapped with internal
// quotes doubled only when the value requires it; nil and missing values
// serialize as empty cells; numbers and booleans use their default string
// form. An empty dataset returns ErrNoData.
func BuildCSV(spec model.ExportSpec) ([]byte, error) {
	if len(spec.Data) == 0 {
		return nil, ErrNoData
	}

	columns := Columns(spec)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Header
	}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(columns))
	for _, rec := range spec.Data {
		for i, col := range columns {
			row[i] = filter.FieldString(rec, col.DataKey)
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Columns resolves the export projection. An explicit column list wins;
// otherwise columns are inferred from the first record's field set in
// sorted order, with the field name doubling as the header.
func Columns(spec model.ExportSpec) []model.Column {
	if len(spec.Columns) > 0 {
		return spec.Columns
	}
	if len(spec.Data) == 0 {
		return nil
	}

	keys := make([]string, 0, len(spec.Data[0]))
	for key := range spec.Data[0] {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	columns := make([]model.Column, len(keys))
	for i, key := range keys {
		columns[i] = model.Column{Header: key, DataKey: key}
	}
	return columns
}
