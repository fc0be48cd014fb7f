package source

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"matka-admin/internal/model"
	"matka-admin/pkg/utils"
)

// LoadFile reads a CSV or JSON dataset file into records. The format is
// chosen by extension; anything else is an error. This is the input
// collaborator for the filter/segment/export pipeline — it only produces
// flat record collections, it owns no filtering logic.
func LoadFile(path string) ([]model.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	var records []model.Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		records, err = LoadCSV(file)
	case ".json":
		records, err = LoadJSON(file)
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	fmt.Printf("📄 Dataset: %d records loaded from %s\n", len(records), path)
	return records, nil
}

// LoadCSV reads a header row then one record per line, coercing cells to
// typed values.
func LoadCSV(r io.Reader) ([]model.Record, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range headers {
		h = strings.TrimSpace(h)
		headers[i] = strings.ReplaceAll(h, `"`, "")
	}

	var records []model.Record
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

		rec := make(model.Record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = utils.ParseValue(row[i])
			}
		}
		records = append(records, rec)
	}
}

// LoadSummary reads the pre-aggregated dashboard totals file.
func LoadSummary(path string) (model.DashboardSummary, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return model.DashboardSummary{}, fmt.Errorf("failed to read summary file: %w", err)
	}
	var s model.DashboardSummary
	if err := json.Unmarshal(body, &s); err != nil {
		return model.DashboardSummary{}, fmt.Errorf("failed to decode summary file: %w", err)
	}
	return s, nil
}

// LoadJSON accepts either an array of objects or a single object.
func LoadJSON(r io.Reader) ([]model.Record, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON body: %w", err)
	}

	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	switch data := raw.(type) {
	case []interface{}:
		records := make([]model.Record, 0, len(data))
		for _, item := range data {
			if m, ok := item.(map[string]interface{}); ok {
				records = append(records, model.Record(m))
			}
		}
		return records, nil
	case map[string]interface{}:
		return []model.Record{model.Record(data)}, nil
	default:
		return nil, fmt.Errorf("unexpected JSON structure")
	}
}
