package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"matka-admin/internal/model"
	"matka-admin/pkg/utils"
)

func TestBuildCSVQuoting(t *testing.T) {
	spec := model.ExportSpec{
		Columns: []model.Column{{Header: "name", DataKey: "name"}},
		Data:    []model.Record{{"name": `a,"b"`}},
	}
	out, err := BuildCSV(spec)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header and one row, got %d lines", len(lines))
	}
	if lines[1] != `"a,""b"""` {
		t.Errorf("Expected quoted cell %q, got %q", `"a,""b"""`, lines[1])
	}
}

func TestBuildCSVPlainValuesUnquoted(t *testing.T) {
	spec := model.ExportSpec{
		Columns: []model.Column{
			{Header: "Name", DataKey: "name"},
			{Header: "Balance", DataKey: "balance"},
			{Header: "Blocked", DataKey: "blocked"},
		},
		Data: []model.Record{{"name": "Rajesh", "balance": 1500.5, "blocked": false}},
	}
	out, err := BuildCSV(spec)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if lines[0] != "Name,Balance,Blocked" {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if lines[1] != "Rajesh,1500.5,false" {
		t.Errorf("Expected default string forms without quotes, got %q", lines[1])
	}
}

func TestBuildCSVMissingFieldIsEmptyCell(t *testing.T) {
	spec := model.ExportSpec{
		Columns: []model.Column{
			{Header: "A", DataKey: "a"},
			{Header: "B", DataKey: "b"},
		},
		Data: []model.Record{{"a": "x"}, {"a": "y", "b": nil}},
	}
	out, err := BuildCSV(spec)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if lines[1] != "x," || lines[2] != "y," {
		t.Errorf("Expected missing and nil values as empty cells, got %q / %q", lines[1], lines[2])
	}
}

func TestBuildCSVEmptyDataRefused(t *testing.T) {
	_, err := BuildCSV(model.ExportSpec{Title: "Empty"})
	if !errors.Is(err, ErrNoData) {
		t.Errorf("Expected ErrNoData, got %v", err)
	}
}

func TestColumnsInferredSorted(t *testing.T) {
	spec := model.ExportSpec{
		Data: []model.Record{{"zeta": 1, "alpha": 2, "mid": 3}},
	}
	cols := Columns(spec)
	want := []string{"alpha", "mid", "zeta"}
	if len(cols) != len(want) {
		t.Fatalf("Expected %d columns, got %d", len(want), len(cols))
	}
	for i, w := range want {
		if cols[i].DataKey != w || cols[i].Header != w {
			t.Errorf("Column %d: expected %q, got %+v", i, w, cols[i])
		}
	}
}

func TestColumnsExplicitWins(t *testing.T) {
	spec := model.ExportSpec{
		Columns: []model.Column{{Header: "User", DataKey: "userName"}},
		Data:    []model.Record{{"userName": "x", "other": "y"}},
	}
	cols := Columns(spec)
	if len(cols) != 1 || cols[0].Header != "User" {
		t.Errorf("Expected explicit projection, got %+v", cols)
	}
}

func TestBuildPDF(t *testing.T) {
	spec := model.ExportSpec{
		Title:    "User Report",
		Subtitle: "Kalyan players",
		Columns: []model.Column{
			{Header: "User", DataKey: "userName"},
			{Header: "Status", DataKey: "status"},
		},
		Data: []model.Record{
			{"userName": "Rajesh", "status": "Active"},
			{"userName": "Amit"},
		},
	}
	out, err := BuildPDF(spec, time.Now())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(string(out), "%PDF") {
		t.Error("Expected PDF magic header")
	}
}

func TestBuildPDFEmptyDataRefused(t *testing.T) {
	_, err := BuildPDF(model.ExportSpec{Title: "Empty"}, time.Now())
	if !errors.Is(err, ErrNoData) {
		t.Errorf("Expected ErrNoData, got %v", err)
	}
}

func TestBuildXLSX(t *testing.T) {
	spec := model.ExportSpec{
		Columns: []model.Column{{Header: "User", DataKey: "userName"}},
		Data:    []model.Record{{"userName": "Rajesh"}},
	}
	out, err := BuildXLSX(spec)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// XLSX is a zip container.
	if len(out) < 4 || out[0] != 'P' || out[1] != 'K' {
		t.Error("Expected zip magic header")
	}
}

func TestBuildXLSXEmptyDataRefused(t *testing.T) {
	_, err := BuildXLSX(model.ExportSpec{})
	if !errors.Is(err, ErrNoData) {
		t.Errorf("Expected ErrNoData, got %v", err)
	}
}

func TestReportFileName(t *testing.T) {
	at := time.UnixMilli(1724800000000)
	got := ReportFileName("user report", "csv", at)
	if got != "user_report_1724800000000.csv" {
		t.Errorf("Unexpected file name %q", got)
	}
	if got := ReportFileName("", "pdf", at); got != "report_1724800000000.pdf" {
		t.Errorf("Expected fallback base name, got %q", got)
	}
}

func TestManagerExportWritesFile(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(utils.NewOutputManager(dir))

	spec := model.ExportSpec{
		Title:    "Users",
		Filename: "users",
		Columns:  []model.Column{{Header: "User", DataKey: "userName"}},
		Data:     []model.Record{{"userName": "Rajesh"}},
	}
	result, err := m.Export(spec, "csv")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.Success || result.RecordCount != 1 {
		t.Errorf("Unexpected result %+v", result)
	}
	if !strings.HasPrefix(result.FileName, "users_") || !strings.HasSuffix(result.FileName, ".csv") {
		t.Errorf("Unexpected file name %q", result.FileName)
	}
	if _, err := os.Stat(filepath.Join(dir, result.FileName)); err != nil {
		t.Errorf("Expected report file on disk: %v", err)
	}
}

func TestManagerExportEmptyProducesNoFile(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(utils.NewOutputManager(dir))

	result, err := m.Export(model.ExportSpec{Filename: "empty"}, "csv")
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("Expected ErrNoData, got %v", err)
	}
	if result.Success {
		t.Error("Expected unsuccessful result")
	}
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("Failed to read output dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no file produced, found %d entries", len(entries))
	}
}

func TestManagerExportUnknownFormat(t *testing.T) {
	m := NewManager(utils.NewOutputManager(t.TempDir()))
	spec := model.ExportSpec{Data: []model.Record{{"a": 1}}}
	if _, err := m.Export(spec, "docx"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}
