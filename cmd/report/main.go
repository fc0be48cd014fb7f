package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"matka-admin/internal/export"
	"matka-admin/internal/filter"
	"matka-admin/internal/model"
	"matka-admin/internal/segment"
	"matka-admin/internal/source"
	"matka-admin/pkg/utils"
)

// One-shot report generation from the command line, for operators who
// need an export without the API server running.
func main() {
	input := flag.String("input", "", "dataset file (.csv or .json)")
	format := flag.String("format", "csv", "output format: csv, pdf or xlsx")
	title := flag.String("title", "User Report", "report title")
	filename := flag.String("filename", "", "base file name (defaults to the title)")
	out := flag.String("out", "exports", "output directory")
	seg := flag.String("segment", "", "cohort: all, play-active, play-inactive, block-devices")
	status := flag.String("status", "", "exact status match")
	search := flag.String("search", "", "free-text search")
	start := flag.String("start", "", "registration range start (DD/MM/YYYY)")
	end := flag.String("end", "", "registration range end (DD/MM/YYYY)")
	flag.Parse()

	if *input == "" {
		fmt.Println("❌ -input is required")
		flag.Usage()
		os.Exit(1)
	}

	records, err := source.LoadFile(*input)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	cohort := segment.Classify(records, model.Segment(*seg), now, model.DefaultSegmentConfig())
	filtered := filter.Apply(cohort, model.FilterSpec{
		DateFilter:   model.DateFilter{StartDate: *start, EndDate: *end},
		StatusFilter: *status,
		SearchQuery:  *search,
	}, model.DefaultUserFilterConfig())

	base := *filename
	if base == "" {
		base = *title
	}

	output := utils.NewOutputManager(*out)
	if err := output.EnsureOutputDirExists(); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	mgr := export.NewManager(output)
	result, err := mgr.Export(model.ExportSpec{
		Title:    *title,
		Filename: base,
		Data:     filtered,
	}, *format)
	if err != nil {
		fmt.Printf("❌ Export failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Wrote %d records to %s\n", result.RecordCount, result.Path)
}
