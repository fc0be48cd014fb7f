package paginate

import (
	"fmt"
	"reflect"
	"testing"

	"matka-admin/internal/model"
)

func makeRecords(n int) []model.Record {
	records := make([]model.Record, n)
	for i := 0; i < n; i++ {
		records[i] = model.Record{"id": fmt.Sprintf("u%03d", i)}
	}
	return records
}

func TestPaginateFirstPage(t *testing.T) {
	p, err := Paginate(makeRecords(25), 1, 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(p.Items) != 10 {
		t.Errorf("Expected 10 items, got %d", len(p.Items))
	}
	if p.TotalPages != 3 || p.TotalItems != 25 {
		t.Errorf("Expected 3 pages of 25 items, got %d pages of %d", p.TotalPages, p.TotalItems)
	}
	if !p.HasNext || p.HasPrev {
		t.Errorf("Expected hasNext and no hasPrev on page 1, got next=%v prev=%v", p.HasNext, p.HasPrev)
	}
}

func TestPaginateLastPartialPage(t *testing.T) {
	p, err := Paginate(makeRecords(25), 3, 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(p.Items) != 5 {
		t.Errorf("Expected 5 items on the last page, got %d", len(p.Items))
	}
	if p.HasNext || !p.HasPrev {
		t.Errorf("Expected hasPrev and no hasNext on the last page, got next=%v prev=%v", p.HasNext, p.HasPrev)
	}
}

func TestPaginateNeverExceedsPageSize(t *testing.T) {
	records := makeRecords(17)
	for page := 1; page <= TotalPages(len(records), 5); page++ {
		p, err := Paginate(records, page, 5)
		if err != nil {
			t.Fatalf("Unexpected error on page %d: %v", page, err)
		}
		if len(p.Items) > 5 {
			t.Errorf("Page %d has %d items, expected at most 5", page, len(p.Items))
		}
	}
}

func TestPaginateAllPagesReproduceInput(t *testing.T) {
	records := makeRecords(23)
	var collected []model.Record
	for page := 1; page <= TotalPages(len(records), 7); page++ {
		p, err := Paginate(records, page, 7)
		if err != nil {
			t.Fatalf("Unexpected error on page %d: %v", page, err)
		}
		collected = append(collected, p.Items...)
	}
	if !reflect.DeepEqual(collected, records) {
		t.Errorf("Expected concatenated pages to equal input: got %d of %d records", len(collected), len(records))
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	records := makeRecords(10)
	for _, page := range []int{0, -1, 5, 100} {
		p, err := Paginate(records, page, 5)
		if err != nil {
			t.Fatalf("Unexpected error for page %d: %v", page, err)
		}
		if len(p.Items) != 0 {
			t.Errorf("Expected empty items for page %d, got %d", page, len(p.Items))
		}
		if p.TotalPages != 2 || p.TotalItems != 10 {
			t.Errorf("Expected metadata intact for page %d, got %+v", page, p)
		}
	}
}

func TestPaginateRejectsNonPositivePageSize(t *testing.T) {
	for _, size := range []int{0, -3} {
		if _, err := Paginate(makeRecords(5), 1, size); err == nil {
			t.Errorf("Expected error for page size %d", size)
		}
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	p, err := Paginate(nil, 1, 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(p.Items) != 0 || p.TotalPages != 0 || p.TotalItems != 0 {
		t.Errorf("Expected empty page for empty input, got %+v", p)
	}
	if p.HasNext || p.HasPrev {
		t.Error("Expected no navigation on an empty collection")
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct{ count, size, want int }{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}
	for _, c := range cases {
		if got := TotalPages(c.count, c.size); got != c.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", c.count, c.size, got, c.want)
		}
	}
}
