package paginate

import (
	"fmt"

	"matka-admin/internal/model"
)

// Paginate slices records into the requested 1-indexed page. A page
// number of zero, negative, or past the end yields an empty items list
// with intact metadata; clamping is the caller's job. A non-positive
// pageSize is a precondition violation and returns an error instead of
// inheriting divide-by-zero behavior.
func Paginate(records []model.Record, page, pageSize int) (model.Page, error) {
	if pageSize <= 0 {
		return model.Page{}, fmt.Errorf("page size must be positive, got %d", pageSize)
	}

	total := len(records)
	totalPages := TotalPages(total, pageSize)

	p := model.Page{
		Items:        []model.Record{},
		CurrentPage:  page,
		TotalPages:   totalPages,
		ItemsPerPage: pageSize,
		TotalItems:   total,
		HasNext:      page >= 1 && page < totalPages,
		HasPrev:      page > 1 && page <= totalPages,
	}

	if page < 1 {
		return p, nil
	}

	start := (page - 1) * pageSize
	if start >= total {
		return p, nil
	}

	end := start + pageSize
	if end > total {
		end = total
	}
	p.Items = append(p.Items, records[start:end]...)
	return p, nil
}

// TotalPages is ceil(count/pageSize). Zero records means zero pages.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}
