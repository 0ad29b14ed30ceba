package data

import (
	"mdobre/scriptura/internal/validator"
)

type Filters struct {
	Page     int
	PageSize int
}

func (f Filters) limit() int {
	return f.PageSize
}

func (f Filters) offset() int {
	return (f.Page - 1) * f.PageSize
}

// Validate performs generic pagination validation
// Returns validator with errors if invalid
func (f *Filters) Validate(v *validator.Validator) {
	// Generic pagination rules (same for all endpoint)
	v.Check(f.Page > 0, "page", "must be at least 1")
	v.Check(f.Page <= 10000, "page", "must be at most 10000")
	v.Check(f.PageSize > 0, "page_size", "must be at least 1")
	v.Check(f.PageSize <= 1000, "page_size", "must be at most 1000")
}

type Metadata struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// calculateMetadata computes the navigation block for a page. A page past the
// last one simply reports HasNext false alongside its empty slice.
func calculateMetadata(totalItems, page, pageSize int) Metadata {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}

	return Metadata{
		Page:        page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}
