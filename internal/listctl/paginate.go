package listctl

import "github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/model"

// DefaultPageSize is the number of rows on a page unless configured otherwise.
const DefaultPageSize = 5

// PageMeta describes the current pagination window.
type PageMeta struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// TotalPages returns the number of pages needed for n items. Never less than 1.
func TotalPages(n, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	pages := n / pageSize
	if n%pageSize > 0 {
		pages++
	}
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate returns the items on the 1-based page and the total page count.
// A page outside [1, totalPages] yields no items; callers clamp.
func Paginate(records []model.Interview, page, pageSize int) ([]model.Interview, int) {
	if pageSize < 1 {
		pageSize = 1
	}
	total := TotalPages(len(records), pageSize)
	if page < 1 {
		return []model.Interview{}, total
	}

	start := (page - 1) * pageSize
	if start >= len(records) {
		return []model.Interview{}, total
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end], total
}

func clamp(page, total int) int {
	if page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}
	return page
}
