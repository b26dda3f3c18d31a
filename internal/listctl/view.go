package listctl

import (
	"fmt"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/model"
)

// View is the current page of the filtered, sorted collection.
type View struct {
	Items []model.Interview `json:"items"`
	Meta  PageMeta          `json:"meta"`
}

// SetSearch sets the search term and returns to the first page.
func (c *Controller) SetSearch(term string) {
	c.search = term
	c.page = 1
}

// Search returns the current search term.
func (c *Controller) Search() string {
	return c.search
}

// SetStatusFilter sets the status filter ("all" or a status) and returns to the first page.
func (c *Controller) SetStatusFilter(f string) error {
	if f == "" {
		f = model.StatusAll
	}
	if !validStatusFilter(f) {
		return &ValidationError{Fields: map[string]string{"status": fmt.Sprintf("unknown status filter %q", f)}}
	}
	c.statusFilter = f
	c.page = 1
	return nil
}

// StatusFilter returns the current status filter.
func (c *Controller) StatusFilter() string {
	return c.statusFilter
}

// SetAscending sets the sort direction on ScheduledAt.
func (c *Controller) SetAscending(asc bool) {
	c.ascending = asc
}

// Ascending reports whether the view is sorted earliest first.
func (c *Controller) Ascending() bool {
	return c.ascending
}

// ToggleSort flips the sort direction.
func (c *Controller) ToggleSort() {
	c.ascending = !c.ascending
}

// PageSize returns the number of rows per page.
func (c *Controller) PageSize() int {
	return c.pageSize
}

// Page returns the current 1-based page, clamped to the filtered result.
func (c *Controller) Page() int {
	c.clampPage()
	return c.page
}

// TotalPages returns the page count of the filtered result.
func (c *Controller) TotalPages() int {
	return TotalPages(len(c.filtered()), c.pageSize)
}

// NextPage advances one page. No-op on the last page.
func (c *Controller) NextPage() {
	if c.page < c.TotalPages() {
		c.page++
	}
}

// PrevPage goes back one page. No-op on the first page.
func (c *Controller) PrevPage() {
	if c.page > 1 {
		c.page--
	}
}

// GoToPage jumps to page, clamped into the valid range.
func (c *Controller) GoToPage(page int) {
	c.page = clamp(page, c.TotalPages())
}

// Filtered returns the whole filtered and sorted result, ignoring pagination.
func (c *Controller) Filtered() []model.Interview {
	return c.filtered()
}

// View returns the rows of the current page.
func (c *Controller) View() View {
	rows := c.filtered()
	c.page = clamp(c.page, TotalPages(len(rows), c.pageSize))
	items, total := Paginate(rows, c.page, c.pageSize)

	return View{
		Items: items,
		Meta: PageMeta{
			CurrentPage: c.page,
			PageSize:    c.pageSize,
			TotalPages:  total,
			TotalItems:  len(rows),
			HasPrevious: c.page > 1,
			HasNext:     c.page < total,
		},
	}
}

func (c *Controller) filtered() []model.Interview {
	return Sort(Filter(c.records, c.search, c.statusFilter), c.ascending)
}

func (c *Controller) clampPage() {
	c.page = clamp(c.page, c.TotalPages())
}
