package listctl

import "github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/model"

// ToggleOne flips the selection of id. Unknown ids are ignored.
func (c *Controller) ToggleOne(id string) {
	if _, ok := c.selected[id]; ok {
		delete(c.selected, id)
		return
	}
	if c.indexOf(id) >= 0 {
		c.selected[id] = struct{}{}
	}
}

// ToggleAllOnPage deselects the page's ids when all of them are selected,
// and otherwise selects the ones that are not. Selections on other pages are kept.
func (c *Controller) ToggleAllOnPage(items []model.Interview) {
	if len(items) == 0 {
		return
	}

	all := true
	for _, r := range items {
		if _, ok := c.selected[r.ID]; !ok {
			all = false
			break
		}
	}

	for _, r := range items {
		if all {
			delete(c.selected, r.ID)
			continue
		}
		if c.indexOf(r.ID) >= 0 {
			c.selected[r.ID] = struct{}{}
		}
	}
}

// ClearSelection deselects everything.
func (c *Controller) ClearSelection() {
	clear(c.selected)
}

// IsSelected reports whether id is selected.
func (c *Controller) IsSelected(id string) bool {
	_, ok := c.selected[id]
	return ok
}

// Selected returns the selected ids in collection order.
func (c *Controller) Selected() []string {
	ids := make([]string, 0, len(c.selected))
	for _, r := range c.records {
		if _, ok := c.selected[r.ID]; ok {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// SelectedRecords returns the selected records in collection order.
func (c *Controller) SelectedRecords() []model.Interview {
	out := make([]model.Interview, 0, len(c.selected))
	for _, r := range c.records {
		if _, ok := c.selected[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}
