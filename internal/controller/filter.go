package controller

import (
	"fmt"

	"github.com/calebasbridge/personal-finance-app-sub001/internal/constants"
)

// Every filter setter resets pagination: offset back to zero, visible
// page back to one.

func (c *Controller) SetFilterAccount(accountID int64) {
	c.filter.AccountID = accountID
	c.resetPagination()
}

func (c *Controller) SetFilterDateRange(start, end string) {
	c.filter.StartDate = start
	c.filter.EndDate = end
	c.resetPagination()
}

func (c *Controller) SetFilterStatus(status string) {
	c.filter.Status = status
	c.resetPagination()
}

func (c *Controller) SetFilterSearch(search string) {
	c.filter.Search = search
	c.resetPagination()
}

func (c *Controller) ClearFilters() {
	c.filter.AccountID = 0
	c.filter.StartDate = ""
	c.filter.EndDate = ""
	c.filter.Status = ""
	c.filter.Search = ""
	c.resetPagination()
}

func (c *Controller) resetPagination() {
	c.filter.Offset = 0
	c.page = 1
}

// LastPage is the number of the final page for the current total count.
// An empty result still has one (empty) page.
func (c *Controller) LastPage() int {
	if c.totalCount <= 0 {
		return 1
	}
	last := (c.totalCount + constants.PageSize - 1) / constants.PageSize
	return last
}

func (c *Controller) CanPrevPage() bool { return c.page > 1 }
func (c *Controller) CanNextPage() bool { return c.page < c.LastPage() }

// SetPage moves to a page within bounds and recomputes the fetch offset.
func (c *Controller) SetPage(page int) error {
	if page < 1 || page > c.LastPage() {
		return fmt.Errorf("page %d out of range (1-%d)", page, c.LastPage())
	}
	c.page = page
	c.filter.Offset = (page - 1) * constants.PageSize
	return nil
}

func (c *Controller) NextPage() error {
	if !c.CanNextPage() {
		return fmt.Errorf("already on the last page")
	}
	return c.SetPage(c.page + 1)
}

func (c *Controller) PrevPage() error {
	if !c.CanPrevPage() {
		return fmt.Errorf("already on the first page")
	}
	return c.SetPage(c.page - 1)
}
