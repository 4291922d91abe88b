// Package fop holds the filter, order and page values shared by the
// repositories and the derived views.
package fop

import (
	"fmt"
	"strconv"
)

// DefaultPageSize matches the task list page length of the dashboard.
const DefaultPageSize = 5

// MaxPageSize bounds the page size a client can ask for.
const MaxPageSize = 100

// PageNumber represents a 1-based page request.
type PageNumber struct {
	Page     int
	PageSize int
}

// PageInfo returns pagination data for a page-number request.
type PageInfo struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ParsePageNumber parses the page and pageSize query values. A page below 1
// is treated as 1.
func ParsePageNumber(page string, pageSize string) (PageNumber, error) {
	p := PageNumber{Page: 1, PageSize: DefaultPageSize}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil {
			return PageNumber{}, fmt.Errorf("page conversion: %w", err)
		}
		if n > 1 {
			p.Page = n
		}
	}

	if pageSize != "" {
		n, err := strconv.Atoi(pageSize)
		if err != nil {
			return PageNumber{}, fmt.Errorf("page size conversion: %w", err)
		}
		if n <= 0 {
			return PageNumber{}, fmt.Errorf("page size too small, must be larger than 0")
		}
		if n > MaxPageSize {
			return PageNumber{}, fmt.Errorf("page size too large, must be at most %d", MaxPageSize)
		}
		p.PageSize = n
	}

	return p, nil
}
