// Package fopbridge provides the list envelopes returned by the bridges.
package fopbridge

import (
	"encoding/json"

	"github.com/jrazmi/dashboard/core/scaffolding/fop"
)

// ListResponse is the unified list envelope. Page is only present when the
// request asked for paging.
type ListResponse[T any] struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Data    []T           `json:"data"`
	Page    *fop.PageInfo `json:"page,omitempty"`
}

// NewListResponse wraps records without paging information.
func NewListResponse[T any](records []T) ListResponse[T] {
	if records == nil {
		records = []T{}
	}
	return ListResponse[T]{Success: true, Count: len(records), Data: records}
}

// NewPagedResponse wraps one page of records. Count is the page length.
func NewPagedResponse[T any](records []T, page fop.PageInfo) ListResponse[T] {
	resp := NewListResponse(records)
	resp.Page = &page
	return resp
}

func (l ListResponse[T]) Encode() ([]byte, string, error) {
	data, err := json.Marshal(l)
	return data, "application/json; charset=utf-8", err
}

// TotalListResponse is a list envelope carrying a summed amount.
type TotalListResponse[T any] struct {
	Success bool    `json:"success"`
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Data    []T     `json:"data"`
}

func NewTotalListResponse[T any](records []T, total float64) TotalListResponse[T] {
	if records == nil {
		records = []T{}
	}
	return TotalListResponse[T]{Success: true, Count: len(records), Total: total, Data: records}
}

func (l TotalListResponse[T]) Encode() ([]byte, string, error) {
	data, err := json.Marshal(l)
	return data, "application/json; charset=utf-8", err
}
