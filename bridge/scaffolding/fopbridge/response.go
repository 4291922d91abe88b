package fopbridge

import (
	"encoding/json"
	"net/http"
)

// ============================================================================
// Standard Response Types
// ============================================================================

// RecordResponse wraps a single record.
type RecordResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	status  int
}

func NewRecordResponse[T any](record T) RecordResponse[T] {
	return RecordResponse[T]{Success: true, Data: record, status: http.StatusOK}
}

// NewCreatedResponse answers a create with 201.
func NewCreatedResponse[T any](record T) RecordResponse[T] {
	return RecordResponse[T]{Success: true, Data: record, status: http.StatusCreated}
}

func (r RecordResponse[T]) Encode() ([]byte, string, error) {
	data, err := json.Marshal(r)
	return data, "application/json; charset=utf-8", err
}

func (r RecordResponse[T]) HTTPStatus() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// DeletedResponse is the body returned after a delete: an empty data object.
type DeletedResponse struct {
	Success bool     `json:"success"`
	Data    struct{} `json:"data"`
}

func NewDeletedResponse() DeletedResponse {
	return DeletedResponse{Success: true}
}

func (d DeletedResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(d)
	return data, "application/json; charset=utf-8", err
}

// MessageResponse carries a plain status message.
type MessageResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
}

func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}

func (m MessageResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(m)
	return data, "application/json; charset=utf-8", err
}
