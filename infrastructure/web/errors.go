package web

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the fallback error body used by the framework itself.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	status  int
}

func NewError(msg string) ErrorResponse {
	return ErrorResponse{Error: msg, status: http.StatusInternalServerError}
}

// NewErrorWithStatus builds an ErrorResponse with an explicit status code.
func NewErrorWithStatus(msg string, status int) ErrorResponse {
	return ErrorResponse{Error: msg, status: status}
}

func (e ErrorResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	return data, "application/json; charset=utf-8", err
}

func (e ErrorResponse) HTTPStatus() int {
	if e.status == 0 {
		return http.StatusInternalServerError
	}
	return e.status
}
