package errs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/jrazmi/dashboard/sdk/validation"
)

func TestNewfCapturesSource(t *testing.T) {
	err := Newf(NotFound, "task %s not found", "abc")

	if err.Message != "task abc not found" {
		t.Errorf("message = %q", err.Message)
	}
	if !strings.Contains(err.FileName, "errs_test.go") {
		t.Errorf("file name = %q, want caller file", err.FileName)
	}
	if !strings.Contains(err.FuncName, "TestNewfCapturesSource") {
		t.Errorf("func name = %q, want caller func", err.FuncName)
	}
	if err.HTTPStatus() != http.StatusNotFound {
		t.Errorf("status = %d", err.HTTPStatus())
	}
}

func TestWrapKeepsCauseAndFields(t *testing.T) {
	var fields validation.Errors
	fields.Add("title", "Title is required")

	err := Wrap(InvalidArgument, fields, "Validation failed")

	var cause validation.Errors
	if !errors.As(err, &cause) {
		t.Fatal("cause lost")
	}
	if len(err.Fields) != 1 || err.Fields[0].Field != "title" {
		t.Fatalf("fields = %+v", err.Fields)
	}

	data, _, encErr := err.Encode()
	if encErr != nil {
		t.Fatal(encErr)
	}

	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatal(err)
	}
	if body["success"] != false {
		t.Errorf("success = %v", body["success"])
	}
	if body["error"] != "Validation failed" {
		t.Errorf("error = %v", body["error"])
	}
	if _, ok := body["details"]; !ok {
		t.Error("details missing")
	}
	if _, ok := body["message"]; ok {
		t.Error("message should be omitted when empty")
	}
}

func TestGetError(t *testing.T) {
	wrapped := errors.Join(errors.New("other"), Newf(Internal, "boom"))
	if !IsError(wrapped) {
		t.Fatal("IsError = false")
	}
	if got := GetError(errors.New("plain")); got != nil {
		t.Errorf("GetError(plain) = %v", got)
	}
}
