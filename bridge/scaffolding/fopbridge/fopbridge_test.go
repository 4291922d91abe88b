package fopbridge

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jrazmi/dashboard/core/scaffolding/fop"
)

func TestListResponseNeverNull(t *testing.T) {
	data, _, err := NewListResponse[string](nil).Encode()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"success":true,"count":0,"data":[]}` {
		t.Errorf("got %s", data)
	}
}

func TestPagedResponse(t *testing.T) {
	resp := NewPagedResponse([]int{1, 2}, fop.PageInfo{Page: 2, PageSize: 2, Total: 5, TotalPages: 3})

	data, _, err := resp.Encode()
	if err != nil {
		t.Fatal(err)
	}

	var body struct {
		Count int          `json:"count"`
		Page  fop.PageInfo `json:"page"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatal(err)
	}
	if body.Count != 2 || body.Page.TotalPages != 3 {
		t.Errorf("got %+v", body)
	}
}

func TestCreatedStatus(t *testing.T) {
	if got := NewCreatedResponse("x").HTTPStatus(); got != http.StatusCreated {
		t.Errorf("status = %d", got)
	}
	data, _, _ := NewDeletedResponse().Encode()
	if string(data) != `{"success":true,"data":{}}` {
		t.Errorf("deleted body = %s", data)
	}
}
