package fop

import "testing"

func TestParsePageNumber(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		size    string
		want    PageNumber
		wantErr bool
	}{
		{name: "defaults", want: PageNumber{Page: 1, PageSize: DefaultPageSize}},
		{name: "explicit", page: "3", size: "10", want: PageNumber{Page: 3, PageSize: 10}},
		{name: "page below one", page: "-2", want: PageNumber{Page: 1, PageSize: DefaultPageSize}},
		{name: "zero size", size: "0", wantErr: true},
		{name: "oversize", size: "101", wantErr: true},
		{name: "garbage", page: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePageNumber(tt.page, tt.size)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseOrder(t *testing.T) {
	def := NewOrder("createdAt", DESC)
	allowed := []string{"createdAt", "dueDate", "priority"}

	got, err := ParseOrder("", "", allowed, def)
	if err != nil || got != def {
		t.Fatalf("defaults: got %+v, %v", got, err)
	}

	got, err = ParseOrder("priority", "ASC", allowed, def)
	if err != nil {
		t.Fatal(err)
	}
	if got.Field != "priority" || got.Direction != ASC {
		t.Errorf("got %+v", got)
	}

	if _, err := ParseOrder("title", "", allowed, def); err == nil {
		t.Error("expected error for unknown field")
	}
	if _, err := ParseOrder("", "sideways", allowed, def); err == nil {
		t.Error("expected error for unknown direction")
	}
}
