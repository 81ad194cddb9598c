package paginator

import "testing"

func TestAdjust(t *testing.T) {
	tests := []struct {
		name      string
		query     PaginateQuery
		wantPage  int
		wantLimit int64
	}{
		{"defaults applied", PaginateQuery{}, DefaultPage, DefaultLimit},
		{"negative page", PaginateQuery{Page: -3, Limit: 10}, DefaultPage, 10},
		{"limit capped", PaginateQuery{Page: 2, Limit: 5000}, 2, MaxLimit},
		{"valid untouched", PaginateQuery{Page: 4, Limit: 50}, 4, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.Adjust()
			if tt.query.Page != tt.wantPage {
				t.Errorf("got page %d, want %d", tt.query.Page, tt.wantPage)
			}
			if tt.query.Limit != tt.wantLimit {
				t.Errorf("got limit %d, want %d", tt.query.Limit, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	q := PaginateQuery{Page: 3, Limit: 20}
	if got := q.Offset(); got != 40 {
		t.Errorf("got %d, want 40", got)
	}
}

func TestToResponse(t *testing.T) {
	p := Paginator{Total: 45, Count: 20, PerPage: 20, CurrentPage: 2}
	resp := p.ToResponse()

	if resp.TotalPages != 3 {
		t.Errorf("got %d total pages, want 3", resp.TotalPages)
	}
	if !resp.HasNext {
		t.Error("expected HasNext on page 2 of 3")
	}
	if !resp.HasPrev {
		t.Error("expected HasPrev on page 2")
	}

	last := Paginator{Total: 45, Count: 5, PerPage: 20, CurrentPage: 3}
	if last.ToResponse().HasNext {
		t.Error("did not expect HasNext on the last page")
	}

	empty := Paginator{}
	if got := empty.ToResponse().TotalPages; got != 0 {
		t.Errorf("got %d total pages for empty result, want 0", got)
	}
}
