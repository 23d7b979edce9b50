package pagination

import (
	"testing"
	"time"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name        string
		in          Params
		wantPage    int
		wantPerPage int
	}{
		{"defaults applied", Params{}, 1, 20},
		{"negative page", Params{Page: -3, PerPage: 10}, 1, 10},
		{"per page capped", Params{Page: 2, PerPage: 500}, 2, 100},
		{"valid passthrough", Params{Page: 4, PerPage: 25}, 4, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Validate()
			if tt.in.Page != tt.wantPage || tt.in.PerPage != tt.wantPerPage {
				t.Errorf("got page=%d per_page=%d, want page=%d per_page=%d",
					tt.in.Page, tt.in.PerPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 20}
	if got := p.Offset(); got != 40 {
		t.Errorf("Offset() = %d, want 40", got)
	}
}

func TestNewPagination(t *testing.T) {
	pg := NewPagination(2, 20, 45)
	if pg.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", pg.TotalPages)
	}
	if !pg.HasNext || !pg.HasPrev {
		t.Errorf("expected both HasNext and HasPrev on middle page")
	}
}

func TestCursorRoundTrip(t *testing.T) {
	created := time.Date(2026, 3, 7, 9, 30, 0, 0, time.UTC)
	encoded := EncodeCursor("abc-123", created)

	params := CursorParams{Cursor: encoded, Limit: 20}
	cursor, err := params.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cursor.ID != "abc-123" {
		t.Errorf("ID = %q, want abc-123", cursor.ID)
	}
	if !cursor.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", cursor.CreatedAt, created)
	}
}

func TestDecodeEmptyCursor(t *testing.T) {
	params := CursorParams{}
	cursor, err := params.Decode()
	if err != nil || cursor != nil {
		t.Errorf("empty cursor should decode to nil, got %v, %v", cursor, err)
	}
}

func TestDecodeInvalidCursor(t *testing.T) {
	params := CursorParams{Cursor: "not base64!!"}
	if _, err := params.Decode(); err == nil {
		t.Error("expected error for malformed cursor")
	}
}

type listItem struct {
	id      string
	created time.Time
}

func TestNewCursorPaginationTrimsOverflow(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	items := []listItem{
		{"a", base},
		{"b", base.Add(time.Hour)},
		{"c", base.Add(2 * time.Hour)},
	}

	pg, trimmed := NewCursorPagination(items, 2,
		func(i listItem) string { return i.id },
		func(i listItem) time.Time { return i.created })

	if len(trimmed) != 2 {
		t.Fatalf("len(trimmed) = %d, want 2", len(trimmed))
	}
	if !pg.HasNext {
		t.Error("expected HasNext with overflow row present")
	}
	if pg.NextCursor == nil {
		t.Fatal("expected next cursor")
	}
	cursor, err := (&CursorParams{Cursor: *pg.NextCursor}).Decode()
	if err != nil {
		t.Fatalf("Decode next cursor: %v", err)
	}
	if cursor.ID != "b" {
		t.Errorf("next cursor points at %q, want b", cursor.ID)
	}
}

func TestNewCursorPaginationLastPage(t *testing.T) {
	items := []listItem{{"a", time.Now()}}
	pg, trimmed := NewCursorPagination(items, 2,
		func(i listItem) string { return i.id },
		func(i listItem) time.Time { return i.created })

	if pg.HasNext || pg.NextCursor != nil {
		t.Error("final page should not advertise a next cursor")
	}
	if len(trimmed) != 1 {
		t.Errorf("len(trimmed) = %d, want 1", len(trimmed))
	}
}
