package domain

import "testing"

func TestTotalPagesFor(t *testing.T) {
	cases := []struct {
		total, pageSize, want int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{45, 20, 3},
		{100, 100, 1},
		{-5, 20, 0},
		{10, 0, 0},
	}
	for _, tc := range cases {
		if got := TotalPagesFor(tc.total, tc.pageSize); got != tc.want {
			t.Errorf("TotalPagesFor(%d, %d) = %d, want %d", tc.total, tc.pageSize, got, tc.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		page, totalPages, want int
	}{
		{0, 5, 1},
		{-3, 5, 1},
		{3, 5, 3},
		{9, 5, 5},
		{9, 0, 9},
		{1, 0, 1},
	}
	for _, tc := range cases {
		if got := ClampPage(tc.page, tc.totalPages); got != tc.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tc.page, tc.totalPages, got, tc.want)
		}
	}
}

func TestDateRangeValidate(t *testing.T) {
	if err := (DateRange{Start: "2026-01-01", End: "2026-01-31"}).Validate(); err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
	if err := (DateRange{Start: "2026-01-05", End: "2026-01-05"}).Validate(); err != nil {
		t.Fatalf("single-day range rejected: %v", err)
	}
	if err := (DateRange{Start: "2026-02-01", End: "2026-01-01"}).Validate(); !IsValidation(err) {
		t.Fatalf("inverted range: err = %v, want ValidationError", err)
	}
	if err := (DateRange{Start: "01/02/2026", End: "2026-03-01"}).Validate(); !IsValidation(err) {
		t.Fatalf("malformed start: err = %v, want ValidationError", err)
	}
}

func TestDefaultQueryFallsBackToTwenty(t *testing.T) {
	if q := DefaultQuery(7); q.PageSize != 20 {
		t.Fatalf("PageSize = %d, want fallback 20", q.PageSize)
	}
	if q := DefaultQuery(50); q.PageSize != 50 || q.Page != 1 {
		t.Fatalf("query = %+v", q)
	}
}

func TestCloneIsolatesFiltersAndRange(t *testing.T) {
	q := DefaultQuery(20)
	q.Filters["status"] = "paid"
	q.DateRange = &DateRange{Start: "2026-01-01", End: "2026-01-31"}

	c := q.Clone()
	c.Filters["status"] = "pending"
	c.DateRange.Start = "2025-01-01"

	if q.Filters["status"] != "paid" {
		t.Fatal("clone shares the filters map")
	}
	if q.DateRange.Start != "2026-01-01" {
		t.Fatal("clone shares the date range")
	}
}

func TestErrorClassification(t *testing.T) {
	if !IsBusinessRejection(APIError{Status: 400, Message: "nope"}) {
		t.Fatal("400 not a business rejection")
	}
	if IsBusinessRejection(APIError{Status: 500, Message: "boom"}) {
		t.Fatal("500 classified as business rejection")
	}
	if !IsServerFailure(APIError{Status: 503}) {
		t.Fatal("503 not a server failure")
	}
	if !IsUnauthorized(UnauthorizedError{}) {
		t.Fatal("UnauthorizedError not recognized")
	}
	if got := (NetworkError{}).Error(); got != "connection error, please try again" {
		t.Fatalf("network message = %q", got)
	}
}
