package domain

import (
	"fmt"
	"time"
)

// Entity is any server-owned record managed through paginated lists.
type Entity interface {
	EntityID() int64
}

// PageSizes are the allowed values for ListQuery.PageSize.
var PageSizes = []int{10, 20, 50, 100}

// DateRange is an inclusive ISO date interval with Start <= End.
type DateRange struct {
	Start string
	End   string
}

// Validate checks both bounds parse as dates and are ordered.
func (r DateRange) Validate() error {
	start, err := time.Parse("2006-01-02", r.Start)
	if err != nil {
		return ValidationError{Field: "startDate", Msg: "must be YYYY-MM-DD"}
	}
	end, err := time.Parse("2006-01-02", r.End)
	if err != nil {
		return ValidationError{Field: "endDate", Msg: "must be YYYY-MM-DD"}
	}
	if end.Before(start) {
		return ValidationError{Field: "dateRange", Msg: "start must not be after end"}
	}
	return nil
}

// ListQuery describes which page of a resource collection is requested.
// Mutated only by user interaction; every change triggers a re-fetch.
type ListQuery struct {
	Page      int
	PageSize  int
	Filters   map[string]string
	Search    string
	DateRange *DateRange
}

// DefaultQuery returns the first page with the default page size.
func DefaultQuery(pageSize int) ListQuery {
	if !ValidPageSize(pageSize) {
		pageSize = 20
	}
	return ListQuery{Page: 1, PageSize: pageSize, Filters: map[string]string{}}
}

// ValidPageSize reports whether n is one of the allowed page sizes.
func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if n == s {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so a dispatched fetch keeps the query it was
// issued with.
func (q ListQuery) Clone() ListQuery {
	out := q
	if q.Filters != nil {
		out.Filters = make(map[string]string, len(q.Filters))
		for k, v := range q.Filters {
			out.Filters[k] = v
		}
	}
	if q.DateRange != nil {
		dr := *q.DateRange
		out.DateRange = &dr
	}
	return out
}

// Key renders a stable representation used to compare queries.
func (q ListQuery) Key() string {
	return fmt.Sprintf("p=%d ps=%d f=%v s=%q dr=%v", q.Page, q.PageSize, q.Filters, q.Search, q.DateRange)
}

// ListResult is the server response to a ListQuery. Replaced wholesale on
// every fetch, never merged.
type ListResult[T any] struct {
	Items      []T
	Total      int
	TotalPages int
}

// TotalPagesFor derives the page count: ceil(total/pageSize), 0 when total
// is 0. This matches the backend's pagination.pages field.
func TotalPagesFor(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage forces page into [1, max(1, totalPages)].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages >= 1 && page > totalPages {
		return totalPages
	}
	return page
}
