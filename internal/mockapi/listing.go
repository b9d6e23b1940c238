package mockapi

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type listParams struct {
	Page      int
	Limit     int
	Status    string
	Search    string
	Category  string
	StartDate string
	EndDate   string
}

func parseListParams(c *gin.Context) listParams {
	p := listParams{Page: 1, Limit: 20}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		p.Limit = v
	}
	p.Status = strings.TrimSpace(c.Query("status"))
	p.Search = strings.TrimSpace(c.Query("search"))
	p.Category = strings.TrimSpace(c.Query("category"))
	p.StartDate = strings.TrimSpace(c.Query("startDate"))
	p.EndDate = strings.TrimSpace(c.Query("endDate"))
	return p
}

// window slices one page out of the filtered set and builds the pagination
// block the clients expect.
func window[T any](items []T, p listParams) ([]T, gin.H) {
	total := len(items)
	pages := 0
	if total > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}

	start := (p.Page - 1) * p.Limit
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}

	pagination := gin.H{
		"total": total,
		"pages": pages,
		"page":  p.Page,
		"limit": p.Limit,
	}
	return items[start:end], pagination
}

func matchSearch(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// inDateRange compares an RFC3339 timestamp against inclusive YYYY-MM-DD
// bounds. Empty bounds pass.
func inDateRange(createdAt, start, end string) bool {
	if len(createdAt) < 10 {
		return start == "" && end == ""
	}
	day := createdAt[:10]
	if start != "" && day < start {
		return false
	}
	if end != "" && day > end {
		return false
	}
	return true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
