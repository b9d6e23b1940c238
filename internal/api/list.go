package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"backoffice/internal/domain"
)

type pagination struct {
	Total int `json:"total"`
	Pages int `json:"pages"`
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

// queryValues encodes a ListQuery the way every admin list endpoint expects:
// page, limit, filter fields, search, startDate/endDate.
func queryValues(q domain.ListQuery) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.PageSize))
	for key, val := range q.Filters {
		if val != "" {
			v.Set(key, val)
		}
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.DateRange != nil {
		v.Set("startDate", q.DateRange.Start)
		v.Set("endDate", q.DateRange.End)
	}
	return v
}

// fetchList retrieves one page of a resource collection. The server keys the
// items by resource name, so the caller names the key. TotalPages is derived
// from total and the requested page size.
func fetchList[T any](ctx context.Context, c *Client, path, itemsKey string, q domain.ListQuery) (domain.ListResult[T], error) {
	var out domain.ListResult[T]

	var payload map[string]json.RawMessage
	if err := c.request(ctx, http.MethodGet, path, queryValues(q), nil, &payload); err != nil {
		return out, err
	}

	rawItems, ok := payload[itemsKey]
	if !ok {
		return out, domain.APIError{Status: http.StatusOK, Message: "malformed list response: missing " + itemsKey}
	}
	if err := json.Unmarshal(rawItems, &out.Items); err != nil {
		return out, domain.APIError{Status: http.StatusOK, Message: "malformed list response: " + err.Error()}
	}

	rawPg, ok := payload["pagination"]
	if !ok {
		return out, domain.APIError{Status: http.StatusOK, Message: "malformed list response: missing pagination"}
	}
	var pg pagination
	if err := json.Unmarshal(rawPg, &pg); err != nil {
		return out, domain.APIError{Status: http.StatusOK, Message: "malformed list response: " + err.Error()}
	}

	out.Total = pg.Total
	out.TotalPages = domain.TotalPagesFor(pg.Total, q.PageSize)
	return out, nil
}
