package rest

import (
	"net/http"
	"strconv"

	"postboard/pkg/pagination"
)

const nextCursorHeader = "X-Next-Cursor"

func toPageRequest(r *http.Request) (pagination.PageRequest, error) {
	q := r.URL.Query()

	var req pagination.PageRequest
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return req, &requestError{msg: "field 'limit' must be a positive integer"}
		}
		req.Limit = limit
	}
	if after := q.Get("after"); after != "" {
		req.AfterCursor = &after
	}
	return req, nil
}

func nextCursor[T any](page pagination.Page[T]) *string {
	if !page.HasNextPage {
		return nil
	}
	return page.EndCursor
}
