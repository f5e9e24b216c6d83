package pagination

import (
	"net/url"
	"strconv"
)

// Request describes the page being asked for.
type Request struct {
	Cursor     Cursor
	Limit      int
	CursorType string
	BaseURL    string     // path used in Link header targets, e.g. "/api/favorites"
	Query      url.Values // extra query parameters preserved in links
}

// Page is one page of a collection plus navigation metadata.
type Page[T any] struct {
	Items      []T
	Total      int
	LinkHeader string
	NextCursor string
	PrevCursor string
}

// Paginate slices items after the cursor position. A cursor value that is
// not found restarts from the beginning; callers that want a 400 instead
// check membership first.
func Paginate[T any](items []T, req Request, getID func(T) string) Page[T] {
	total := len(items)
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	start := 0
	if req.Cursor.Value != "" {
		for i, item := range items {
			if getID(item) == req.Cursor.Value {
				start = i + 1
				break
			}
		}
	}
	end := min(start+limit, total)
	pageItems := items[start:end]

	var next, prev string
	if end < total && len(pageItems) > 0 {
		next = Cursor{Type: req.CursorType, Value: getID(pageItems[len(pageItems)-1])}.Encode()
	}
	if start > 0 {
		if start <= limit {
			prev = Cursor{Type: req.CursorType}.Encode()
		} else {
			prev = Cursor{Type: req.CursorType, Value: getID(items[start-1-limit])}.Encode()
		}
	}

	q := cloneValues(req.Query)
	q.Set("limit", strconv.Itoa(limit))

	if pageItems == nil {
		pageItems = []T{}
	}
	return Page[T]{
		Items:      pageItems,
		Total:      total,
		LinkHeader: BuildLinkHeader(req.BaseURL, q, next, prev),
		NextCursor: next,
		PrevCursor: prev,
	}
}
