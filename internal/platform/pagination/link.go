// Package pagination implements opaque cursor pagination with RFC 8288 Link headers.
package pagination

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildLinkHeader constructs an RFC 8288 Link header, preserving existing query params.
func BuildLinkHeader(baseURL string, query url.Values, nextCursor, prevCursor string) string {
	var links []string
	if nextCursor != "" {
		links = append(links, link(baseURL, query, nextCursor, "next"))
	}
	if prevCursor != "" {
		links = append(links, link(baseURL, query, prevCursor, "prev"))
	}
	return strings.Join(links, ", ")
}

// NextCursor extracts the cursor of the rel="next" target from a Link header.
func NextCursor(header string) string {
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if !strings.Contains(part, `rel="next"`) {
			continue
		}
		start := strings.Index(part, "<")
		end := strings.Index(part, ">")
		if start < 0 || end <= start {
			continue
		}
		u, err := url.Parse(part[start+1 : end])
		if err != nil {
			continue
		}
		if c := u.Query().Get("cursor"); c != "" {
			return c
		}
	}
	return ""
}

func link(baseURL string, query url.Values, cursor, rel string) string {
	q := cloneValues(query)
	q.Set("cursor", cursor)
	return fmt.Sprintf("<%s?%s>; rel=%q", baseURL, q.Encode(), rel)
}

func cloneValues(v url.Values) url.Values {
	if v == nil {
		return make(url.Values)
	}
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
