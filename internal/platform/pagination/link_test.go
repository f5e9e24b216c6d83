package pagination

import (
	"net/url"
	"testing"
)

func TestBuildLinkHeaderBoth(t *testing.T) {
	got := BuildLinkHeader("/api/favorites", url.Values{"limit": {"2"}}, "NEXT", "PREV")
	want := `</api/favorites?cursor=NEXT&limit=2>; rel="next", </api/favorites?cursor=PREV&limit=2>; rel="prev"`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestBuildLinkHeaderNone(t *testing.T) {
	if got := BuildLinkHeader("/api/favorites", nil, "", ""); got != "" {
		t.Fatalf("expected empty header, got %q", got)
	}
}

func TestNextCursorFromHeader(t *testing.T) {
	header := BuildLinkHeader("/api/bookings/past", url.Values{"limit": {"1"}}, "abc", "def")
	if got := NextCursor(header); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
}

func TestNextCursorMissing(t *testing.T) {
	tests := []string{
		"",
		`</api/favorites?cursor=def>; rel="prev"`,
		`garbage; rel="next"`,
		`</api/favorites?limit=2>; rel="next"`,
	}
	for _, h := range tests {
		if got := NextCursor(h); got != "" {
			t.Errorf("NextCursor(%q) = %q, want empty", h, got)
		}
	}
}
