package guestapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	applog "github.com/janisto/guest-dashboard/internal/platform/logging"
	"github.com/janisto/guest-dashboard/internal/platform/pagination"
	"github.com/janisto/guest-dashboard/internal/profilesync"
)

const (
	defaultBaseURL = "http://localhost:4000"
	userAgent      = "guest-dashboard"
	acceptHeader   = "application/json"

	userPath             = "/api/user"
	upcomingBookingsPath = "/api/bookings/upcoming"
	pastBookingsPath     = "/api/bookings/past"
	favoritesPath        = "/api/favorites"

	listPageSize = 100
	maxListPages = 50
	maxBodyBytes = 1 << 20
)

// Client talks to the guest dashboard API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the API root, e.g. "http://localhost:4000".
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// NewClient creates a new guest API client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) doRequest(
	ctx context.Context, method, path string, query url.Values, body any,
) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}

func (c *Client) decodeResponse(ctx context.Context, resp *http.Response, target any, malformed error) error {
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(target); err != nil {
			return fmt.Errorf("%w: %w", malformed, err)
		}
		return nil
	}

	applog.LogDebug(ctx, "guest api returned non-200",
		zap.String("method", resp.Request.Method),
		zap.String("url", resp.Request.URL.Redacted()),
		zap.Int("status", resp.StatusCode),
	)
	if resp.StatusCode == http.StatusNotFound {
		return &UpstreamError{Kind: UpstreamErrorKindNotFound, Status: resp.StatusCode, cause: ErrNotFound}
	}
	return &UpstreamError{Kind: UpstreamErrorKindUpstream, Status: resp.StatusCode, cause: ErrUpstream}
}

// GetProfile fetches the stored profile. A profile without a name is
// reported as ErrMalformedProfile.
func (c *Client) GetProfile(ctx context.Context) (profilesync.Profile, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, userPath, nil, nil)
	if err != nil {
		return profilesync.Profile{}, fmt.Errorf("fetching profile: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var p profilesync.Profile
	if err := c.decodeResponse(ctx, resp, &p, ErrMalformedProfile); err != nil {
		return profilesync.Profile{}, err
	}
	if p.Name == "" {
		return profilesync.Profile{}, fmt.Errorf("%w: missing name", ErrMalformedProfile)
	}
	return p, nil
}

// PutProfile replaces the stored profile and returns the server's copy.
// A reply without a name is reported as ErrMalformedProfile.
func (c *Client) PutProfile(ctx context.Context, p profilesync.Profile) (profilesync.Profile, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, userPath, nil, p)
	if err != nil {
		return profilesync.Profile{}, fmt.Errorf("saving profile: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var saved profilesync.Profile
	if err := c.decodeResponse(ctx, resp, &saved, ErrMalformedProfile); err != nil {
		return profilesync.Profile{}, err
	}
	if saved.Name == "" {
		return profilesync.Profile{}, fmt.Errorf("%w: missing name", ErrMalformedProfile)
	}
	return saved, nil
}

// ListUpcoming returns every upcoming booking, following pagination links.
func (c *Client) ListUpcoming(ctx context.Context) ([]Booking, error) {
	return listAll[Booking](ctx, c, upcomingBookingsPath)
}

// ListPast returns every past booking.
func (c *Client) ListPast(ctx context.Context) ([]Booking, error) {
	return listAll[Booking](ctx, c, pastBookingsPath)
}

// ListFavorites returns every saved property.
func (c *Client) ListFavorites(ctx context.Context) ([]Favorite, error) {
	return listAll[Favorite](ctx, c, favoritesPath)
}

func listAll[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	items := []T{}
	cursor := ""
	for range maxListPages {
		q := url.Values{"limit": {strconv.Itoa(listPageSize)}}
		if cursor != "" {
			q.Set("cursor", cursor)
		}

		page, link, err := fetchPage[T](ctx, c, path, q)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)

		next := pagination.NextCursor(link)
		if next == "" || next == cursor {
			return items, nil
		}
		cursor = next
	}
	return nil, fmt.Errorf("%w: %s", ErrTooManyPages, path)
}

func fetchPage[T any](ctx context.Context, c *Client, path string, q url.Values) (listBody[T], string, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return listBody[T]{}, "", fmt.Errorf("fetching %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var page listBody[T]
	if err := c.decodeResponse(ctx, resp, &page, ErrMalformedResponse); err != nil {
		return listBody[T]{}, "", err
	}
	return page, resp.Header.Get("Link"), nil
}

// Compile-time interface check
var _ profilesync.Remote = (*Client)(nil)
