package toggl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"

	"github.com/Tiliavir/paperdash/internal/model"
	"github.com/Tiliavir/paperdash/internal/timecalc"
)

const (
	// DefaultBaseURL is the Toggl Track v9 API root.
	DefaultBaseURL = "https://api.track.toggl.com/api/v9"
	// UserAgent is sent with every request.
	UserAgent = "Toggl Productivity Tracker/1.0"
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second
)

// Auth modes for Options.Auth.
const (
	AuthBasic  = "basic"
	AuthBearer = "bearer"
)

// Options configures a Client.
type Options struct {
	BaseURL string
	// Token is the static credential: a Toggl API token for AuthBasic or an
	// access token for AuthBearer.
	Token   string
	Auth    string
	Timeout time.Duration
	// Logger receives warnings about entries that cannot be decoded.
	Logger *log.Logger
}

// Client fetches time entries from the Toggl API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *log.Logger
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("toggl API error %d: %s", e.StatusCode, e.Body)
}

// NewClient creates a Client that authenticates every request with the
// configured static credential.
func NewClient(ctx context.Context, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}

	var hc *http.Client
	switch opts.Auth {
	case AuthBearer:
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token, TokenType: "Bearer"})
		hc = oauth2.NewClient(ctx, ts)
	default:
		hc = &http.Client{Transport: &basicAuthTransport{token: opts.Token}}
	}
	hc.Timeout = timeout

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{baseURL: base, httpClient: hc, log: logger}
}

// basicAuthTransport sends the API token as the basic-auth user name with the
// literal password "api_token", which is how Toggl accepts API tokens.
type basicAuthTransport struct {
	token string
	base  http.RoundTripper
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt := t.base
	if rt == nil {
		rt = http.DefaultTransport
	}
	r := req.Clone(req.Context())
	r.SetBasicAuth(t.token, "api_token")
	return rt.RoundTrip(r)
}

// FetchRange returns the time entries between from and to.
func (c *Client) FetchRange(ctx context.Context, from, to time.Time) ([]model.IntervalRecord, error) {
	q := url.Values{}
	q.Set("start_date", timecalc.FormatInstant(from))
	q.Set("end_date", timecalc.FormatInstant(to))
	endpoint := c.baseURL + "/me/time_entries?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("toggl API request failed: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	// Entries are decoded one by one so a bad entry only drops itself.
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decoding toggl response: %w", err)
	}
	entries := make([]model.IntervalRecord, 0, len(raw))
	for i, r := range raw {
		var e model.IntervalRecord
		if err := json.Unmarshal(r, &e); err != nil {
			c.log.Warn("skipping undecodable time entry", "index", i, "err", err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}
