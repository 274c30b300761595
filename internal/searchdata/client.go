// Package searchdata fetches ranked-keyword and brand-keyword datasets from
// a search data provider's JSON API. The engine never calls this package;
// it exists so the CLI and server can pull fresh datasets instead of
// requiring pre-exported files.
package searchdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jonathan/keyword-insights/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for API requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; KeywordInsights/1.0)"

// Error represents an error talking to the search data API.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("search data error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("search data error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the client.
type Options struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	UserAgent string
}

// Client talks to the search data provider.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a client for the given provider endpoint.
func NewClient(opts *Options) (*Client, error) {
	if opts == nil || opts.BaseURL == "" {
		return nil, fmt.Errorf("search data base URL is required")
	}

	parsed, err := url.Parse(opts.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: opts.BaseURL, Message: "invalid base URL", Cause: err}
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		baseURL:    opts.BaseURL,
		apiKey:     opts.APIKey,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// rankedResponse mirrors the provider's ranked-keywords payload.
type rankedResponse struct {
	Keywords []types.RankedKeyword `json:"keywords"`
	Total    int                   `json:"total"`
}

// brandResponse mirrors the provider's brand-keywords payload.
type brandResponse struct {
	Keywords []types.BrandKeyword `json:"keywords"`
}

// FetchRankedKeywords retrieves the ranked keyword set for a domain.
// A limit of 0 means the provider default.
func (c *Client) FetchRankedKeywords(ctx context.Context, domain string, limit int) ([]types.RankedKeyword, error) {
	if domain == "" {
		return nil, fmt.Errorf("domain is required")
	}

	query := url.Values{"domain": {domain}}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var resp rankedResponse
	if err := c.getJSON(ctx, "/v1/ranked-keywords", query, &resp); err != nil {
		return nil, err
	}
	return resp.Keywords, nil
}

// FetchBrandKeywords retrieves brand search volumes for a set of brand names.
// The first entry is treated as the own brand by the provider contract.
func (c *Client) FetchBrandKeywords(ctx context.Context, brands []string) ([]types.BrandKeyword, error) {
	if len(brands) == 0 {
		return nil, fmt.Errorf("at least one brand name is required")
	}

	query := url.Values{}
	for _, b := range brands {
		query.Add("brand", b)
	}

	var resp brandResponse
	if err := c.getJSON(ctx, "/v1/brand-keywords", query, &resp); err != nil {
		return nil, err
	}
	return resp.Keywords, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &Error{URL: endpoint, Message: "failed to create request", Cause: err}
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{URL: endpoint, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{URL: endpoint, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return &Error{URL: endpoint, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &Error{URL: endpoint, Message: "failed to decode response", Cause: err}
	}
	return nil
}
