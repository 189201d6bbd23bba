// Package wiki talks to a MediaWiki HTTP API: free-text page search and
// raw page HTML retrieval.
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/avolkov/infobot/internal/model"
	"golang.org/x/time/rate"
)

// ErrPageNotFound indicates no page matched the requested subject.
var ErrPageNotFound = errors.New("page not found")

// Client fetches pages from a MediaWiki API endpoint
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxBytes   int64
	limiter    *rate.Limiter
	robots     *RobotsGate // nil when robots.txt checking is disabled
}

// NewClient creates a new Client from the given configuration
func NewClient(cfg *model.Config) *Client {
	var robots *RobotsGate
	if cfg.Politeness.RespectRobots {
		robots = NewRobotsGate(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}

	burst := cfg.Politeness.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		baseURL:   cfg.Wiki.APIBaseURL,
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		limiter:   rate.NewLimiter(rate.Limit(cfg.Politeness.RequestsPerSecond), burst),
		robots:    robots,
	}
}

// Search returns the title of the best-matching page for a free-text
// subject. Only the top hit is considered; ambiguous subjects resolve to
// whatever the wiki ranks first.
func (c *Client) Search(ctx context.Context, subject string) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", fmt.Errorf("%w: empty subject", ErrPageNotFound)
	}

	params := url.Values{
		"action":        {"query"},
		"list":          {"search"},
		"srsearch":      {subject},
		"srlimit":       {"1"},
		"format":        {"json"},
		"formatversion": {"2"},
	}

	body, err := c.get(ctx, params)
	if err != nil {
		return "", fmt.Errorf("search %q: %w", subject, err)
	}

	var result struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode search response: %w", err)
	}

	if len(result.Query.Search) == 0 {
		return "", fmt.Errorf("%w: %q", ErrPageNotFound, subject)
	}
	return result.Query.Search[0].Title, nil
}

// PageHTML returns the rendered HTML of the page with the given title.
func (c *Client) PageHTML(ctx context.Context, title string) (string, error) {
	params := url.Values{
		"action":        {"parse"},
		"page":          {title},
		"prop":          {"text"},
		"format":        {"json"},
		"formatversion": {"2"},
	}

	body, err := c.get(ctx, params)
	if err != nil {
		return "", fmt.Errorf("fetch page %q: %w", title, err)
	}

	var result struct {
		Error *struct {
			Code string `json:"code"`
			Info string `json:"info"`
		} `json:"error"`
		Parse struct {
			Text string `json:"text"`
		} `json:"parse"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode parse response: %w", err)
	}

	if result.Error != nil {
		if result.Error.Code == "missingtitle" {
			return "", fmt.Errorf("%w: %q", ErrPageNotFound, title)
		}
		return "", fmt.Errorf("wiki api error %s: %s", result.Error.Code, result.Error.Info)
	}
	if result.Parse.Text == "" {
		return "", fmt.Errorf("empty page text for %q", title)
	}
	return result.Parse.Text, nil
}

// SubjectHTML composes search and page retrieval: the top search hit's
// HTML for a free-text subject name.
func (c *Client) SubjectHTML(ctx context.Context, subject string) (string, error) {
	title, err := c.Search(ctx, subject)
	if err != nil {
		return "", err
	}
	return c.PageHTML(ctx, title)
}

// get performs a rate-limited, robots-gated GET against the API endpoint.
func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + "?" + params.Encode()

	if c.robots != nil && !c.robots.Allowed(ctx, endpoint) {
		return nil, fmt.Errorf("robots.txt disallows fetching %s", c.baseURL)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
