package willyweather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// Browser-like; the site serves an error page to unknown agents
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

	// Pages are well under this; anything larger is not a tide page
	maxPageBytes = 8 << 20
)

// PageFetcher retrieves the raw tide page markup
type PageFetcher interface {
	FetchPage(ctx context.Context) (string, error)
}

// Client fetches a WillyWeather tide page over HTTP
type Client struct {
	pageURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given tide page URL
func NewClient(pageURL string) *Client {
	return &Client{
		pageURL: pageURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchPage performs a single GET of the tide page and returns its body
func (c *Client) FetchPage(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching tide page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d %s", ErrBadStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("reading tide page: %w", err)
	}
	return string(body), nil
}
