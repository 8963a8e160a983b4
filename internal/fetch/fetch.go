// ABOUTME: HTTP retriever that routes around cross-origin and transport failures
// ABOUTME: Tries an ordered list of access strategies (direct, then proxies) and returns the first usable body

package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/harper/feedline/internal/logging"
)

const MaxResponseSize = 10 * 1024 * 1024 // 10MB

const userAgent = "feedline/1.0 (RSS reader)"

// Proxy endpoint templates. Fixed at build time; the target URL is appended
// query-escaped. There is no runtime proxy selection.
const (
	allOriginsEndpoint = "https://api.allorigins.win/raw?url="
	corsProxyEndpoint  = "https://corsproxy.io/?"
)

// ErrAllStrategiesFailed is returned when every access strategy has been
// attempted without producing a usable body. Per-strategy failures are not
// distinguished in the returned error; they are traced on the debug log.
var ErrAllStrategiesFailed = errors.New("all fetch strategies failed")

// Strategy is one way of reaching a feed URL. Wrap rewrites the target URL
// into the URL actually requested.
type Strategy struct {
	Name string
	Wrap func(target string) string
}

// DefaultStrategies returns the fixed priority-ordered strategy list:
// direct access first, then the two public proxies.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Name: "Direct", Wrap: func(target string) string {
			return target
		}},
		{Name: "AllOrigins", Wrap: func(target string) string {
			return allOriginsEndpoint + url.QueryEscape(target)
		}},
		{Name: "CorsProxy", Wrap: func(target string) string {
			return corsProxyEndpoint + url.QueryEscape(target)
		}},
	}
}

// Result is the outcome of a successful fetch: the raw body and the name of
// the strategy that produced it.
type Result struct {
	Body     string
	Strategy string
}

// Client fetches feed documents. The zero strategy list and HTTP client are
// filled in by NewClient; both fields may be replaced before first use.
type Client struct {
	HTTPClient *http.Client
	Strategies []Strategy
}

// NewClient returns a Client with the default strategy list. The underlying
// HTTP client imposes no timeout; callers bound latency through ctx.
func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{},
		Strategies: DefaultStrategies(),
	}
}

// Fetch tries each strategy in order and returns the first non-empty success
// body along with the strategy name. A strategy is accepted only when the
// transport call succeeds, the response status is 2xx, and the body is
// non-empty after trimming whitespace. Individual strategy failures are
// swallowed; only exhaustion of the whole list is an error.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	for _, strategy := range c.Strategies {
		body, err := c.attempt(ctx, strategy.Wrap(rawURL))
		if err != nil {
			logging.L.Debug("fetch strategy failed",
				zap.String("strategy", strategy.Name),
				zap.String("url", rawURL),
				zap.Error(err))
			continue
		}
		return &Result{Body: body, Strategy: strategy.Name}, nil
	}

	logging.L.Warn("all fetch strategies exhausted", zap.String("url", rawURL))
	return nil, fmt.Errorf("fetch %s: %w", rawURL, ErrAllStrategiesFailed)
}

// attempt performs a single GET against requestURL and validates the response.
func (c *Client) attempt(ctx context.Context, requestURL string) (string, error) {
	parsedURL, err := url.Parse(requestURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	// SSRF protection: block private IP ranges
	if ips, err := net.LookupIP(parsedURL.Hostname()); err == nil {
		for _, ip := range ips {
			if isPrivateIP(ip) {
				return "", fmt.Errorf("access to private IP ranges is not allowed")
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	// Read response body with DoS protection (10MB limit)
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > MaxResponseSize {
		return "", fmt.Errorf("response too large (exceeds %d bytes)", MaxResponseSize)
	}

	text := string(body)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty response body")
	}

	return text, nil
}

// isPrivateIP checks if an IP address is in a private range. Loopback stays
// reachable so local feeds keep working.
func isPrivateIP(ip net.IP) bool {
	if ip.IsLoopback() {
		return false
	}
	return ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast()
}
