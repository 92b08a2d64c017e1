package grader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/Bahjat/website-grader/internal/platform/errs"
)

// Fetcher retrieves a target page for grading.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// FetchResult is a successfully retrieved page. It is read-only once returned.
type FetchResult struct {
	HTML     string
	Headers  http.Header
	LoadTime time.Duration
	FinalURL string
}

const (
	// FetchTimeout bounds the whole fetch, including reading the body.
	FetchTimeout = 15 * time.Second
	// MinContentBytes is the smallest body treated as a real page. Anything
	// shorter is almost always a captcha or bot interstitial.
	MinContentBytes = 500

	maxRedirects    = 10
	maxResponseBody = 10 << 20

	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	acceptHeader   = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	acceptLanguage = "en-US,en;q=0.5"
)

var (
	errTooManyRedirects = errors.New("too many redirects")
	errBlockedRedirect  = errors.New("redirect to non-http(s) scheme blocked")
)

// HTTPClient implements Fetcher using a real HTTP client.
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// NewHTTPClient returns a Fetcher backed by an http.Client with a dedicated
// transport that blocks connections to private/reserved IP ranges and redirect
// validation that prevents SSRF via redirect chains. Each fetch is bounded by
// FetchTimeout.
func NewHTTPClient() *HTTPClient {
	return newHTTPClient(&http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         safeDialer().DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
	}, FetchTimeout)
}

func newHTTPClient(transport http.RoundTripper, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Transport:     transport,
			CheckRedirect: safeRedirectPolicy,
		},
		timeout: timeout,
	}
}

// safeRedirectPolicy validates redirect targets and limits the redirect chain length.
func safeRedirectPolicy(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("%w: stopped after %d", errTooManyRedirects, maxRedirects)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return fmt.Errorf("%w: %s", errBlockedRedirect, req.URL.Scheme)
	}
	return nil
}

// Fetch performs a single GET of targetURL. It fails with an *errs.AppError of
// kind Timeout when the deadline passes, Unreachable on transport errors and
// non-2xx responses, and Blocked when the raw body is shorter than
// MinContentBytes.
// The in-flight request is cancelled when Fetch returns.
func (c *HTTPClient) Fetch(ctx context.Context, targetURL string) (*FetchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, http.NoBody)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: msgInvalidURL,
			Cause:   err,
		}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguage)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &errs.AppError{
			Kind:           errs.Unreachable,
			UpstreamStatus: resp.StatusCode,
			Message:        fmt.Sprintf("The website returned an error status (%d).", resp.StatusCode),
		}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	loadTime := time.Since(start)

	if len(raw) < MinContentBytes {
		return nil, &errs.AppError{
			Kind:           errs.Blocked,
			UpstreamStatus: resp.StatusCode,
			Message:        "The website returned almost no content. It may be blocking automated requests.",
		}
	}

	return &FetchResult{
		HTML:     decodeBody(raw, resp.Header.Get("Content-Type")),
		Headers:  resp.Header,
		LoadTime: loadTime,
		FinalURL: resp.Request.URL.String(),
	}, nil
}

// decodeBody converts raw to UTF-8 based on contentType and any <meta charset>
// in the first kilobyte.
func decodeBody(raw []byte, contentType string) string {
	reader, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		// Unknown encoding: grade the raw bytes rather than fail.
		return string(raw)
	}
	b, err := io.ReadAll(reader)
	if err != nil {
		return string(raw)
	}
	return string(b)
}

func classifyTransportError(ctx context.Context, err error) error {
	var netErr net.Error
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &errs.AppError{
			Kind:    errs.Timeout,
			Message: "The website took too long to respond.",
			Cause:   err,
		}
	}
	return &errs.AppError{
		Kind:    errs.Unreachable,
		Message: "The website could not be reached. Check the address and try again.",
		Cause:   err,
	}
}
