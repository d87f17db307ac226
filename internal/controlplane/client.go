// Package controlplane implements the typed HTTP client the agent uses to
// talk to the control plane: bearer auth with a single refresh-then-retry
// on 401, unbounded retry on 424/5xx, immediate empty results on 404/422,
// gzip-encoded write bodies, and URL-encoded null-dropped query params for
// reads (spec.md §4.7, §6).
package controlplane

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/klauspost/compress/gzip"

	"github.com/catherinevee/sensiscan/internal/errors"
	"github.com/catherinevee/sensiscan/internal/logger"
)

// Client is the control-plane HTTP client. It satisfies
// internal/scanpipeline's LeaseStore and ReportStore interfaces directly,
// so a Pipeline can be wired straight to a live control plane.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  *tokenSource
	log     logger.Logger
}

// Config configures a Client.
type Config struct {
	BaseURL       string
	TokenEndpoint string
	ClientID      string
	ClientSecret  string
}

// New constructs a Client whose underlying transport is
// hashicorp/go-retryablehttp, with CheckRetry overridden to the exact
// policy spec.md §4.7 describes rather than retryablehttp's own defaults.
func New(cfg Config) *Client {
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.RetryMax = 0 // transport-level retries are disabled here; do()'s own loop drives the 424/5xx policy
	rc.CheckRetry = checkRetry
	rc.Backoff = retryablehttp.DefaultBackoff

	stdClient := rc.StandardClient()

	return &Client{
		baseURL: cfg.BaseURL,
		http:    stdClient,
		tokens:  newTokenSource(cfg.TokenEndpoint, cfg.ClientID, cfg.ClientSecret, &http.Client{Timeout: 30 * time.Second}),
		log:     logger.New("controlplane"),
	}
}

// checkRetry classifies a response for retryablehttp's own single-attempt
// transport-level retry (connection resets etc.); the control plane's
// unbounded 424/5xx policy is implemented one layer up, in do()'s own
// loop, since "unbounded" cannot be expressed as a bounded retryablehttp
// policy.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	return false, nil
}

// request is the shape every typed endpoint method builds before handing
// it to do().
type request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
}

// do executes req against the control plane as a single loop from the
// first attempt, applying the full spec.md §4.7 policy: bearer auth with
// one refresh-then-retry on 401, unbounded 1s-delayed retry on 424/5xx,
// immediate nil on 404/422, and a permanent error on any other 4xx.
func (c *Client) do(ctx context.Context, req request, out interface{}) error {
	refreshed := false
	for {
		status, err := c.attempt(ctx, req, out)
		if err != nil {
			return err
		}

		switch {
		case status >= 200 && status < 300:
			return nil
		case status == http.StatusNotFound || status == http.StatusUnprocessableEntity:
			return nil
		case status == http.StatusUnauthorized:
			if refreshed {
				return errors.NewAuth("controlplane: authentication failed after token refresh")
			}
			refreshed = true
			if _, err := c.tokens.ForceRefresh(ctx); err != nil {
				return err
			}
		case status == http.StatusFailedDependency || status >= 500:
			if err := sleepOrDone(ctx, time.Second); err != nil {
				return err
			}
		default:
			return errors.NewPermanent(fmt.Sprintf("controlplane: status %d", status))
		}
	}
}

// sleepOrDone waits out delay, returning ctx.Err() if the context is
// cancelled first. Mirrors the same select pattern internal/resilience's
// RetryForever uses, inlined here because do()'s retry policy mixes an
// undelayed 401-refresh retry with a delayed 424/5xx retry in one loop.
func sleepOrDone(ctx context.Context, delay time.Duration) error {
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// attempt performs exactly one HTTP round trip and returns the response
// status plus any transport-level error. 2xx responses decode into out.
func (c *Client) attempt(ctx context.Context, req request, out interface{}) (int, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return 0, err
	}

	var bodyReader io.Reader
	contentEncoding := ""
	if req.Body != nil && isWriteMethod(req.Method) {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return 0, err
		}
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(payload); err != nil {
			return 0, err
		}
		if err := gw.Close(); err != nil {
			return 0, err
		}
		bodyReader = &buf
		contentEncoding = "gzip"
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return 0, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept-Encoding", "gzip")
	if contentEncoding != "" {
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Content-Encoding", contentEncoding)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func isWriteMethod(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

// queryParams URL-encodes params, dropping any entry whose value is the
// empty string, the way spec.md §4.7 describes null-dropped GET/DELETE
// query parameters.
func queryParams(params map[string]string) url.Values {
	values := url.Values{}
	for k, v := range params {
		if v == "" {
			continue
		}
		values.Set(k, v)
	}
	return values
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
