// Package api is the HTTP client for the studio backend. Every collection
// the site shows — locations, program types, schedule, memberships, leads,
// bookings — is fetched through this package; nothing is persisted locally.
//
// The request helper enforces three rules for all endpoints: query
// parameters with empty values are omitted entirely, a bearer token is
// attached when (and only when) the caller supplies one, and any error
// status is normalized into a single *Error carrying a displayable message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client issues requests against one backend base URL. The embedded
// http.Client carries an explicit timeout so a hung backend surfaces as a
// transport error instead of pinning the page render forever.
type Client struct {
	base string
	http *http.Client
	log  *slog.Logger
}

// New builds a Client for the given base URL. A trailing slash on the base
// is trimmed so path joining stays predictable.
func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// params is a flat set of query parameters. Empty values are dropped at
// encode time, which is how "no filter selected" is expressed everywhere.
type params map[string]string

func (p params) encode() string {
	if len(p) == 0 {
		return ""
	}
	vals := url.Values{}
	for k, v := range p {
		if v == "" {
			continue
		}
		vals.Set(k, v)
	}
	if len(vals) == 0 {
		return ""
	}
	return "?" + vals.Encode()
}

// do performs one backend call. path must start with "/" and already be
// relative to the base URL ("/public/locations", "/api/v1/me/profile").
// body, when non-nil, is JSON-encoded. out, when non-nil, receives the
// strictly decoded success body; a shape mismatch is a *DecodeError, never
// an empty result.
func (c *Client) do(ctx context.Context, method, path, token string, q params, body, out any) error {
	endpoint := method + " " + path

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", endpoint, err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path+q.encode(), rd)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read body: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := normalizeError(resp.StatusCode, raw)
		c.log.Warn("backend error", "endpoint", endpoint, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(out); err != nil {
		return &DecodeError{Endpoint: endpoint, Err: err}
	}
	return nil
}
