package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// TokenSource yields the bearer token for the current request, or "" when
// the caller is anonymous. The session layer provides one that reads the
// restored session out of the request context.
type TokenSource func(ctx context.Context) string

// Client is the configured HTTP client for the upstream API. The base URL
// is resolved once at construction and never mutated; every request runs
// under the fixed timeout of the embedded http.Client.
type Client struct {
	base   *url.URL
	http   *http.Client
	tokens TokenSource
}

// New builds a Client for the given base URL. A nil tokens source means no
// Authorization header is ever attached.
func New(baseURL string, timeout time.Duration, tokens TokenSource) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, err
	}
	if tokens == nil {
		tokens = func(context.Context) string { return "" }
	}
	return &Client{
		base:   u,
		http:   &http.Client{Timeout: timeout},
		tokens: tokens,
	}, nil
}

// errBody is the error envelope the upstream uses; some endpoints answer
// with "message", older ones with "error".
type errBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

// do performs one request. path must start with "/". A non-nil in is
// JSON-encoded as the request body; a non-nil out receives the decoded
// 2xx response body. Every failure comes back as *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return &Error{Message: err.Error()}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Attach the bearer token when one is held; its absence never fails
	// the request, the upstream decides what anonymous callers may do.
	if tok := c.tokens(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		var eb errBody
		if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&eb); decodeErr == nil {
			if eb.Message != "" {
				apiErr.Message = eb.Message
			} else {
				apiErr.Message = eb.Err
			}
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Status: resp.StatusCode, Message: "invalid response body: " + err.Error()}
		}
	}
	return nil
}

// pageQuery builds the page/limit query parameters shared by the list
// endpoints. Zero values are omitted so the upstream defaults apply.
func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}
