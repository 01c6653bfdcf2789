// Package gong wraps the Gong public API. The shaping layer has no
// knowledge of HTTP; it only sees the wire models and sentinel errors.
package gong

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrNotFound is returned when the API reports 404 for a request.
	ErrNotFound = errors.New("gong: not found")
	// ErrUnauthorized is returned when the credentials are rejected.
	ErrUnauthorized = errors.New("gong: unauthorized")
	// ErrDecode wraps failures to parse a response body into the expected shape.
	ErrDecode = errors.New("gong: malformed response")
)

// StatusError carries a non-success API status for diagnosis upstream of
// the error taxonomy. 404 and 401 map to sentinels instead.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gong: api error (status %d): %s", e.Status, e.Body)
}

// Client issues single requests against the Gong API. No retries, no
// backoff: a failed request is reported once to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	accessKey  string
	secret     string
}

func NewClient(baseURL, accessKey, accessKeySecret string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		accessKey:  accessKey,
		secret:     accessKeySecret,
	}
}

// ListCalls fetches one page of calls via POST /v2/calls/extensive.
func (c *Client) ListCalls(ctx context.Context, req CallsRequest) (*CallsResponse, error) {
	var resp CallsResponse
	if err := c.post(ctx, "/v2/calls/extensive", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTranscripts fetches transcripts via POST /v2/calls/transcript.
func (c *Client) GetTranscripts(ctx context.Context, req TranscriptRequest) (*TranscriptResponse, error) {
	var resp TranscriptResponse
	if err := c.post(ctx, "/v2/calls/transcript", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListUsers fetches one page of users via GET /v2/users. Avatars are never
// requested; they bloat the payload and nothing downstream reads them.
func (c *Client) ListUsers(ctx context.Context, cursor string) (*UsersResponse, error) {
	params := url.Values{}
	params.Set("includeAvatars", "false")
	if cursor != "" {
		params.Set("cursor", cursor)
	}

	var resp UsersResponse
	if err := c.get(ctx, "/v2/users", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, body, target any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, target)
}

func (c *Client) get(ctx context.Context, path string, params url.Values, target any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	return c.do(req, target)
}

func (c *Client) do(req *http.Request, target any) error {
	req.SetBasicAuth(c.accessKey, c.secret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(resp.Body)
		return &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
