package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "http://localhost:5001/api"
	DefaultTimeout = 10 * time.Second

	maxResponseSize = 8 << 20
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the portal backend. A Client without a token only performs
// public reads; WithToken returns a copy that authenticates mutations.
type Client struct {
	baseURL string
	origin  string
	token   string
	http    *http.Client
}

func New(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		origin:  strings.TrimSuffix(baseURL, "/api"),
		http:    &http.Client{Timeout: timeout},
	}
}

// WithToken returns a copy of the client that sends the bearer token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// ResolveURL turns backend-relative media paths into absolute URLs.
func (c *Client) ResolveURL(p string) string {
	if p == "" || strings.HasPrefix(p, "http") {
		return p
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return c.origin + p
}

// Ping checks backend reachability through its health endpoint, which does not
// use the response envelope.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend health: %w", err)
	}
	defer resp.Body.Close()

	var health struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&health); err != nil {
		return fmt.Errorf("decode backend health: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !strings.EqualFold(health.Status, "ok") {
		return &Error{Status: resp.StatusCode, Message: "backend unhealthy: " + health.Status}
	}

	return nil
}

// call performs one request and decodes the response envelope.
func call[T any](ctx context.Context, c *Client, method, path string, p *Payload) (*Envelope[T], error) {
	body, contentType, err := p.encode()
	if err != nil {
		return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	var env Envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		if resp.StatusCode >= http.StatusMultipleChoices {
			return nil, &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, fmt.Errorf("decode %s %s: %w", method, path, err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices || !env.Success {
		return nil, newError(resp.StatusCode, env.Error, env.Message)
	}

	return &env, nil
}
