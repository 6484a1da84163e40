package draftsmith

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"draftsmith-go/pkg/log"
)

// Client is the typed HTTP wrapper for the Draftsmith REST API.
// It holds no state beyond its configuration and is safe for concurrent use.
type Client struct {
	baseURL     string
	accessToken string
	tokenSource oauth2.TokenSource
	httpClient  Doer
	limiter     *rate.Limiter
	l           log.Logger
}

// New creates a new Draftsmith client with the given configuration.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		tokenSource: cfg.TokenSource,
		httpClient:  cfg.HTTPClient,
		limiter:     cfg.RateLimit,
		l:           cfg.Logger,
	}, nil
}

// do issues one request against the backend: marshal the body, stamp headers,
// execute, and decode into out. Non-2xx statuses become *APIError, broken
// response bodies become *DecodeError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("draftsmith: rate limit wait: %w", err)
		}
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("draftsmith: failed to marshal request body: %w", err)
		}
		body = bytes.NewBuffer(raw)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("draftsmith: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if err := c.setAuth(req); err != nil {
		return err
	}

	c.l.Debugf(ctx, "draftsmith: %s %s", method, u)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("draftsmith: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &DecodeError{Err: err}
		}
	}
	return nil
}

func (c *Client) setAuth(req *http.Request) error {
	if c.tokenSource != nil {
		tok, err := c.tokenSource.Token()
		if err != nil {
			return fmt.Errorf("draftsmith: failed to obtain token: %w", err)
		}
		tok.SetAuthHeader(req)
		return nil
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}
	return nil
}

// newAPIError reads the error body, preferring a structured message when the
// backend sends one.
func newAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	msg := strings.TrimSpace(string(raw))

	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Error != "" {
			msg = envelope.Error
		} else if envelope.Message != "" {
			msg = envelope.Message
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
