// Package api is the typed client for the remote REST API the console
// fronts. Responses arrive in {status, message, data, errors} envelopes;
// list endpoints add pagination meta. Errors are normalized at this boundary
// into *Error. Reads retry at most once; mutations never retry.
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
	"strconv"
	"strings"
	"time"

	"github.com/eventdesk/admin-ui/internal/domain/model"
	"github.com/eventdesk/admin-ui/internal/obs"
)

const defaultTimeout = 15 * time.Second

// TokenSource provides the bearer token attached to authenticated requests.
type TokenSource interface {
	Token() (string, bool)
}

// Client talks to the remote API.
type Client struct {
	baseURL string
	hc      *http.Client
	tokens  TokenSource
	logger  *slog.Logger
}

// Config holds dependencies and settings for a Client.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.example.com/v1".
	BaseURL string
	// Tokens supplies the bearer token; nil means unauthenticated calls only.
	Tokens TokenSource
	// Timeout bounds each request. Defaults to 15s.
	Timeout time.Duration
	// HTTPClient overrides the transport, for tests.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewClient builds a Client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("api base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parse api base URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: base,
		hc:      hc,
		tokens:  cfg.Tokens,
		logger:  logger,
	}, nil
}

// envelope is the common response wrapper.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  json.RawMessage `json:"errors,omitempty"`
	Meta    *model.ListMeta `json:"meta,omitempty"`
}

// get issues a GET and decodes data into out. Transport failures and 5xx
// responses are retried exactly once; a second failure is returned as-is.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) (*model.ListMeta, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	meta, err := c.roundTrip(ctx, http.MethodGet, target, nil, out)
	if err == nil || !retryable(err) || ctx.Err() != nil {
		return meta, err
	}

	c.logger.DebugContext(ctx, "retrying read", "path", path, "error", err)
	return c.roundTrip(ctx, http.MethodGet, target, nil, out)
}

// mutate issues a non-GET request with an optional JSON body. Mutations are
// never retried: the caller's optimistic state handles failure.
func (c *Client) mutate(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}
	_, err := c.roundTrip(ctx, method, c.baseURL+path, payload, out)
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, target string, body io.Reader, out any) (*model.ListMeta, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		obs.RecordAPIRequest(method, 0, time.Since(start))
		return nil, &Error{Cause: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.WarnContext(ctx, "close response body failed", "error", cerr)
		}
	}()
	obs.RecordAPIRequest(method, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, &Error{Cause: fmt.Errorf("read response body: %w", err)}
	}

	var env envelope
	if len(data) > 0 {
		if err := json.Unmarshal(data, &env); err != nil {
			if resp.StatusCode >= 400 {
				return nil, &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
			}
			return nil, &Error{Status: resp.StatusCode, Message: "malformed response envelope"}
		}
	}

	if resp.StatusCode >= 400 {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &Error{
			Status:     resp.StatusCode,
			Message:    msg,
			Validation: parseValidationErrors(env.Errors),
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, &Error{Status: resp.StatusCode, Message: "decode response data", Cause: err}
		}
	}
	return env.Meta, nil
}

// retryable reports whether a read may be retried: transport failures and
// gateway-class 5xx responses only.
func retryable(err error) bool {
	apiErr, ok := AsError(err)
	if !ok {
		return false
	}
	if apiErr.Status == 0 {
		return true
	}
	switch apiErr.Status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// listQuery renders list options as query parameters.
func listQuery(opts model.ListOptions) url.Values {
	opts = opts.Normalize()
	q := url.Values{}
	q.Set("page", strconv.Itoa(opts.Page))
	q.Set("per_page", strconv.Itoa(opts.PerPage))
	return q
}
