package alanube

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/rezonia/alanube-ecf/internal/form"
)

const (
	DefaultTimeout = 60 * time.Second

	// RequestIDHeader correlates a request with gateway support tickets
	RequestIDHeader = "X-Request-Id"
)

// Config is the validated client configuration
type Config struct {
	Token   string        `validate:"required"`
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

// Client talks to the Alanube Dominican Republic API
type Client struct {
	config  Config
	http    *http.Client
	logger  *slog.Logger
	metrics *Metrics
	keys    form.KeyStyle
}

// ClientOption configures the client
type ClientOption func(*clientConfig)

type clientConfig struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *Metrics
	keys       form.KeyStyle
}

// WithBaseURL sets a custom base URL
func WithBaseURL(url string) ClientOption {
	return func(cfg *clientConfig) {
		cfg.baseURL = url
	}
}

// WithSandbox selects the sandbox environment
func WithSandbox(sandbox bool) ClientOption {
	return func(cfg *clientConfig) {
		if sandbox {
			cfg.baseURL = SandboxBaseURL
		}
	}
}

// WithTimeout sets custom HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(cfg *clientConfig) {
		cfg.timeout = timeout
	}
}

// WithHTTPClient replaces the HTTP client; its own timeout is kept
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cfg *clientConfig) {
		cfg.httpClient = c
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) ClientOption {
	return func(cfg *clientConfig) {
		cfg.logger = logger
	}
}

// WithMetrics records every request on m
func WithMetrics(m *Metrics) ClientOption {
	return func(cfg *clientConfig) {
		cfg.metrics = m
	}
}

// WithKeyStyle selects the key naming of submitted documents
func WithKeyStyle(k form.KeyStyle) ClientOption {
	return func(cfg *clientConfig) {
		cfg.keys = k
	}
}

var validate = validator.New()

// NewClient creates a client authenticated with the bearer token
func NewClient(token string, opts ...ClientOption) (*Client, error) {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		keys:    form.KeyExternal,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	config := Config{
		Token:   token,
		BaseURL: strings.TrimRight(cfg.baseURL, "/"),
		Timeout: cfg.timeout,
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid client configuration: %w", err)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		config:  config,
		http:    httpClient,
		logger:  logger,
		metrics: cfg.metrics,
		keys:    cfg.keys,
	}, nil
}

// BaseURL returns the API root the client sends to
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

type call struct {
	operation string
	method    string
	path      string
	query     url.Values
	body      []byte
	expected  int
}

// do sends the call and decodes a successful body into out. Responses
// of 400 and above become *APIError; other codes than the expected one
// become *UnexpectedStatusError.
func (c *Client) do(ctx context.Context, in call, out any) error {
	target := c.config.BaseURL + "/" + strings.TrimLeft(in.path, "/")
	if len(in.query) > 0 {
		target += "?" + in.query.Encode()
	}

	var body io.Reader
	if in.body != nil {
		body = bytes.NewReader(in.body)
	}
	req, err := http.NewRequestWithContext(ctx, in.method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.config.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	c.logger.DebugContext(ctx, "alanube request",
		"operation", in.operation,
		"method", in.method,
		"url", target,
		"request_id", requestID,
	)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(in.operation, 0, time.Since(start))
		return fmt.Errorf("%s %s: %w", in.method, target, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	c.metrics.ObserveRequest(in.operation, resp.StatusCode, time.Since(start))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.DebugContext(ctx, "alanube response",
		"operation", in.operation,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := newAPIError(resp.StatusCode, target, data)
		c.logger.WarnContext(ctx, "alanube request failed",
			"operation", in.operation,
			"status", resp.StatusCode,
			"message", apiErr.Message,
			"request_id", requestID,
		)
		return apiErr
	}
	if in.expected != 0 && resp.StatusCode != in.expected {
		return &UnexpectedStatusError{Expected: in.expected, Received: resp.StatusCode, URL: target}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if p, ok := out.(*Payload); ok {
		*p = Payload(data)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", in.operation, err)
	}
	return nil
}

func encode(v any) ([]byte, error) {
	if raw, ok := v.([]byte); ok {
		return raw, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return data, nil
}
