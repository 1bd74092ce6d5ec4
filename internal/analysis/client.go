package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/five82/commentbox/internal/plaintext"
)

// Analyzer defines the calls the UI and CLI make against the analysis API.
// This interface is implemented by *Client and can be used for testing.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) (*Response, error)
	Health(ctx context.Context) (*HealthResponse, error)
}

// Ensure Client implements Analyzer at compile time.
var _ Analyzer = (*Client)(nil)

// Client talks to the commentary analysis HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	limiter   *rate.Limiter
	logger    *zap.Logger
}

const (
	// DefaultBaseURL is where the analysis API listens in local development.
	DefaultBaseURL   = "http://127.0.0.1:8000"
	defaultUserAgent = "commentbox/0.1"

	// RequestIDHeader carries a per-request id so client and server logs line up.
	RequestIDHeader = "X-Request-ID"

	maxErrorBody = 4 << 10
)

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request. Zero leaves transport defaults in place.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithRateLimit allows at most perMinute analyze calls per minute. Zero disables it.
func WithRateLimit(perMinute int) Option {
	return func(c *Client) {
		if perMinute > 0 {
			c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
		}
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalised API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	if c != nil && c.http != nil {
		c.http.CloseIdleConnections()
	}
}

// Analyze posts req to /analyze and returns the commentary.
//
// Failures are one of *NetworkError, *HTTPError, ErrEmptyResult or a decode
// error; callers classify them with errors.As / errors.Is.
func (c *Client) Analyze(ctx context.Context, req Request) (*Response, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	requestID := uuid.NewString()
	log := c.logger.With(
		zap.String("request_id", requestID),
		zap.String("url", req.URL),
		zap.String("commentator", req.Commentator),
	)
	log.Info("analysis request started")
	started := time.Now()

	var payload Response
	status, err := c.doJSON(ctx, http.MethodPost, "analyze", requestID, bytes.NewReader(body), &payload)
	if err != nil {
		log.Warn("analysis request failed",
			zap.Int("status", status),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err))
		return nil, err
	}
	if payload.Commentary == "" {
		log.Warn("analysis response had no commentary", zap.Int("status", status))
		return nil, ErrEmptyResult
	}
	payload.WebsiteType = plaintext.Line(payload.WebsiteType)

	log.Info("analysis request finished",
		zap.Int("status", status),
		zap.String("website_type", payload.WebsiteType),
		zap.Int("commentary_bytes", len(payload.Commentary)),
		zap.Duration("elapsed", time.Since(started)))
	return &payload, nil
}

// Health queries /health.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload HealthResponse
	if _, err := c.doJSON(ctx, http.MethodGet, "health", uuid.NewString(), nil, &payload); err != nil {
		return nil, err
	}
	payload.Status = plaintext.Line(payload.Status)
	return &payload, nil
}

func (c *Client) doJSON(ctx context.Context, method, path, requestID string, body io.Reader, dest any) (int, error) {
	reqURL := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &HTTPError{
			StatusCode: resp.StatusCode,
			Detail:     readDetail(resp.Body),
		}
	}
	if dest == nil {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

// readDetail pulls the FastAPI-style "detail" field out of an error body,
// flattened to one line of plain text.
func readDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil || eb.Detail == nil {
		return ""
	}
	switch d := eb.Detail.(type) {
	case string:
		return plaintext.Line(d)
	default:
		encoded, err := json.Marshal(d)
		if err != nil {
			return ""
		}
		return plaintext.Line(string(encoded))
	}
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
