// Package httpclient is the single configured request pipeline every API
// wrapper goes through: base URL, credential-carrying cookie jar, bearer
// injection on the way out, error normalization and unauthorized-session
// recovery on the way in.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mlakumulu/travel-admin/internal/core/domain"
	"github.com/mlakumulu/travel-admin/internal/core/ports"
	"github.com/mlakumulu/travel-admin/internal/metrics"
)

const defaultTimeout = 30 * time.Second

// Config holds everything a Client needs at construction time.
type Config struct {
	// BaseURL is the backend root, e.g. "https://api.example.com".
	BaseURL string
	// Store supplies the bearer token for outgoing requests. Optional; with
	// no store every request goes out unauthenticated.
	Store ports.SessionStore
	// OnSessionExpired is invoked once per 401 response, before the error is
	// returned to the caller. The application wires it to the concrete
	// clear-session-and-redirect action; the transport stays ignorant of
	// storage and navigation.
	OnSessionExpired func()
	// Timeout bounds each request. Defaults to 30s.
	Timeout time.Duration
	// HTTPClient overrides the underlying client. Mostly for tests.
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client issues JSON requests against the backend.
type Client struct {
	baseURL          string
	http             *http.Client
	store            ports.SessionStore
	onSessionExpired func()
	log              zerolog.Logger
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("httpclient: BaseURL is required")
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		// Cookie jar mirrors the browser client's credential mode: cookies
		// set by the backend travel back on every subsequent request.
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("httpclient: cookie jar: %w", err)
		}
		hc = &http.Client{Timeout: timeout, Jar: jar}
	}

	return &Client{
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		http:             hc,
		store:            cfg.Store,
		onSessionExpired: cfg.OnSessionExpired,
		log:              cfg.Logger,
	}, nil
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do runs the full pipeline: encode, intercept outgoing, send, intercept
// incoming, decode. Every failure leaves as a *domain.APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &domain.APIError{Kind: domain.ErrKindDecode, Message: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &domain.APIError{Kind: domain.ErrKindTransport, Message: err.Error()}
	}
	c.intercept(req, body != nil)

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.HTTPRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		// No response to inspect, so the 401 recovery is skipped.
		metrics.HTTPRequestsTotal.WithLabelValues(method, "transport_error").Inc()
		return &domain.APIError{Kind: domain.ErrKindTransport, Message: err.Error()}
	}
	defer resp.Body.Close()
	metrics.HTTPRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.APIError{Kind: domain.ErrKindTransport, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := normalizeError(resp.StatusCode, raw)
		if apiErr.IsUnauthorized() {
			c.expireSession(method, path)
		}
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return &domain.APIError{Kind: domain.ErrKindDecode, Message: fmt.Sprintf("decode response: %v", err)}
		}
	}
	return nil
}

// intercept is the outgoing stage: attach the bearer token when a session
// exists, tag the request, set the JSON headers. A missing token is not an
// error — login and register go out unauthenticated.
func (c *Client) intercept(req *http.Request, hasBody bool) {
	if c.store != nil {
		if token, ok := c.store.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
}

// expireSession runs the unauthorized-session recovery hook. Cleanup happens
// here; the error itself is still returned to the caller afterwards.
func (c *Client) expireSession(method, path string) {
	metrics.SessionExpirationsTotal.Inc()
	c.log.Warn().Str("method", method).Str("path", path).Msg("unauthorized response, expiring session")
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}
