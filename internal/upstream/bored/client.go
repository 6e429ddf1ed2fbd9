package bored

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/bored/internal/core/config"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20

// Client fetches an activity suggestion for a number of participants.
type Client interface {
	GetActivity(ctx context.Context, participants int) (*Activity, error)
}

// New returns the client selected by cfg: a MockClient when UseMock is set,
// otherwise an HTTPClient for cfg.BaseURL.
func New(cfg config.BoredClient, log zerolog.Logger) Client {
	if cfg.UseMock {
		log.Debug().Msg("using mock bored client")
		return NewMockClient()
	}

	return NewHTTPClient(cfg.BaseURL, WithLogger(log))
}

// HTTPClient calls the Bored API over HTTP.
type HTTPClient struct {
	baseURL   string
	client    *http.Client
	userAgent string
	log       zerolog.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient sets the underlying http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) {
		h.client = c
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(h *HTTPClient) {
		h.log = log
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(h *HTTPClient) {
		h.userAgent = ua
	}
}

// NewHTTPClient creates a client for the API rooted at baseURL
// (e.g. "https://www.boredapi.com/api").
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	h := &HTTPClient{
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 30 * time.Second},
		userAgent: "bored-cli",
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GetActivity requests a suggestion for the given number of participants.
// Transport failures, non-2xx responses and error payloads return an error
// wrapping ErrUnavailable; undecodable bodies wrap ErrMalformed.
func (h *HTTPClient) GetActivity(ctx context.Context, participants int) (*Activity, error) {
	if participants < 1 {
		return nil, fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidParticipants, participants)
	}

	endpoint, err := h.endpoint(participants)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)

	h.log.Debug().Str("url", endpoint).Msg("requesting activity")

	resp, err := h.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("request activity: %w", ctxErr)
		}
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	h.log.Debug().Int("status", resp.StatusCode).Msg("received response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("read response: %w", ctxErr)
		}
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	return decode(body)
}

func (h *HTTPClient) endpoint(participants int) (string, error) {
	u, err := url.Parse(h.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	u = u.JoinPath("activity")
	q := u.Query()
	q.Set("participants", strconv.Itoa(participants))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func decode(body []byte) (*Activity, error) {
	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, fmt.Errorf("%w: invalid json at offset %d", ErrMalformed, syntaxErr.Offset)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if r.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, r.Error)
	}

	if r.Key == "" {
		return nil, fmt.Errorf("%w: missing key", ErrMalformed)
	}

	activity := r.Activity
	return &activity, nil
}
