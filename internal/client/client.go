// Package client is the typed HTTP client for the bookstore backend.
//
// Every backend call answers with the envelope {code, message, data}. The client
// decodes the envelope, returns Data on the success code and an *APIError otherwise.
// Transport failures and non-2xx statuses are mapped to AppError codes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/target/bookshelf-web/internal/domain/model"
	apperrors "github.com/target/bookshelf-web/internal/errors"
	"golang.org/x/net/publicsuffix"
)

const (
	// DefaultSuccessCode is the envelope code the backend uses for success.
	DefaultSuccessCode = 1
	// DefaultTokenHeader carries the reader's token on authenticated calls.
	DefaultTokenHeader = "authentication"

	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 4 << 20
)

// TokenSource supplies the backend token for the current call.
// An empty token sends the request unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

// Token implements TokenSource.
func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// StaticToken is a TokenSource that always returns the same token.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token(context.Context) (string, error) { return string(s), nil }

type tokenKey struct{}

// WithToken returns a context carrying a per-call token, which takes precedence
// over the configured TokenSource.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(tokenKey{}).(string)
	return tok, ok
}

// Config captures the backend connection settings.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	TokenHeader string
	// TokenScheme is prefixed to the token, e.g. "Bearer". Empty sends the raw token.
	TokenScheme string
	SuccessCode int
	// RetryLimit is the number of extra attempts for idempotent reads.
	RetryLimit int
	HTTPClient *http.Client
	Tokens     TokenSource
	Logger     *slog.Logger
}

// Client calls the bookstore backend. It is safe for concurrent use.
type Client struct {
	base        *url.URL
	http        *http.Client
	tokens      TokenSource
	tokenHeader string
	tokenScheme string
	successCode int
	retryLimit  int
	logger      *slog.Logger

	Auth       *AuthAPI
	Catalog    *CatalogAPI
	Cart       *CartAPI
	BorrowCart *BorrowCartAPI
	Borrows    *BorrowAPI
	Orders     *OrderAPI
	Addresses  *AddressAPI
	Profile    *ProfileAPI
}

// New builds a Client. Callers should pass a validated config.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, errors.New("backend base url is required")
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("backend base url %q must be http(s)", raw)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		jar, jarErr := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if jarErr != nil {
			return nil, fmt.Errorf("create cookie jar: %w", jarErr)
		}
		hc = &http.Client{Timeout: timeout, Jar: jar}
	}

	c := &Client{
		base:        base,
		http:        hc,
		tokens:      cfg.Tokens,
		tokenHeader: fallbackString(strings.TrimSpace(cfg.TokenHeader), DefaultTokenHeader),
		tokenScheme: strings.TrimSpace(cfg.TokenScheme),
		successCode: cfg.SuccessCode,
		retryLimit:  max(cfg.RetryLimit, 0),
		logger:      cfg.Logger,
	}
	if c.successCode == 0 {
		c.successCode = DefaultSuccessCode
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	c.Auth = &AuthAPI{c: c}
	c.Catalog = &CatalogAPI{c: c}
	c.Cart = &CartAPI{c: c}
	c.BorrowCart = &BorrowCartAPI{c: c}
	c.Borrows = &BorrowAPI{c: c}
	c.Orders = &OrderAPI{c: c}
	c.Addresses = &AddressAPI{c: c}
	c.Profile = &ProfileAPI{c: c}
	return c, nil
}

func fallbackString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// request describes one backend call.
type request struct {
	method      string
	path        string
	query       url.Values
	body        any
	rawBody     io.Reader
	contentType string
}

// call performs req and decodes the envelope's data into T.
func call[T any](ctx context.Context, c *Client, req request) (T, error) {
	var zero T
	raw, err := c.do(ctx, req)
	if err != nil {
		return zero, err
	}

	var env model.Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "decode %s %s envelope", req.method, req.path)
	}
	if env.Code != c.successCode {
		return zero, &APIError{Code: env.Code, Message: env.Message, Method: req.method, Path: req.path}
	}
	return env.Data, nil
}

// do sends req, retrying idempotent reads, and returns the raw 2xx body.
func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	attempts := 1
	if req.method == http.MethodGet {
		attempts += c.retryLimit
	}

	var lastErr error
	for attempt := range attempts {
		body, retryable, err := c.once(ctx, req)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable || attempt == attempts-1 {
			break
		}
		c.logger.DebugContext(ctx, "retrying backend call",
			"method", req.method, "path", req.path, "attempt", attempt+1, "error", err)
		delay := time.Duration(attempt+1) * 200 * time.Millisecond
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, apperrors.MapTransportError(ctx.Err())
		case <-timer.C:
		}
	}
	return nil, lastErr
}

func (c *Client) once(ctx context.Context, req request) ([]byte, bool, error) {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, false, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, ctx.Err() == nil, apperrors.MapTransportError(err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.DebugContext(ctx, "close backend response body", "error", cerr)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, true, apperrors.Wrap(err, apperrors.ErrCodeUpstream, "read backend response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := envelopeMessage(body)
		if msg == "" {
			msg = fmt.Sprintf("%s %s", req.method, req.path)
		}
		return nil, resp.StatusCode >= 500, apperrors.MapHTTPStatus(resp.StatusCode, msg)
	}
	return body, false, nil
}

func (c *Client) newRequest(ctx context.Context, req request) (*http.Request, error) {
	// req.path is already escaped; keep both forms so ids are sent verbatim.
	u := *c.base
	rawPath := c.base.EscapedPath() + req.path
	path, err := url.PathUnescape(rawPath)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "build %s %s url", req.method, req.path)
	}
	u.Path, u.RawPath = path, rawPath
	if len(req.query) > 0 {
		u.RawQuery = req.query.Encode()
	}

	var (
		body        io.Reader
		contentType = req.contentType
	)
	switch {
	case req.rawBody != nil:
		body = req.rawBody
	case req.body != nil:
		b, err := json.Marshal(req.body)
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "encode %s %s body", req.method, req.path)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), body)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "create %s %s request", req.method, req.path)
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	token, err := c.token(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "resolve backend token")
	}
	if token != "" {
		if c.tokenScheme != "" {
			token = c.tokenScheme + " " + token
		}
		httpReq.Header.Set(c.tokenHeader, token)
	}
	return httpReq, nil
}

func (c *Client) token(ctx context.Context) (string, error) {
	if tok, ok := tokenFromContext(ctx); ok {
		return tok, nil
	}
	if c.tokens == nil {
		return "", nil
	}
	return c.tokens.Token(ctx)
}

// envelopeMessage extracts the message of an error envelope, if the body is one.
func envelopeMessage(body []byte) string {
	var env struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return fallbackString(env.Message, env.Msg)
}
