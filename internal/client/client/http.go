package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/learnhub/internal/common"
	"github.com/dmitrijs2005/learnhub/internal/logging"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/dmitrijs2005/learnhub/internal/client/client"

// DefaultTimeout bounds every request.
const DefaultTimeout = 10 * time.Second

// maxResponseBody caps how much of a response is read into memory.
const maxResponseBody = 4 << 20

// CredentialStore is the capability the client uses to read the bearer
// credential for each request and to discard it when the server rejects it.
type CredentialStore interface {
	Credential(ctx context.Context) (string, bool)
	SetCredential(ctx context.Context, token string) error
	ClearCredential(ctx context.Context) error
}

// UnauthorizedHandler runs after a 401 response has cleared the credential.
type UnauthorizedHandler func(ctx context.Context)

type HTTPClient struct {
	baseURL        string
	http           *http.Client
	headers        http.Header
	credentials    CredentialStore
	onUnauthorized UnauthorizedHandler
	log            logging.Logger
	tracer         trace.Tracer
	requestID      func() string

	Auth        *AuthAPI
	Courses     *CoursesAPI
	Quiz        *QuizAPI
	Leaderboard *LeaderboardAPI
	Users       *UsersAPI
	Payments    *PaymentsAPI
	Proctoring  *ProctoringAPI
}

type Option func(*HTTPClient)

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client. Its Timeout is kept
// as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithHeader adds a default header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *HTTPClient) { c.headers.Set(key, value) }
}

func WithUnauthorizedHandler(h UnauthorizedHandler) Option {
	return func(c *HTTPClient) { c.onUnauthorized = h }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTracerProvider traces requests with tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *HTTPClient) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewHTTPClient builds a client for baseURL (e.g. http://localhost:8081/api).
// creds may be nil, in which case requests are sent anonymously.
func NewHTTPClient(baseURL string, creds CredentialStore, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        &http.Client{Timeout: DefaultTimeout},
		headers:     http.Header{},
		credentials: creds,
		log:         logging.Nop(),
		tracer:      otel.Tracer(tracerName),
		requestID:   uuid.NewString,
	}
	c.headers.Set("Content-Type", "application/json")
	c.headers.Set("Accept", "application/json")

	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthAPI{c: c}
	c.Courses = &CoursesAPI{c: c}
	c.Quiz = &QuizAPI{c: c}
	c.Leaderboard = &LeaderboardAPI{c: c}
	c.Users = &UsersAPI{c: c}
	c.Payments = &PaymentsAPI{c: c}
	c.Proctoring = &ProctoringAPI{c: c}
	return c
}

// SetUnauthorizedHandler installs h after construction, for callers whose
// handler depends on the client itself.
func (c *HTTPClient) SetUnauthorizedHandler(h UnauthorizedHandler) {
	c.onUnauthorized = h
}

type callOptions struct {
	bearer string
}

type callOption func(*callOptions)

// withBearer sends token instead of the stored credential.
func withBearer(token string) callOption {
	return func(o *callOptions) { o.bearer = token }
}

func (c *HTTPClient) credential(ctx context.Context) string {
	if c.credentials == nil {
		return ""
	}
	token, ok := c.credentials.Credential(ctx)
	if !ok {
		return ""
	}
	return token
}

// Do sends a request and decodes a JSON response body into out (which may be
// nil). in, when non-nil, is encoded as the JSON request body.
func (c *HTTPClient) Do(ctx context.Context, method, path string, in, out any) error {
	return c.dispatch(ctx, method, path, in, out)
}

func (c *HTTPClient) dispatch(ctx context.Context, method, path string, in, out any, opts ...callOption) error {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}

	ctx, span := c.tracer.Start(ctx, method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	for k, v := range c.headers {
		req.Header[k] = append([]string(nil), v...)
	}

	reqID := c.requestID()
	req.Header.Set(common.RequestIDHeaderName, reqID)
	span.SetAttributes(attribute.String("http.request.id", reqID))
	propagation.TraceContext{}.Inject(ctx, propagation.HeaderCarrier(req.Header))

	token := o.bearer
	if token == "" {
		token = c.credential(ctx)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	log := c.log.With("method", method, "path", path, "request_id", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Error(ctx, "request failed", "error", err, "duration", time.Since(start))
		span.RecordError(err)
		span.SetStatus(codes.Error, ErrUnavailable.Error())
		return fmt.Errorf("%s %s: %w: %w", method, path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		log.Error(ctx, "reading response failed", "error", err)
		return fmt.Errorf("%s %s: read body: %w: %w", method, path, ErrUnavailable, err)
	}

	log.Debug(ctx, "request dispatched", "status", resp.StatusCode, "duration", time.Since(start))
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(ctx, log)
		return newRemoteError(method, path, resp.StatusCode, payload)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return newRemoteError(method, path, resp.StatusCode, payload)
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// handleUnauthorized is the global 401 policy: drop the credential, then let
// the handler send the user back to the login entry point.
func (c *HTTPClient) handleUnauthorized(ctx context.Context, log logging.Logger) {
	log.Warn(ctx, "credential rejected by server")

	if c.credentials != nil {
		if err := c.credentials.ClearCredential(ctx); err != nil {
			log.Error(ctx, "clearing rejected credential failed", "error", err)
		}
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, out any, opts ...callOption) error {
	return c.dispatch(ctx, http.MethodGet, path, nil, out, opts...)
}

func (c *HTTPClient) post(ctx context.Context, path string, in, out any, opts ...callOption) error {
	return c.dispatch(ctx, http.MethodPost, path, in, out, opts...)
}

func (c *HTTPClient) put(ctx context.Context, path string, in, out any) error {
	return c.dispatch(ctx, http.MethodPut, path, in, out)
}
