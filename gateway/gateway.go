package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	apierrors "github.com/apextrack/go-admin-console/internal/errors"
	"github.com/apextrack/go-admin-console/session"
)

const defaultTimeout = 30 * time.Second

// errorBody is the failure envelope the remote API returns. Only the
// message field is relied upon; anything else is ignored.
type errorBody struct {
	Message string `json:"message"`
}

// Gateway is the single choke point for every remote call. It attaches
// the bearer credential from the store, normalizes headers, and turns
// HTTP outcomes into the closed error taxonomy. A 401 from any endpoint
// clears the store and fires the session-invalidated hook before the
// caller sees the error, so no resource client re-implements expiry
// handling.
type Gateway struct {
	baseURL       string
	httpClient    *http.Client
	store         *session.Store
	onInvalidated func()
	log           zerolog.Logger
}

// Option defines a function type to modify the Gateway instance.
type Option func(*Gateway)

// WithHTTPClient replaces the underlying HTTP client (primarily for
// testing and for callers that need a custom transport).
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		g.httpClient = client
	}
}

// WithLogger sets the gateway logger.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Gateway) {
		g.log = log
	}
}

// WithSessionInvalidatedHook registers the notification fired when the
// server declares the session expired. The UI layer subscribes here to
// route back to login; the gateway itself knows nothing about
// navigation.
func WithSessionInvalidatedHook(hook func()) Option {
	return func(g *Gateway) {
		g.onInvalidated = hook
	}
}

// New creates a Gateway for the API rooted at baseURL.
func New(baseURL string, store *session.Store, options ...Option) (*Gateway, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("[gateway.New] baseURL is required")
	}
	if store == nil {
		return nil, errors.New("[gateway.New] store is required")
	}

	gw := &Gateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		store:      store,
		log:        zerolog.Nop(),
	}
	for _, opt := range options {
		opt(gw)
	}
	return gw, nil
}

// Do issues a request with an optional JSON body and decodes the JSON
// response into out. A nil body sends no payload; a nil out discards the
// response payload.
func (g *Gateway) Do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "[Gateway.Do] json.Marshal")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := g.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return g.send(req, out)
}

// Upload issues a multipart/form-data request, used when binary assets
// ride along with structured fields. The content type (and boundary)
// comes from the multipart writer; it is never set by hand.
func (g *Gateway) Upload(ctx context.Context, method, path string, form *Form, out any) error {
	if form == nil {
		return errors.New("[Gateway.Upload] form is required")
	}

	body, contentType, err := form.encode()
	if err != nil {
		return errors.Wrap(err, "[Gateway.Upload] form.encode")
	}

	req, err := g.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	return g.send(req, out)
}

func (g *Gateway) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "[Gateway.newRequest] http.NewRequestWithContext")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if token := g.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (g *Gateway) send(req *http.Request, out any) error {
	requestID := req.Header.Get("X-Request-ID")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		// No response at all. This is not proof of bad credentials, so
		// the session survives.
		g.log.Warn().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("request_id", requestID).
			Err(err).
			Msg("transport failure")
		return apierrors.Wrapf(apierrors.ErrNetworkFailure, "[Gateway.send] %s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierrors.Wrapf(apierrors.ErrNetworkFailure, "[Gateway.send] read body: %v", err)
	}

	g.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("request complete")

	if resp.StatusCode == http.StatusUnauthorized {
		// The one reserved status: the credential is dead. Clear the
		// store before the caller can observe the error so stale
		// concurrent callers already see an empty session. The hook
		// fires only on the call that actually tore the session down.
		if g.store.Clear() && g.onInvalidated != nil {
			g.onInvalidated()
		}
		return apierrors.Wrapf(apierrors.ErrSessionExpired, "[Gateway.send] %s %s", req.Method, req.URL.Path)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &apierrors.RequestError{
			StatusCode: resp.StatusCode,
			Message:    serverMessage(payload),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &apierrors.RequestError{
			StatusCode: resp.StatusCode,
			Message:    "undecodable response payload",
		}
	}
	return nil
}

func serverMessage(payload []byte) string {
	var body errorBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return body.Message
}
