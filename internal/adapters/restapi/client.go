// Package restapi implements the gateway ports over the organization
// management REST API: JSON bodies, bearer credentials, request-scoped
// logging and classification of every failure into the apperrors taxonomy.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/orgtrack/orgtrack_client/internal/apperrors"
	"github.com/orgtrack/orgtrack_client/internal/platform/applog"
)

// TokenProvider supplies the bearer credential for outbound requests.
// ok is false when no usable credential exists; the request then goes out
// unauthenticated and the server decides.
type TokenProvider interface {
	Token() (token string, ok bool)
}

// Client is the shared HTTP plumbing behind every gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
}

// NewClient builds a client for the API at baseURL. tokens may be nil for
// unauthenticated use.
func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// apiErrorBody covers the error shapes the API is known to produce.
type apiErrorBody struct {
	Message string   `json:"message"`
	Error   string   `json:"error"`
	Errors  []string `json:"errors"`
}

func (b apiErrorBody) message() string {
	switch {
	case b.Message != "":
		return b.Message
	case b.Error != "":
		return b.Error
	case len(b.Errors) > 0:
		return strings.Join(b.Errors, "; ")
	}
	return ""
}

// do issues one JSON request and decodes the response into out (skipped when
// out is nil). Every returned error is classified: server-produced failures
// are KindTransport carrying the server message, everything else is
// KindUnexpected.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperrors.Unexpected("failed to encode request body", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperrors.Unexpected("failed to build request", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logger := applog.FromContext(ctx).With(
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("path", path),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Request failed", slog.String("error", err.Error()))
		return apperrors.Unexpected("request failed", err)
	}
	defer resp.Body.Close()

	logger.Debug("Request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode >= 400 {
		return c.classifyFailure(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Error("Failed to decode response body", slog.String("error", err.Error()))
		return apperrors.Unexpected("failed to decode response", err)
	}
	return nil
}

// classifyFailure turns a non-2xx response into a taxonomy error. A body
// with a structured message becomes KindTransport and the message is kept
// verbatim for the user; an unreadable body is KindUnexpected.
func (c *Client) classifyFailure(resp *http.Response) error {
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	statusErr := fmt.Errorf("api responded with status %d", resp.StatusCode)

	var body apiErrorBody
	if readErr == nil && json.Unmarshal(raw, &body) == nil {
		if msg := body.message(); msg != "" {
			appErr := apperrors.Transport(msg, statusErr)
			if resp.StatusCode == http.StatusNotFound {
				appErr.Err = fmt.Errorf("%w: %w", apperrors.ErrNotFound, statusErr)
			}
			return appErr
		}
	}
	if resp.StatusCode == http.StatusNotFound {
		return apperrors.Unexpected("resource not found", fmt.Errorf("%w: %w", apperrors.ErrNotFound, statusErr))
	}
	return apperrors.Unexpected("unexpected api failure", statusErr)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
