package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/logging"
)

// Endpoint paths on the correction server
const (
	PathCorrect     = "/correct"
	PathPolishAI    = "/polish-ai"
	PathRewriteTone = "/rewrite-tone"
)

// DefaultTimeout is the default HTTP request timeout. An unreachable backend
// must surface as a failure rather than hang the editor.
const DefaultTimeout = 15 * time.Second

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// Client is an HTTP client for the TypePolish correction server. Each
// operation performs exactly one request; retries are a caller policy, never
// added here, to avoid duplicate work against the backend.
type Client struct {
	// BaseURL is the server base URL (e.g. "http://127.0.0.1:8000")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewClient creates a client for the given server base URL with the default
// request timeout.
func NewClient(baseURL string) *Client {
	return NewClientWithTimeout(baseURL, DefaultTimeout)
}

// NewClientWithTimeout creates a client with an explicit request timeout.
func NewClientWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Correct runs grammar correction over text using the given mode.
func (c *Client) Correct(ctx context.Context, text string, mode Mode) (Result, error) {
	return c.post(ctx, "correct", PathCorrect, correctRequest{Text: text, Mode: mode}, text)
}

// PolishAI runs the AI fluency rewrite over text. Tone and style refine the
// rewrite; zero values let the server pick its defaults.
func (c *Client) PolishAI(ctx context.Context, text string, tone Tone, style Style) (Result, error) {
	return c.post(ctx, "polish-ai", PathPolishAI, polishAIRequest{Text: text, Tone: tone, Style: style}, text)
}

// RewriteTone rewrites text in the given emotional register.
func (c *Client) RewriteTone(ctx context.Context, text string, tone Tone) (Result, error) {
	return c.post(ctx, "rewrite-tone", PathRewriteTone, rewriteToneRequest{Text: text, Tone: tone}, text)
}

// Health probes the server's banner route. Returns the banner message.
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/", nil)
	if err != nil {
		return "", &RequestError{Type: ErrTypeNetwork, Operation: "health", Message: "failed to create request", Err: err}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", classifyTransportError("health", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newHTTPError("health", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", classifyTransportError("health", err)
	}

	var banner healthResponse
	if err := json.Unmarshal(body, &banner); err != nil {
		return "", newParseError("health", "failed to parse banner response", err)
	}

	return banner.Message, nil
}

// post performs a single JSON POST and normalizes the outcome. The returned
// Result is always usable: on any failure it carries the original text and a
// failure-class-specific summary, alongside a non-nil classified error.
func (c *Client) post(ctx context.Context, operation, path string, payload any, text string) (Result, error) {
	logging.LogRequest(operation, len(text))
	start := time.Now()

	result, status, err := c.attempt(ctx, operation, path, payload, text)
	logging.LogResponse(operation, status, time.Since(start), err)
	return result, err
}

func (c *Client) attempt(ctx context.Context, operation, path string, payload any, text string) (Result, int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		// Marshaling plain strings cannot realistically fail, but the
		// fallback contract holds regardless.
		reqErr := newParseError(operation, "failed to encode request", err)
		return fallbackResult(text, reqErr), 0, reqErr
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		reqErr := &RequestError{Type: ErrTypeNetwork, Operation: operation, Message: "failed to create request", Err: err}
		return fallbackResult(text, reqErr), 0, reqErr
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		reqErr := classifyTransportError(operation, err)
		return fallbackResult(text, reqErr), 0, reqErr
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := newHTTPError(operation, resp.StatusCode)
		return fallbackResult(text, reqErr), resp.StatusCode, reqErr
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		reqErr := classifyTransportError(operation, err)
		return fallbackResult(text, reqErr), resp.StatusCode, reqErr
	}

	var parsed correctionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		reqErr := newParseError(operation, "failed to parse response body", err)
		return fallbackResult(text, reqErr), resp.StatusCode, reqErr
	}

	// Missing expected fields fall back to the original text / empty
	// summary rather than producing malformed state.
	if parsed.CorrectedText == nil {
		return Result{CorrectedText: text}, resp.StatusCode, nil
	}

	result := Result{CorrectedText: *parsed.CorrectedText}
	if parsed.ChangesSummary != nil {
		result.ChangesSummary = *parsed.ChangesSummary
	}
	return result, resp.StatusCode, nil
}

// fallbackResult builds the failure-shaped Result: original text unchanged
// plus a human-readable summary for the failure class.
func fallbackResult(text string, err error) Result {
	return Result{
		CorrectedText:  text,
		ChangesSummary: FailureSummary(err),
	}
}
