// Package http implements the shared HTTP client for the RealtyHub API:
// URL construction, credential injection, response envelope normalization,
// and translation of failures into the realty error taxonomy.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/realtyhub-io/realty-client/internal/constants"
	"github.com/realtyhub-io/realty-client/pkg/realty"
)

var errInvalidJSON = errors.New("invalid JSON response")

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an HTTP request to the API. Path is resource-relative
// (e.g. "contacts", "properties/123/notes") without scheme or host.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an HTTP response from the API. Body holds the
// normalized payload: when the wire body is an object wrapping the real
// payload under a "data" key, Body is the unwrapped payload.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the single point of contact with the remote service. It is
// stateless beyond the stored credential, which is read-only after
// construction, so it is safe for concurrent use.
type Client struct {
	host       string
	apiKey     string
	httpClient *retryablehttp.Client
	resolveURL URLResolver
	userAgent  string
	logger     Logger
	debug      bool
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets a structured logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPTimeout bounds each outbound request. On expiry the call fails
// with a network error.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables opt-in retries for transient failures. The
// client itself never retries unless this is set: retry policy belongs to
// the caller.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithURLResolver overrides the verb-to-base-URL rule. Used by tests and
// by callers pointing at a non-production host layout.
func WithURLResolver(resolver URLResolver) Option {
	return func(c *Client) {
		c.resolveURL = resolver
	}
}

// NewClient creates a new API HTTP client for the given host and API key.
func NewClient(host, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	// Surface the final response instead of a synthesized "giving up" error
	// so status mapping below stays in charge.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		host:       strings.TrimSuffix(host, "/"),
		apiKey:     apiKey,
		httpClient: retryClient,
		resolveURL: DefaultURLResolver(host),
		userAgent:  "realty-client-go/1.0",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a single HTTP request and returns the normalized response.
// Non-2xx statuses and undecodable bodies are returned as typed errors from
// the realty taxonomy; no local recovery is attempted.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if strings.Trim(req.Path, "/") == "" {
		return nil, realty.ErrEmptyPath
	}

	fullURL, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	var bodyBytes []byte

	if req.Body != nil {
		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	c.logRequest(req.Method, fullURL, bodyBytes)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, realty.NewNetworkError(fmt.Sprintf("%s %s failed", req.Method, req.Path), err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	rawBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, realty.NewNetworkError("reading response body", err)
	}

	c.logResponse(httpResp.StatusCode, rawBody)

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       rawBody,
	}

	if httpResp.StatusCode >= 400 {
		return resp, mapStatusError(httpResp.StatusCode, rawBody)
	}

	payload, err := unwrapEnvelope(rawBody)
	if err != nil {
		return resp, realty.NewError(realty.ErrorKindProtocol,
			"response body is not valid JSON", httpResp.StatusCode, rawBody)
	}

	resp.Body = payload

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: "GET", Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: "POST", Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: "PUT", Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: "PATCH", Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: "DELETE", Path: path})
}

// buildURL resolves the verb-dependent base URL, applies any per-path
// creation override, and attaches query parameters plus the credential.
func (c *Client) buildURL(req *Request) (string, error) {
	path := applyCreateOverride(req.Method, req.Path)
	base := c.resolveURL(req.Method)

	parsed, err := url.Parse(base + "/" + strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", fmt.Errorf("building request URL: %w", err)
	}

	query := url.Values{}

	for key, values := range req.Query {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	if c.apiKey != "" {
		query.Set(constants.AuthQueryParam, c.apiKey)
	}

	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

func (c *Client) logRequest(method, fullURL string, body []byte) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":    method,
		"url":       redactURL(fullURL),
		"body_size": len(body),
	})
}

func (c *Client) logResponse(statusCode int, body []byte) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status":    statusCode,
		"body_size": len(body),
	})
}

// redactURL masks the credential carried in the query string before the
// URL reaches any log sink.
func redactURL(fullURL string) string {
	parsed, err := url.Parse(fullURL)
	if err != nil {
		return fullURL
	}

	query := parsed.Query()
	if query.Has(constants.AuthQueryParam) {
		query.Set(constants.AuthQueryParam, "***")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

// unwrapEnvelope normalizes the response body. Bodies of shape
// {"data": <payload>, ...} yield <payload>; any other valid JSON value
// passes through unchanged, as do empty bodies. Invalid JSON is an error.
func unwrapEnvelope(body []byte) ([]byte, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	if !json.Valid(body) {
		return nil, errInvalidJSON
	}

	var envelope map[string]json.RawMessage

	if err := json.Unmarshal(body, &envelope); err != nil {
		// Not an object (e.g. a bare array); already the payload.
		return body, nil
	}

	if data, ok := envelope["data"]; ok {
		return data, nil
	}

	return body, nil
}

// mapStatusError translates a non-2xx status into the error taxonomy,
// retaining the status code and raw body for diagnostics.
func mapStatusError(statusCode int, body []byte) error {
	message := extractMessage(body)

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		if message == "" {
			message = "authentication failed"
		}

		return realty.NewError(realty.ErrorKindAuthentication, message, statusCode, body)
	case statusCode == http.StatusNotFound:
		if message == "" {
			message = "resource not found"
		}

		return realty.NewError(realty.ErrorKindNotFound, message, statusCode, body)
	case statusCode == http.StatusUnprocessableEntity,
		statusCode == http.StatusBadRequest && hasValidationShape(body):
		if message == "" {
			message = "request validation failed"
		}

		return realty.NewError(realty.ErrorKindValidation, message, statusCode, body)
	case statusCode == http.StatusTooManyRequests:
		if message == "" {
			message = "rate limit exceeded"
		}

		return realty.NewError(realty.ErrorKindRateLimit, message, statusCode, body)
	default:
		if message == "" {
			message = "request failed"
		}

		return realty.NewError(realty.ErrorKindServer, message, statusCode, body)
	}
}

// extractMessage pulls a human-readable message out of common upstream
// error body shapes. Returns "" when none is found.
func extractMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}

	if parsed.Message != "" {
		return parsed.Message
	}

	return parsed.Error
}

// hasValidationShape reports whether a 400 body looks like a field
// validation failure: an object carrying an "errors" member.
func hasValidationShape(body []byte) bool {
	var parsed map[string]json.RawMessage

	if err := json.Unmarshal(body, &parsed); err != nil {
		return false
	}

	_, ok := parsed["errors"]

	return ok
}
