package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/andyle182810/cinemadash/endpoint"
	"github.com/andyle182810/cinemadash/query"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ Doer = (*http.Client)(nil)

// Client is the single choke point for calls to a JSON REST backend. It is
// immutable after New and safe for concurrent use.
type Client struct {
	baseURL         string
	httpClient      Doer
	catalog         endpoint.Catalog
	requestIDKey    any
	defaultHeaders  map[string]string
	limiter         *rate.Limiter
	metrics         *Metrics
	logger          zerolog.Logger
	timeout         time.Duration
	maxResponseSize int64 // 0 means no limit
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   &http.Client{}, //nolint:exhaustruct
		catalog:      endpoint.Catalog{},
		requestIDKey: nil,
		defaultHeaders: map[string]string{
			HeaderAccept: ContentTypeJSON,
		},
		limiter:         nil,
		metrics:         nil,
		logger:          log.Logger,
		timeout:         DefaultTimeout,
		maxResponseSize: 0,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Get(
	ctx context.Context,
	path string,
	response any,
	opts ...RequestOption,
) error {
	return c.do(ctx, http.MethodGet, path, nil, response, opts...)
}

func (c *Client) Post(
	ctx context.Context,
	path string,
	body any,
	response any,
	opts ...RequestOption,
) error {
	return c.do(ctx, http.MethodPost, path, body, response, opts...)
}

func (c *Client) Put(
	ctx context.Context,
	path string,
	body any,
	response any,
	opts ...RequestOption,
) error {
	return c.do(ctx, http.MethodPut, path, body, response, opts...)
}

func (c *Client) Patch(
	ctx context.Context,
	path string,
	body any,
	response any,
	opts ...RequestOption,
) error {
	return c.do(ctx, http.MethodPatch, path, body, response, opts...)
}

func (c *Client) Delete(
	ctx context.Context,
	path string,
	response any,
	opts ...RequestOption,
) error {
	return c.do(ctx, http.MethodDelete, path, nil, response, opts...)
}

func (c *Client) Do(
	ctx context.Context,
	method string,
	path string,
	body any,
	response any,
	opts ...RequestOption,
) error {
	return c.do(ctx, method, path, body, response, opts...)
}

// Resolve expands a named catalog endpoint into a path.
func (c *Client) Resolve(name string, ids ...any) (string, error) {
	path, err := c.catalog.Resolve(name, ids...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCreateRequest, err)
	}

	return path, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Catalog() endpoint.Catalog {
	return c.catalog
}

func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	body any,
	response any,
	opts ...RequestOption,
) error {
	cfg := c.buildRequestConfig(ctx, opts...)
	started := time.Now()

	err := c.roundTrip(ctx, method, path, body, response, cfg)
	if err != nil {
		c.logFailure(method, path, cfg.requestID, err)
	}

	c.metrics.observe(method, cfg.endpointName(path), err, time.Since(started))

	return err
}

func (c *Client) roundTrip(
	ctx context.Context,
	method string,
	path string,
	body any,
	response any,
	cfg *requestConfig,
) error {
	reqCtx, cancelClient := withOptionalTimeout(ctx, c.timeout)
	defer cancelClient()

	reqCtx, cancelRequest := withOptionalTimeout(reqCtx, cfg.timeout)
	defer cancelRequest()

	if c.limiter != nil {
		if err := c.limiter.Wait(reqCtx); err != nil {
			return fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}
	}

	req, err := c.buildRequest(reqCtx, method, path, body, cfg)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp, response, cfg.requestID)
}

// withOptionalTimeout leaves ctx untouched when timeout is not positive.
func withOptionalTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, timeout)
}

func (c *Client) buildRequestConfig(ctx context.Context, opts ...RequestOption) *requestConfig {
	cfg := &requestConfig{
		headers:   make(map[string]string),
		query:     nil,
		timeout:   0,
		requestID: "",
		endpoint:  "",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.requestID == "" {
		cfg.requestID = c.extractRequestID(ctx)
	}

	return cfg
}

func (c *Client) extractRequestID(ctx context.Context) string {
	if c.requestIDKey != nil {
		if id, ok := ctx.Value(c.requestIDKey).(string); ok && id != "" {
			return id
		}
	}

	return uuid.New().String()
}

func (c *Client) buildRequest(
	ctx context.Context,
	method string,
	path string,
	body any,
	cfg *requestConfig,
) (*http.Request, error) {
	url := c.buildURL(path, cfg.query)

	var bodyReader io.Reader

	attachBody := body != nil && carriesBody(method)

	if attachBody {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
		}

		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateRequest, err)
	}

	for k, v := range c.defaultHeaders {
		req.Header.Set(k, v)
	}

	if attachBody {
		req.Header.Set(HeaderContentType, ContentTypeJSON)
	}

	for k, v := range cfg.headers {
		req.Header.Set(k, v)
	}

	if cfg.requestID != "" {
		req.Header.Set(HeaderXRequestID, cfg.requestID)
	}

	return req, nil
}

// handleResponse classifies a response by its declared content type. Non-JSON
// bodies are never parsed: 2xx becomes the acknowledgement value and anything
// else a generic status error. JSON bodies are always decoded; on failure the
// server's "detail" field becomes the error message.
func (c *Client) handleResponse(resp *http.Response, response any, requestID string) error {
	respRequestID := resp.Header.Get(HeaderXRequestID)
	if respRequestID == "" {
		respRequestID = requestID
	}

	if !IsJSONContentType(resp.Header.Get(HeaderContentType)) {
		_, _ = io.Copy(io.Discard, resp.Body)

		if !isSuccess(resp.StatusCode) {
			return NewServiceError(resp.StatusCode, "", respRequestID)
		}

		return assignAck(response)
	}

	bodyBytes, err := c.readBody(resp.Body)
	if err != nil {
		return err
	}

	if !isSuccess(resp.StatusCode) {
		return NewServiceError(resp.StatusCode, extractDetail(bodyBytes), respRequestID)
	}

	if response == nil {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, response); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return nil
}

func (c *Client) readBody(body io.Reader) ([]byte, error) {
	if c.maxResponseSize > 0 {
		body = io.LimitReader(body, c.maxResponseSize+1)
	}

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	if c.maxResponseSize > 0 && int64(len(bodyBytes)) > c.maxResponseSize {
		return nil, ErrResponseTooLarge
	}

	return bodyBytes, nil
}

func (c *Client) buildURL(path string, params *query.Params) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	fullURL := c.baseURL + path

	encoded := params.Encode()
	if encoded == "" {
		return fullURL
	}

	separator := "?"
	if strings.Contains(fullURL, "?") {
		separator = "&"
	}

	return fullURL + separator + encoded
}

func (c *Client) logFailure(method, path, requestID string, err error) {
	event := c.logger.Error().
		Err(err).
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID)

	if svcErr, ok := IsServiceError(err); ok {
		event = event.Int("status", svcErr.StatusCode)
	}

	event.Msg("API request failed")
}

func carriesBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

func isSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

func IsJSONContentType(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), ContentTypeJSON)
}
