package httpclient

import (
	"maps"
	"net/http"
	"time"

	"github.com/andyle182810/cinemadash/endpoint"
	"github.com/andyle182810/cinemadash/query"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	DefaultTimeout    = 30 * time.Second
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	HeaderXRequestID  = "X-Request-ID"
	ContentTypeJSON   = "application/json"
)

type Option func(*Client)

// WithTimeout bounds every call made through the client, whatever transport
// is installed. Non-positive values disable the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithDoer replaces the transport entirely, e.g. with NewRestyDoer.
func WithDoer(doer Doer) Option {
	return func(c *Client) {
		if doer != nil {
			c.httpClient = doer
		}
	}
}

func WithCatalog(catalog endpoint.Catalog) Option {
	return func(c *Client) {
		c.catalog = catalog
	}
}

func WithRequestIDKey(key any) Option {
	return func(c *Client) {
		c.requestIDKey = key
	}
}

func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *Client) {
		maps.Copy(c.defaultHeaders, headers)
	}
}

func WithMaxResponseSize(size int64) Option {
	return func(c *Client) {
		c.maxResponseSize = size
	}
}

// WithRateLimiter makes every call wait for a token before it is sent.
func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

type RequestOption func(*requestConfig)

type requestConfig struct {
	headers   map[string]string
	query     *query.Params
	timeout   time.Duration
	requestID string
	endpoint  string
}

func (rc *requestConfig) endpointName(path string) string {
	if rc.endpoint != "" {
		return rc.endpoint
	}

	if path == "" {
		return "/"
	}

	return "other"
}

func WithRequestHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.headers == nil {
			rc.headers = make(map[string]string)
		}

		rc.headers[key] = value
	}
}

func WithRequestTimeout(timeout time.Duration) RequestOption {
	return func(rc *requestConfig) {
		rc.timeout = timeout
	}
}

func WithRequestID(requestID string) RequestOption {
	return func(rc *requestConfig) {
		rc.requestID = requestID
	}
}

// WithQuery adds one query parameter. Absent values (nil, "", nil pointers)
// are dropped.
func WithQuery(key string, value any) RequestOption {
	return func(rc *requestConfig) {
		if rc.query == nil {
			rc.query = query.New()
		}

		rc.query.Set(key, value)
	}
}

func WithParams(params *query.Params) RequestOption {
	return func(rc *requestConfig) {
		if params == nil {
			return
		}

		if rc.query == nil {
			rc.query = query.New()
		}

		rc.query.Merge(params)
	}
}

// WithEndpointName labels the call for metrics with its catalog name instead
// of the concrete path.
func WithEndpointName(name string) RequestOption {
	return func(rc *requestConfig) {
		rc.endpoint = name
	}
}
