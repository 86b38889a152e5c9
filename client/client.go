// Package client provides a tushare pro API client with typed query builders.
package client

import (
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/DrewBradfordXYZ/tushare-go/core"
)

// DefaultEndpoint is the single URL every tushare pro query is posted to.
const DefaultEndpoint = "http://api.tushare.pro"

// DefaultTimeout bounds a single query when no HTTP client is supplied.
const DefaultTimeout = 30 * time.Second

// Client holds the access token and the service endpoint.
//
// A Client is read-only after construction and may be shared by any number
// of goroutines issuing independent queries.
type Client struct {
	token    string
	endpoint string

	httpClient *http.Client
	timeout    time.Duration
	throttle   Throttle
	logger     *core.Logger

	// Logging configuration
	debug       bool
	arborLogger arbor.ILogger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom endpoint (default http://api.tushare.pro).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.endpoint = url
	}
}

// WithHTTPClient sets the HTTP client used for every query.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the request timeout (default 30s). Combined with
// WithHTTPClient, the supplied client is copied rather than modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithThrottle sets a custom throttle implementation.
func WithThrottle(t Throttle) Option {
	return func(c *Client) {
		c.throttle = t
	}
}

// WithRequestsPerMinute enables sliding window throttling.
// tushare quotas are counted per endpoint per minute and depend on the
// account's points; 0 disables throttling.
func WithRequestsPerMinute(n int) Option {
	return func(c *Client) {
		if n <= 0 {
			c.throttle = NewNoOpThrottle()
			return
		}
		c.throttle = NewSlidingWindowThrottle(n)
	}
}

// WithRateLimit enables token bucket throttling: r requests per second with
// the given burst.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(c *Client) {
		c.throttle = NewRateLimitThrottle(r, burst)
	}
}

// WithDebug enables debug logging.
func WithDebug(enabled bool) Option {
	return func(c *Client) {
		c.debug = enabled
	}
}

// WithLogger routes SDK logging through an existing arbor logger.
func WithLogger(l arbor.ILogger) Option {
	return func(c *Client) {
		c.arborLogger = l
	}
}

// New creates a new tushare client. The token is not validated; the service
// rejects a bad token on the first query.
func New(token string, opts ...Option) *Client {
	c := &Client{
		token:    token,
		endpoint: DefaultEndpoint,
	}

	for _, opt := range opts {
		opt(c)
	}

	switch {
	case c.httpClient == nil:
		timeout := c.timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	case c.timeout > 0:
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	if c.throttle == nil {
		c.throttle = NewNoOpThrottle()
	}
	if c.arborLogger != nil {
		c.logger = core.NewLoggerFrom(c.arborLogger, c.debug)
	} else {
		c.logger = core.NewLogger(c.debug)
	}

	return c
}

// Token returns the access token the client was built with.
func (c *Client) Token() string {
	return c.token
}

// BaseURL returns the URL queries are posted to.
func (c *Client) BaseURL() string {
	return c.endpoint
}

// QueryBuilder starts an untyped query for any endpoint, declared or not.
//
// Example:
//
//	df, err := client.QueryBuilder("stk_limit").
//	    Params(map[string]string{"trade_date": "20240115"}).
//	    Query(ctx)
func (c *Client) QueryBuilder(apiName string) QueryBuilder {
	return QueryBuilder{
		client:  c,
		apiName: apiName,
	}
}
