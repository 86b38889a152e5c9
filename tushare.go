// Package tushare provides a Go SDK for the tushare pro financial data API.
//
// This SDK provides:
//   - Typed query builders for the declared endpoints, generated from an endpoint schema
//   - An untyped QueryBuilder for any endpoint the service offers
//   - Tabular results as gota DataFrames
//   - Typed errors for transport, service and parse failures
//   - Optional client-side throttling against the per-minute quota
//   - limit/offset pagination for paged endpoints
//
// Basic usage:
//
//	ts := tushare.New("your-token")
//
//	df, err := ts.StockBasic().
//	    TsCode("000001.SZ").
//	    ListStatus("L").
//	    Query(ctx)
//
// Any endpoint by name:
//
//	df, err := ts.QueryBuilder("stk_limit").
//	    Params(map[string]string{"trade_date": "20240115"}).
//	    Query(ctx)
//
// With throttling and debug logging:
//
//	ts := tushare.New("your-token",
//	    tushare.WithRequestsPerMinute(200),
//	    tushare.WithDebug(true),
//	)
package tushare

import (
	"github.com/DrewBradfordXYZ/tushare-go/client"
	"github.com/DrewBradfordXYZ/tushare-go/core"
)

// Client is the main tushare API client.
type Client = client.Client

// Re-export types for convenience
type (
	Option = client.Option

	// Builder types
	QueryBuilder    = client.QueryBuilder
	EndpointBuilder = client.EndpointBuilder

	// Error types
	TushareError   = core.TushareError
	TransportError = core.TransportError
	ServiceError   = core.ServiceError
	ParseError     = core.ParseError
	SchemaError    = core.SchemaError

	// Throttle types
	Throttle              = client.Throttle
	SlidingWindowThrottle = client.SlidingWindowThrottle
	RateLimitThrottle     = client.RateLimitThrottle
	NoOpThrottle          = client.NoOpThrottle

	// Pagination types
	PaginationOptions = client.PaginationOptions

	// Schema types
	EndpointSchema = core.EndpointSchema
)

const (
	// DefaultEndpoint is the URL queries are posted to.
	DefaultEndpoint = client.DefaultEndpoint

	// CodeRateLimited is the service code for an exhausted per-minute quota.
	CodeRateLimited = core.CodeRateLimited
)

// New creates a new tushare client.
func New(token string, opts ...Option) *Client {
	return client.New(token, opts...)
}

// Client options re-exported from client
var (
	WithBaseURL           = client.WithBaseURL
	WithHTTPClient        = client.WithHTTPClient
	WithTimeout           = client.WithTimeout
	WithThrottle          = client.WithThrottle
	WithRequestsPerMinute = client.WithRequestsPerMinute
	WithRateLimit         = client.WithRateLimit
	WithDebug             = client.WithDebug
	WithLogger            = client.WithLogger
)

// Helper functions re-exported from core
var (
	// IsTransportError reports whether err is a *TransportError.
	IsTransportError = core.IsTransportError

	// IsServiceError reports whether err is a *ServiceError.
	IsServiceError = core.IsServiceError

	// IsParseError reports whether err is a *ParseError.
	IsParseError = core.IsParseError

	// ParseDate parses YYYYMMDD or YYYY-MM-DD in China Standard Time.
	ParseDate = core.ParseDate

	// FormatDate formats a time as YYYYMMDD in China Standard Time.
	FormatDate = core.FormatDate
)

// NewSlidingWindowThrottle creates a sliding window throttle.
func NewSlidingWindowThrottle(requestsPerMinute int) *SlidingWindowThrottle {
	return client.NewSlidingWindowThrottle(requestsPerMinute)
}

// NewNoOpThrottle creates a no-op throttle.
func NewNoOpThrottle() *NoOpThrottle {
	return client.NewNoOpThrottle()
}

// Endpoints returns the declared endpoints in schema order.
func Endpoints() []EndpointSchema {
	return client.Schema().Original.Endpoints
}
