// Package core provides shared types and utilities for the tushare SDK.
//
// This package contains:
//   - Error types for the three failure kinds (transport, service, parse)
//   - Date parsing and formatting for tushare's YYYYMMDD format
//   - Endpoint schema types
//   - Logging utilities
//
// Error types can be used for type assertions to handle specific error cases:
//
//	df, err := client.StockBasic().ListStatus("L").Query(ctx)
//	if err != nil {
//	    var svc *core.ServiceError
//	    if errors.As(err, &svc) {
//	        // The service answered but refused the request
//	    }
//	}
package core

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// CodeRateLimited is the response code tushare uses when the per-minute
// quota of an endpoint has been exhausted.
const CodeRateLimited = 40203

// TushareError is the base error type for all tushare SDK errors.
//
// All specific error types (TransportError, ServiceError, ParseError) embed
// this type. RequestID is the id the service assigned to the request, or a
// client-side trace id when the service never answered.
type TushareError struct {
	Message   string `json:"message"`
	APIName   string `json:"apiName,omitempty"`
	RequestID string `json:"requestId,omitempty"`
	Cause     error  `json:"-"`
}

func (e *TushareError) Error() string {
	if e.APIName != "" {
		return fmt.Sprintf("%s: %s", e.APIName, e.Message)
	}
	return e.Message
}

func (e *TushareError) Unwrap() error {
	return e.Cause
}

// TransportError is returned when the service could not be reached.
// This covers DNS, connection, TLS and context cancellation failures.
type TransportError struct {
	TushareError
}

// NewTransportError creates a new TransportError wrapping cause.
func NewTransportError(apiName, traceID string, cause error) *TransportError {
	msg := "transport failure"
	if cause != nil {
		msg = "transport failure: " + cause.Error()
	}
	return &TransportError{
		TushareError: TushareError{
			Message:   msg,
			APIName:   apiName,
			RequestID: traceID,
			Cause:     cause,
		},
	}
}

// ServiceError is returned when the service reports a non-success status,
// either through a non-zero response code or a non-2xx HTTP status.
// Message carries the remote message verbatim.
type ServiceError struct {
	TushareError
	Code       int `json:"code"`
	StatusCode int `json:"statusCode"`
}

func (e *ServiceError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s (code: %d)", e.TushareError.Error(), e.Code)
	}
	return fmt.Sprintf("%s (status: %d)", e.TushareError.Error(), e.StatusCode)
}

// IsRateLimited reports whether the service refused the request because the
// endpoint quota was exhausted.
func (e *ServiceError) IsRateLimited() bool {
	return e.Code == CodeRateLimited || e.StatusCode == http.StatusTooManyRequests
}

// NewServiceError creates a new ServiceError from a response code and message.
func NewServiceError(apiName, requestID string, code int, message string) *ServiceError {
	return &ServiceError{
		TushareError: TushareError{
			Message:   message,
			APIName:   apiName,
			RequestID: requestID,
		},
		Code:       code,
		StatusCode: http.StatusOK,
	}
}

// ParseError is returned when the service answered successfully but the
// payload could not be decoded into a table.
type ParseError struct {
	TushareError
}

// NewParseError creates a new ParseError.
func NewParseError(apiName, requestID, message string, cause error) *ParseError {
	return &ParseError{
		TushareError: TushareError{
			Message:   message,
			APIName:   apiName,
			RequestID: requestID,
			Cause:     cause,
		},
	}
}

// ParseErrorResponse turns a non-2xx HTTP response into a ServiceError.
// The body is used as the message when it is short plain text.
func ParseErrorResponse(resp *http.Response, apiName, traceID string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	message := strings.TrimSpace(string(body))
	if message == "" {
		message = resp.Status
	}

	return &ServiceError{
		TushareError: TushareError{
			Message:   message,
			APIName:   apiName,
			RequestID: traceID,
		},
		StatusCode: resp.StatusCode,
	}
}

// IsTransportError reports whether err is or wraps a TransportError.
func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// IsServiceError reports whether err is or wraps a ServiceError.
func IsServiceError(err error) bool {
	var target *ServiceError
	return errors.As(err, &target)
}

// IsParseError reports whether err is or wraps a ParseError.
func IsParseError(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// SchemaError is returned when an endpoint or parameter is not part of the
// declared endpoint schema.
type SchemaError struct {
	Message string
}

func (e *SchemaError) Error() string {
	return e.Message
}

// NewUnknownEndpointError creates a SchemaError for an undeclared endpoint.
// A close match among known is offered as a suggestion.
func NewUnknownEndpointError(apiName string, known []string) *SchemaError {
	msg := fmt.Sprintf("unknown endpoint %q", apiName)
	if similar := findSimilar(apiName, known); similar != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", similar)
	}
	return &SchemaError{Message: msg}
}

// NewUnknownParamError creates a SchemaError for a parameter outside an
// endpoint's vocabulary.
func NewUnknownParamError(apiName, param string, known []string) *SchemaError {
	msg := fmt.Sprintf("unknown parameter %q for endpoint %q", param, apiName)
	if similar := findSimilar(param, known); similar != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", similar)
	}
	return &SchemaError{Message: msg}
}

// RequestIDOf returns the request or trace id carried by a tushare error,
// or "" for any other error.
func RequestIDOf(err error) string {
	var transport *TransportError
	if errors.As(err, &transport) {
		return transport.RequestID
	}
	var service *ServiceError
	if errors.As(err, &service) {
		return service.RequestID
	}
	var parse *ParseError
	if errors.As(err, &parse) {
		return parse.RequestID
	}
	return ""
}
