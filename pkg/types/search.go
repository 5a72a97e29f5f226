// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for search-probe.
package types

import "time"

// OutcomeKind classifies how a single query ended.
type OutcomeKind string

const (
	// OutcomeSuccess is an HTTP 200 with a decodable body.
	OutcomeSuccess OutcomeKind = "success"

	// OutcomeHTTPError is any non-200 status.
	OutcomeHTTPError OutcomeKind = "http_error"

	// OutcomeTransportError covers network errors, timeouts, and
	// undecodable 200 bodies.
	OutcomeTransportError OutcomeKind = "transport_error"
)

// RateLimit is the rate-limit snapshot GitHub reports on each response.
// Zero values mean the header was missing or malformed.
type RateLimit struct {
	Limit     int       `json:"limit" yaml:"limit"`
	Remaining int       `json:"remaining" yaml:"remaining"`
	Reset     time.Time `json:"reset" yaml:"reset"`
}

// Known reports whether the response carried rate-limit headers.
func (r RateLimit) Known() bool {
	return r.Limit > 0
}

// Outcome is the result of probing one query.
type Outcome struct {
	// Query is the search expression as sent.
	Query string `json:"query" yaml:"query"`

	Kind OutcomeKind `json:"kind" yaml:"kind"`

	// StatusCode is 0 when no response was received.
	StatusCode int `json:"status_code" yaml:"status_code"`

	// TotalCount is the API's total_count; only meaningful on success.
	TotalCount int `json:"total_count" yaml:"total_count"`

	// ItemCount is the number of items in this page.
	ItemCount int `json:"item_count" yaml:"item_count"`

	// FirstLogin is the login of the first item, empty when there were none.
	FirstLogin string `json:"first_login,omitempty" yaml:"first_login,omitempty"`

	// Message is the API error message for HTTP errors, or the failure
	// description for transport errors.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	RateLimit RateLimit `json:"rate_limit" yaml:"rate_limit"`

	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}
