// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package github sends user search requests to the GitHub REST API.
// Each call is a single GET: retries and pagination are left off on purpose
// so the probe reports exactly what one request returns.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pdiddy/search-probe/pkg/types"
)

const (
	// DefaultEndpoint is the GitHub user search URL.
	DefaultEndpoint = "https://api.github.com/search/users"

	// AcceptV3 is the media type the probe asks for.
	AcceptV3 = "application/vnd.github.v3+json"

	DefaultPerPage   = 5
	DefaultSort      = "followers"
	DefaultOrder     = "desc"
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "search-probe/0.1"
)

// ErrMalformedBody is returned when a 200 response cannot be decoded.
// The accompanying SearchResponse still carries the status code.
var ErrMalformedBody = errors.New("malformed response body")

// DefaultSearchConfig returns the fixed parameters used when nothing is configured.
func DefaultSearchConfig() types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
		Endpoint: DefaultEndpoint,
		Accept:   AcceptV3,
		PerPage:  DefaultPerPage,
		Sort:     DefaultSort,
		Order:    DefaultOrder,
	}
}

// Headers returns the header set for a run. With a token the set carries
// an Authorization header in GitHub's "token <value>" form; without one it
// carries only Accept.
func Headers(token, accept string) map[string]string {
	if accept == "" {
		accept = AcceptV3
	}
	h := map[string]string{"Accept": accept}
	if token != "" {
		h["Authorization"] = "token " + token
	}
	return h
}

// User is one item of the search result list.
type User struct {
	Login   string  `json:"login"`
	ID      int64   `json:"id"`
	HTMLURL string  `json:"html_url"`
	Type    string  `json:"type"`
	Score   float64 `json:"score"`
}

// SearchResponse is the decoded result of one search request.
type SearchResponse struct {
	StatusCode int
	TotalCount int
	Items      []User

	// Message is the API's error message on non-200 responses, if any.
	Message string

	RateLimit types.RateLimit
	Elapsed   time.Duration
}

// Client performs user searches with a fixed header set.
type Client struct {
	http    *resty.Client
	cfg     types.SearchConfig
	headers map[string]string
}

// NewClient builds a client for cfg. Zero-valued fields in cfg fall back to
// DefaultSearchConfig. The header set is computed once here and never changes.
func NewClient(cfg types.SearchConfig, token string) *Client {
	cfg = withDefaults(cfg)

	rc := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetRetryCount(0)

	return &Client{
		http:    rc,
		cfg:     cfg,
		headers: Headers(token, cfg.Accept),
	}
}

// Config returns the effective search configuration.
func (c *Client) Config() types.SearchConfig { return c.cfg }

// Authenticated reports whether requests carry an Authorization header.
func (c *Client) Authenticated() bool {
	_, ok := c.headers["Authorization"]
	return ok
}

// SearchUsers sends one GET for query. A non-nil error means no usable
// response: a transport failure returns a nil response, while a malformed
// 200 body returns the response (for its status) together with an error
// wrapping ErrMalformedBody. Non-200 statuses are not errors.
func (c *Client) SearchUsers(ctx context.Context, query string) (*SearchResponse, error) {
	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeaders(c.headers).
		SetQueryParams(map[string]string{
			"q":        query,
			"per_page": strconv.Itoa(c.cfg.PerPage),
			"sort":     c.cfg.Sort,
			"order":    c.cfg.Order,
		}).
		Get(c.cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	out := &SearchResponse{
		StatusCode: resp.StatusCode(),
		RateLimit:  ParseRateLimit(resp.Header()),
		Elapsed:    time.Since(start),
	}

	if out.StatusCode != 200 {
		var eb errorBody
		if json.Unmarshal(resp.Body(), &eb) == nil {
			out.Message = eb.Message
		}
		return out, nil
	}

	var sb searchBody
	if err := json.Unmarshal(resp.Body(), &sb); err != nil {
		return out, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	out.TotalCount = sb.TotalCount
	out.Items = sb.Items
	return out, nil
}

func withDefaults(cfg types.SearchConfig) types.SearchConfig {
	def := DefaultSearchConfig()
	if cfg.Endpoint == "" {
		cfg.Endpoint = def.Endpoint
	}
	if cfg.Accept == "" {
		cfg.Accept = def.Accept
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = def.PerPage
	}
	if cfg.PerPage > 100 {
		cfg.PerPage = 100
	}
	if cfg.Sort == "" {
		cfg.Sort = def.Sort
	}
	if cfg.Order == "" {
		cfg.Order = def.Order
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	return cfg
}

// GitHub search API JSON structures.
type searchBody struct {
	TotalCount        int    `json:"total_count"`
	IncompleteResults bool   `json:"incomplete_results"`
	Items             []User `json:"items"`
}

type errorBody struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}
