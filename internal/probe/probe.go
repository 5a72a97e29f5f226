// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package probe runs a fixed list of search queries one after another and
// prints a short summary of each response. Failures are reported per query
// and never stop the run.
package probe

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/search-probe/internal/credentials"
	"github.com/pdiddy/search-probe/internal/github"
	"github.com/pdiddy/search-probe/pkg/types"
)

// Searcher performs one search request. *github.Client implements it.
type Searcher interface {
	SearchUsers(ctx context.Context, query string) (*github.SearchResponse, error)
}

// Runner executes probe runs. Log may be nil.
type Runner struct {
	Searcher Searcher
	Token    credentials.Token
	Out      io.Writer
	Log      *zap.Logger
}

// Result is the record of one run.
type Result struct {
	Started       time.Time
	Authenticated bool
	Outcomes      []types.Outcome
}

// Count returns how many outcomes have the given kind.
func (r Result) Count(kind types.OutcomeKind) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// Run probes each query in order, printing one block per query between the
// opening and closing banners. If ctx is cancelled the remaining queries are
// skipped, but the closing banner is still printed.
func (r *Runner) Run(ctx context.Context, queries []string) Result {
	log := r.logger()
	res := Result{
		Started:       time.Now().UTC(),
		Authenticated: r.Token.Present(),
	}

	WriteHeader(r.Out, r.Token)
	for i, q := range queries {
		if err := ctx.Err(); err != nil {
			log.Warn("run interrupted", zap.Int("skipped", len(queries)-i), zap.Error(err))
			break
		}
		o := r.Probe(ctx, q)
		WriteOutcome(r.Out, o)
		res.Outcomes = append(res.Outcomes, o)
	}
	WriteFooter(r.Out)

	log.Info("run finished",
		zap.Int("queries", len(res.Outcomes)),
		zap.Int("ok", res.Count(types.OutcomeSuccess)),
		zap.Int("http_errors", res.Count(types.OutcomeHTTPError)),
		zap.Int("transport_errors", res.Count(types.OutcomeTransportError)),
	)
	return res
}

// Probe sends a single query and classifies the result.
func (r *Runner) Probe(ctx context.Context, query string) types.Outcome {
	log := r.logger().With(zap.String("query", query))
	start := time.Now()

	resp, err := r.Searcher.SearchUsers(ctx, query)
	o := types.Outcome{Query: query, Elapsed: time.Since(start)}
	if resp != nil {
		o.StatusCode = resp.StatusCode
		o.RateLimit = resp.RateLimit
	}

	switch {
	case err != nil:
		o.Kind = types.OutcomeTransportError
		o.Message = err.Error()
		log.Debug("request failed", zap.Error(err), zap.Duration("elapsed", o.Elapsed))
		return o
	case resp.StatusCode != http.StatusOK:
		o.Kind = types.OutcomeHTTPError
		o.Message = resp.Message
		if o.Message == "" {
			o.Message = UnknownError
		}
	default:
		o.Kind = types.OutcomeSuccess
		o.TotalCount = resp.TotalCount
		o.ItemCount = len(resp.Items)
		if o.ItemCount > 0 {
			o.FirstLogin = resp.Items[0].Login
		}
	}

	fields := []zap.Field{
		zap.Int("status", o.StatusCode),
		zap.Duration("elapsed", o.Elapsed),
	}
	if o.RateLimit.Known() {
		fields = append(fields,
			zap.Int("rate_remaining", o.RateLimit.Remaining),
			zap.Int("rate_limit", o.RateLimit.Limit),
			zap.Time("rate_reset", o.RateLimit.Reset))
	}
	log.Debug("response", fields...)
	return o
}

func (r *Runner) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}
