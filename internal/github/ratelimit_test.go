// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package github

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRateLimit(t *testing.T) {
	tests := []struct {
		name      string
		headers   map[string]string
		limit     int
		remaining int
		reset     time.Time
	}{
		{
			name: "all headers present",
			headers: map[string]string{
				"X-RateLimit-Limit":     "30",
				"X-RateLimit-Remaining": "27",
				"X-RateLimit-Reset":     "1700000000",
			},
			limit:     30,
			remaining: 27,
			reset:     time.Unix(1700000000, 0).UTC(),
		},
		{
			name:    "no headers",
			headers: map[string]string{},
		},
		{
			name: "malformed values",
			headers: map[string]string{
				"X-RateLimit-Limit":     "ten",
				"X-RateLimit-Remaining": "-3",
				"X-RateLimit-Reset":     "soon",
			},
		},
		{
			name: "exhausted",
			headers: map[string]string{
				"X-RateLimit-Limit":     "10",
				"X-RateLimit-Remaining": "0",
			},
			limit: 10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			for k, v := range tt.headers {
				h.Set(k, v)
			}
			rl := ParseRateLimit(h)
			assert.Equal(t, tt.limit, rl.Limit)
			assert.Equal(t, tt.remaining, rl.Remaining)
			assert.True(t, tt.reset.Equal(rl.Reset), "reset = %v, want %v", rl.Reset, tt.reset)
			assert.Equal(t, tt.limit > 0, rl.Known())
		})
	}
}
