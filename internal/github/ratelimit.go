// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package github

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pdiddy/search-probe/pkg/types"
)

const (
	headerLimit     = "X-RateLimit-Limit"
	headerRemaining = "X-RateLimit-Remaining"
	headerReset     = "X-RateLimit-Reset"
)

// ParseRateLimit reads GitHub's rate-limit headers. Missing or malformed
// values are left at zero; the probe only reports them, it never waits on them.
func ParseRateLimit(h http.Header) types.RateLimit {
	var rl types.RateLimit
	rl.Limit = headerInt(h, headerLimit)
	rl.Remaining = headerInt(h, headerRemaining)
	if secs := headerInt(h, headerReset); secs > 0 {
		rl.Reset = time.Unix(int64(secs), 0).UTC()
	}
	return rl
}

func headerInt(h http.Header, key string) int {
	v := h.Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
