// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package probe

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/search-probe/internal/credentials"
	"github.com/pdiddy/search-probe/pkg/types"
)

const (
	bannerWidth = 60
	title       = "🧪 GitHub API Search Test"
	closing     = "✨ Test completed"

	// UnknownError is printed for HTTP errors whose body has no message.
	UnknownError = "Unknown error"
)

var rule = strings.Repeat("=", bannerWidth)

// WriteHeader prints the opening banner and the token line.
func WriteHeader(w io.Writer, tok credentials.Token) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
	if tok.Present() {
		fmt.Fprintf(w, "✅ Token found: %s\n", tok.Redacted())
	} else {
		fmt.Fprintln(w, "⚠️  No token found - using public API (limited to 60 req/hour)")
	}
}

// WriteOutcome prints the block for one query. The Status line is omitted
// when no response arrived.
func WriteOutcome(w io.Writer, o types.Outcome) {
	fmt.Fprintf(w, "\n📝 Testing query: %s\n", o.Query)
	if o.StatusCode != 0 {
		fmt.Fprintf(w, "   Status: %d\n", o.StatusCode)
	}

	switch o.Kind {
	case types.OutcomeSuccess:
		fmt.Fprintf(w, "   ✅ Total count: %d\n", o.TotalCount)
		fmt.Fprintf(w, "   ✅ Items returned: %d\n", o.ItemCount)
		if o.ItemCount > 0 {
			fmt.Fprintf(w, "   ✅ First user: %s\n", o.FirstLogin)
		}
	case types.OutcomeHTTPError:
		fmt.Fprintf(w, "   ❌ Error: %s\n", o.Message)
	default:
		fmt.Fprintf(w, "   ❌ Exception: %s\n", o.Message)
	}
}

// WriteFooter prints the closing banner.
func WriteFooter(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, closing)
	fmt.Fprintln(w, rule)
}
