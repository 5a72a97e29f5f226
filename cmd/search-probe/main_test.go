package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/search-probe/internal/history"
)

func TestRootCommand_RunsQueriesAndRecords(t *testing.T) {
	for _, k := range []string{"VITE_GITHUB_TOKEN", "GITHUB_TOKEN"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	var seen []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL.Query().Get("q"))
		fmt.Fprint(w, `{"total_count": 3, "items": [{"login": "gopher"}]}`)
	}))
	defer ts.Close()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.db")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"--endpoint", ts.URL,
		"--env-file", "",
		"--secrets-dir", "",
		"--history-db", dbPath,
		"--record",
		"language:go", "language:rust",
	})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	assert.Equal(t, []string{"language:go", "language:rust"}, seen)
	report := out.String()
	assert.Contains(t, report, "⚠️  No token found")
	assert.Equal(t, 2, strings.Count(report, "✅ First user: gopher"))
	assert.Equal(t, 1, strings.Count(report, "✨ Test completed"))

	store, err := history.Open(dbPath)
	require.NoError(t, err)
	defer store.Close()
	runs, err := store.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Len(t, runs[0].Outcomes, 2)
	assert.False(t, runs[0].Authenticated)
}
