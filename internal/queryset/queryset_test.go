// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package queryset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	got := Default()
	assert.Equal(t, []string{
		"language:dart stars:>=1 followers:>=1",
		"language:dart",
		"language:typescript stars:>=1 followers:>=1",
		"language:typescript",
	}, got)

	// Callers may not mutate the built-in set.
	got[0] = "changed"
	assert.Equal(t, "language:dart stars:>=1 followers:>=1", Default()[0])
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
		errMsg  string
	}{
		{
			name:  "keeps order and trims",
			input: "queries:\n  - \"  language:go  \"\n  - location:lisbon\n",
			want:  []string{"language:go", "location:lisbon"},
		},
		{
			name:    "empty list",
			input:   "queries: []\n",
			wantErr: ErrEmpty,
		},
		{
			name:    "missing key",
			input:   "other: 1\n",
			wantErr: ErrEmpty,
		},
		{
			name:   "blank entry",
			input:  "queries:\n  - language:go\n  - \"   \"\n",
			errMsg: "query 2 is blank",
		},
		{
			name:   "invalid yaml",
			input:  "queries: [unterminated\n",
			errMsg: "parsing query file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.yaml")
	want := []string{"language:rust followers:>=100", "type:org"}

	require.NoError(t, Write(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolve(t *testing.T) {
	got, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Default(), got)

	path := filepath.Join(t.TempDir(), "q.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queries:\n  - language:go\n"), 0o644))
	got, err = Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"language:go"}, got)

	_, err = Resolve(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading query file")
}
