// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// clearEnv blanks both token variables for the duration of the test.
// godotenv.Load does not override variables that exist, so the test also
// unsets them after t.Setenv registers their restoration.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvViteToken, EnvToken} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(t *testing.T) Options
		wantValue  string
		wantSource string
	}{
		{
			name: "vite variable wins over everything",
			setup: func(t *testing.T) Options {
				dir := t.TempDir()
				writeFile(t, dir, SecretFile, "from-file")
				t.Setenv(EnvViteToken, "ghp_vite")
				t.Setenv(EnvToken, "ghp_plain")
				return Options{SecretsDir: dir}
			},
			wantValue:  "ghp_vite",
			wantSource: "env:" + EnvViteToken,
		},
		{
			name: "falls back to GITHUB_TOKEN",
			setup: func(t *testing.T) Options {
				t.Setenv(EnvToken, "  ghp_plain\n")
				return Options{}
			},
			wantValue:  "ghp_plain",
			wantSource: "env:" + EnvToken,
		},
		{
			name: "loads .env file",
			setup: func(t *testing.T) Options {
				dir := t.TempDir()
				path := writeFile(t, dir, ".env", "VITE_GITHUB_TOKEN=ghp_dotenv\n")
				t.Cleanup(func() { os.Unsetenv(EnvViteToken) })
				return Options{EnvFile: path}
			},
			wantValue:  "ghp_dotenv",
			wantSource: "env:" + EnvViteToken,
		},
		{
			name: "reads secrets file",
			setup: func(t *testing.T) Options {
				dir := t.TempDir()
				writeFile(t, dir, SecretFile, "  ghp_file  \n")
				return Options{SecretsDir: dir}
			},
			wantValue: "ghp_file",
		},
		{
			name: "missing sources give no token",
			setup: func(t *testing.T) Options {
				dir := t.TempDir()
				return Options{
					EnvFile:    filepath.Join(dir, "missing.env"),
					SecretsDir: filepath.Join(dir, "missing"),
				}
			},
		},
		{
			name: "whitespace-only secret is ignored",
			setup: func(t *testing.T) Options {
				dir := t.TempDir()
				writeFile(t, dir, SecretFile, " \n\t ")
				return Options{SecretsDir: dir}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			opts := tt.setup(t)

			tok, err := Resolve(opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, tok.Value())
			assert.Equal(t, tt.wantValue != "", tok.Present())
			if tt.wantSource != "" {
				assert.Equal(t, tt.wantSource, tok.Source())
			}
		})
	}
}

func TestResolve_DotenvDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "VITE_GITHUB_TOKEN=ghp_dotenv\n")
	t.Setenv(EnvViteToken, "ghp_shell")

	tok, err := Resolve(Options{EnvFile: path})
	require.NoError(t, err)
	assert.Equal(t, "ghp_shell", tok.Value())
}

func TestResolve_SecretsPathIsDirectory(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, SecretFile), 0o755))

	_, err := Resolve(Options{SecretsDir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading secret")
}

func TestTokenRedacted(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"ghp_1234567890abcdef", "ghp_1234..."},
		{"ghp_1234", "ghp_..."},
		{"abc", "a..."},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, Token{value: tt.value}.Redacted())
		})
	}
}

func TestTokenLooksClassic(t *testing.T) {
	assert.True(t, Token{value: "ghp_abc"}.LooksClassic())
	assert.False(t, Token{value: "github_pat_abc"}.LooksClassic())
	assert.False(t, Token{}.LooksClassic())
}
