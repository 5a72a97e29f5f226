// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package credentials resolves the optional GitHub token used to raise the
// search API's rate allowance. A missing token is not an error: callers fall
// back to unauthenticated requests.
//
// Lookup order: VITE_GITHUB_TOKEN, GITHUB_TOKEN, then the github-token file in
// the secrets directory. A .env file is loaded first without overriding
// variables already present in the environment.
package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvViteToken is the name used in Vite .env files.
	EnvViteToken = "VITE_GITHUB_TOKEN"

	// EnvToken is the conventional GitHub token variable.
	EnvToken = "GITHUB_TOKEN"

	// SecretFile is the file name looked up in the secrets directory.
	SecretFile = "github-token"

	redactedPrefix = 8
)

// Options controls where Resolve looks for a token. Empty paths skip that source.
type Options struct {
	EnvFile    string
	SecretsDir string
}

// DefaultOptions reads ./.env and ./.secrets/.
func DefaultOptions() Options {
	return Options{EnvFile: ".env", SecretsDir: ".secrets"}
}

// Token is a resolved credential. The zero value means no token.
type Token struct {
	value  string
	source string
}

// NewToken wraps a value obtained elsewhere, such as a command-line flag.
func NewToken(value, source string) Token {
	return Token{value: strings.TrimSpace(value), source: source}
}

// Value returns the raw token.
func (t Token) Value() string { return t.value }

// Present reports whether a token was found.
func (t Token) Present() bool { return t.value != "" }

// Source names where the token came from, e.g. "env:GITHUB_TOKEN".
func (t Token) Source() string { return t.source }

// Redacted returns at most the first 8 characters followed by "...".
func (t Token) Redacted() string {
	if len(t.value) <= redactedPrefix {
		return t.value[:len(t.value)/2] + "..."
	}
	return t.value[:redactedPrefix] + "..."
}

// LooksClassic reports whether the token has the classic personal access
// token prefix.
func (t Token) LooksClassic() bool {
	return strings.HasPrefix(t.value, "ghp_")
}

// Resolve returns the first token found. Errors are returned only for an
// unreadable .env or secrets file; missing files are ignored.
func Resolve(opts Options) (Token, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Token{}, fmt.Errorf("loading %s: %w", opts.EnvFile, err)
		}
	}

	for _, key := range []string{EnvViteToken, EnvToken} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return Token{value: v, source: "env:" + key}, nil
		}
	}

	if opts.SecretsDir != "" {
		path := filepath.Join(opts.SecretsDir, SecretFile)
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if v := strings.TrimSpace(string(data)); v != "" {
				return Token{value: v, source: "file:" + path}, nil
			}
		case !errors.Is(err, fs.ErrNotExist):
			return Token{}, fmt.Errorf("reading secret %s: %w", path, err)
		}
	}

	return Token{}, nil
}
