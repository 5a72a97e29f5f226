package types

import "time"

// HTTPConfig holds the HTTP settings for requests to the search endpoint.
type HTTPConfig struct {
	// Timeout bounds a single request, including reading the body.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with every request
	// (e.g. "search-probe/0.1"). GitHub rejects requests without one.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds the fixed parameters applied to every query.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the user search URL (default https://api.github.com/search/users).
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Accept is the media type requested from the API.
	Accept string `json:"accept" yaml:"accept"`

	// PerPage is the number of items requested per query (default 5).
	PerPage int `json:"per_page" yaml:"per_page"`

	// Sort is the sort field (default "followers").
	Sort string `json:"sort" yaml:"sort"`

	// Order is the sort order, "asc" or "desc" (default "desc").
	Order string `json:"order" yaml:"order"`
}

// ProbeConfig groups everything a probe run needs besides the token.
type ProbeConfig struct {
	Search SearchConfig `json:"search" yaml:"search"`

	// QueriesFile, when set, replaces the built-in queries.
	QueriesFile string `json:"queries_file,omitempty" yaml:"queries_file,omitempty"`

	// HistoryDB is the SQLite path used when runs are recorded.
	HistoryDB string `json:"history_db,omitempty" yaml:"history_db,omitempty"`

	// Record enables writing each run to HistoryDB.
	Record bool `json:"record" yaml:"record"`
}
