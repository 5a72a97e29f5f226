// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the search-probe CLI, a smoke test for
// the GitHub user search API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/search-probe/internal/github"
	"github.com/pdiddy/search-probe/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd runs the probe when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "search-probe [queries...]",
	Short: "Smoke-test the GitHub user search API",
	Long: `search-probe sends a handful of user search queries to the GitHub API, one
after another, and prints the status, total count, item count, and first login
for each. Failures are printed and the run moves on to the next query.

A token is read from VITE_GITHUB_TOKEN, GITHUB_TOKEN, .env, or
.secrets/github-token. Without one the public rate limit applies.

Queries given as arguments replace the built-in set; so does --queries-file.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runProbe,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./search-probe.yaml or ~/.config/search-probe/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "diagnostic log level on stderr: debug, info, warn, error")
	rootCmd.PersistentFlags().String("queries-file", "", "YAML file with a queries list (default: built-in set)")
	rootCmd.PersistentFlags().String("history-db", filepath.Join(".search-probe", "history.db"), "SQLite database for recorded runs")

	rootCmd.Flags().String("endpoint", github.DefaultEndpoint, "user search endpoint")
	rootCmd.Flags().Int("per-page", github.DefaultPerPage, "items requested per query")
	rootCmd.Flags().String("sort", github.DefaultSort, "sort field")
	rootCmd.Flags().String("order", github.DefaultOrder, "sort order: asc or desc")
	rootCmd.Flags().Duration("timeout", github.DefaultTimeout, "per-request timeout")
	rootCmd.Flags().String("secrets-dir", ".secrets", "directory holding a github-token file")
	rootCmd.Flags().String("env-file", ".env", "dotenv file loaded before reading token variables")
	rootCmd.Flags().Bool("record", false, "record the run in the history database")

	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		"log_level":    "log-level",
		"history_db":   "history-db",
		"queries_file": "queries-file",
	})
	bindFlags(rootCmd.Flags(), map[string]string{
		"endpoint":     "endpoint",
		"per_page":     "per-page",
		"sort":         "sort",
		"order":        "order",
		"timeout":      "timeout",
		"secrets_dir":  "secrets-dir",
		"env_file":     "env-file",
		"record":       "record",
	})

	viper.SetDefault("accept", github.AcceptV3)
	viper.SetDefault("user_agent", github.DefaultUserAgent)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("search-probe")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "search-probe"))
		}
	}

	viper.SetEnvPrefix("SEARCH_PROBE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// probeConfig assembles the effective configuration from viper.
func probeConfig() types.ProbeConfig {
	return types.ProbeConfig{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("timeout"),
				UserAgent: viper.GetString("user_agent"),
			},
			Endpoint: viper.GetString("endpoint"),
			Accept:   viper.GetString("accept"),
			PerPage:  viper.GetInt("per_page"),
			Sort:     viper.GetString("sort"),
			Order:    viper.GetString("order"),
		},
		QueriesFile: viper.GetString("queries_file"),
		HistoryDB:   viper.GetString("history_db"),
		Record:      viper.GetBool("record"),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
