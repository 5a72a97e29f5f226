package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/search-probe/internal/credentials"
	"github.com/pdiddy/search-probe/internal/github"
	"github.com/pdiddy/search-probe/internal/history"
	"github.com/pdiddy/search-probe/internal/logger"
	"github.com/pdiddy/search-probe/internal/probe"
	"github.com/pdiddy/search-probe/internal/queryset"
)

// runProbe resolves queries and the token, runs every query in order, and
// optionally records the run. Per-query failures never make it return an error.
func runProbe(cmd *cobra.Command, args []string) error {
	cfg := probeConfig()
	log := logger.New(viper.GetString("log_level"))
	defer log.Sync()

	queries, err := queryset.Resolve(cfg.QueriesFile)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		queries = args
	}

	tok, err := credentials.Resolve(credentials.Options{
		EnvFile:    viper.GetString("env_file"),
		SecretsDir: viper.GetString("secrets_dir"),
	})
	if err != nil {
		return err
	}
	if tok.Present() {
		log.Debug("token resolved", zap.String("source", tok.Source()), zap.Bool("classic_pat", tok.LooksClassic()))
	} else {
		log.Debug("no token; using unauthenticated requests")
	}

	client := github.NewClient(cfg.Search, tok.Value())
	eff := client.Config()
	log.Debug("search configured",
		zap.String("endpoint", eff.Endpoint),
		zap.Int("per_page", eff.PerPage),
		zap.String("sort", eff.Sort),
		zap.String("order", eff.Order),
		zap.Duration("timeout", eff.Timeout),
		zap.Int("queries", len(queries)),
	)

	runner := &probe.Runner{
		Searcher: client,
		Token:    tok,
		Out:      cmd.OutOrStdout(),
		Log:      log,
	}
	res := runner.Run(cmd.Context(), queries)

	if !cfg.Record {
		return nil
	}
	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer store.Close()

	id, err := store.Record(cmd.Context(), res.Started, res.Authenticated, res.Outcomes)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Recorded run #%d in %s\n", id, cfg.HistoryDB)
	return nil
}
