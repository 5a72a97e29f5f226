package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/search-probe/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded probe runs",
	Long: `History lists runs recorded with --record, newest first, with one line
per query showing the status and counts that run observed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := history.Open(viper.GetString("history_db"))
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer store.Close()

		runs, err := store.Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}
		history.FormatRuns(runs, cmd.OutOrStdout())
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "number of runs to show")

	rootCmd.AddCommand(historyCmd)
}
