package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/search-probe/internal/queryset"
)

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "List the queries a run would send",
	Long: `Queries prints the effective query list in run order. With --write it saves
the list as a YAML file that --queries-file accepts, which is a convenient
starting point for a custom set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		queries, err := queryset.Resolve(viper.GetString("queries_file"))
		if err != nil {
			return err
		}

		if path, _ := cmd.Flags().GetString("write"); path != "" {
			if err := queryset.Write(path, queries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d queries to %s\n", len(queries), path)
			return nil
		}

		for i, q := range queries {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, q)
		}
		return nil
	},
}

func init() {
	queriesCmd.Flags().String("write", "", "write the query list to this YAML file")

	rootCmd.AddCommand(queriesCmd)
}
