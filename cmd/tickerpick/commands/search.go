package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tickerpick/internal/search"
)

func searchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Print the tickers matching query, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			fn := search.WithLogging(a.log, search.Search)
			out := cmd.OutOrStdout()
			for _, r := range fn(query, a.catalog.Records(), a.cfg.ResultLimit) {
				fmt.Fprintf(out, "%s\t%s\n", r.Symbol, r.Name)
			}
			return nil
		},
	}
	return cmd
}

func lookupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <symbol>",
		Short: "Print the catalog entry for an exact symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := a.catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("invalid symbol %q", strings.ToUpper(strings.TrimSpace(args[0])))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.Symbol, r.Name)
			return nil
		},
	}
	return cmd
}
