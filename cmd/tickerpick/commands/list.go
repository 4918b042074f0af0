package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tickerpick/internal/ui"
	"tickerpick/internal/ui/views"
)

func listCmd(a *app) *cobra.Command {
	var usePager bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the whole catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if usePager {
				return ui.RunOv(views.RenderCatalogPlain(a.catalog.Records()))
			}
			out := cmd.OutOrStdout()
			for _, r := range a.catalog.Records() {
				fmt.Fprintf(out, "%s\t%s\n", r.Symbol, r.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&usePager, "pager", false, "browse the catalog in ov")
	return cmd
}
