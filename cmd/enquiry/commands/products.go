package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func productsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the products that can be enquired about",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, p := range opts.catalog.Products() {
				fmt.Fprintf(w, "%s\t%s\n", p.ID, p.Name)
			}
			return w.Flush()
		},
	}
}
