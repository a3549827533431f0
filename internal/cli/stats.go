package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func statsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how many vehicles, customers, reservations and payments exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Stats.Summary(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Veículos\t%d\n", stats.Vehicles)
			fmt.Fprintf(w, "Clientes\t%d\n", stats.Customers)
			fmt.Fprintf(w, "Reservas\t%d\n", stats.Reservations)
			fmt.Fprintf(w, "Pagamentos\t%d\n", stats.Payments)
			return w.Flush()
		},
	}
}
