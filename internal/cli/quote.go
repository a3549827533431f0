package cli

import (
	"fmt"

	"locadora-admin/internal/pricing"

	"github.com/spf13/cobra"
)

func quoteCmd(app *App) *cobra.Command {
	var start, end, vehicleID, rate string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a rental period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var q pricing.Quote
			var err error
			if rate != "" {
				q, err = pricing.QuoteFromStrings(start, end, rate)
			} else {
				q, err = app.Reservations.Quote(cmd.Context(), start, end, vehicleID)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if q.IsZero() {
				fmt.Fprintln(out, "Período incompleto: informe início e fim")
				return nil
			}
			fmt.Fprintf(out, "Período: %d dia(s) (%s a %s)\n", q.PeriodDays, q.Start, q.End)
			fmt.Fprintf(out, "Diária:  R$ %s\n", q.DailyRate.StringFixed(2))
			fmt.Fprintf(out, "Total:   R$ %s\n", q.Total.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&vehicleID, "vehicle", "", "Vehicle ID whose daily rate is used")
	cmd.Flags().StringVar(&rate, "rate", "", "Daily rate, overriding --vehicle")
	cmd.MarkFlagsMutuallyExclusive("vehicle", "rate")
	return cmd
}
