package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/lifecycle"
	"locadora-admin/internal/service"

	"github.com/spf13/cobra"
)

func reservationsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reservations",
		Aliases: []string{"reservas"},
		Short:   "List reservations and apply lifecycle actions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List reservations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reservations, err := app.Reservations.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(reservations) == 0 {
				fmt.Fprintln(out, "Nenhuma reserva encontrada")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tVEÍCULO\tINÍCIO\tFIM\tDIAS\tTOTAL\tSTATUS")
			for _, r := range reservations {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
					shortID(r.ID), shortID(r.VehicleID), r.StartDate, r.EndDate,
					r.PeriodDays, r.TotalAmount.StringFixed(2), reservationStatus(r.Status))
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(transitionCmd(lifecycle.ActionConfirm, "Confirm a reservation", app.confirm))
	cmd.AddCommand(transitionCmd(lifecycle.ActionCancel, "Cancel a reservation", app.cancel))

	cmd.AddCommand(&cobra.Command{
		Use:   "actions <id>",
		Short: "Show the actions available for a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, actions, err := app.Reservations.AvailableActions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			names := make([]string, len(actions))
			for i, a := range actions {
				names[i] = string(a)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reserva %s (%s): %s\n", shortID(r.ID), reservationStatus(r.Status), strings.Join(names, ", "))
			return nil
		},
	})

	return cmd
}

func (a *App) confirm(cmd *cobra.Command, id string) (*domain.Reservation, error) {
	return a.Reservations.Confirm(cmd.Context(), id)
}

func (a *App) cancel(cmd *cobra.Command, id string) (*domain.Reservation, error) {
	return a.Reservations.Cancel(cmd.Context(), id)
}

func transitionCmd(action lifecycle.Action, short string, apply func(*cobra.Command, string) (*domain.Reservation, error)) *cobra.Command {
	return &cobra.Command{
		Use:   string(action) + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			r, err := apply(cmd, args[0])

			var rejected *service.TransitionRejectedError
			switch {
			case errors.As(err, &rejected):
				fmt.Fprintf(out, "%s A API recusou a ação; status atual: %s\n", warnMark(), reservationStatus(rejected.Status))
				return err
			case err != nil:
				return err
			}

			fmt.Fprintf(out, "%s Reserva %s: %s\n", okMark(), shortID(r.ID), reservationStatus(r.Status))
			return nil
		},
	}
}
