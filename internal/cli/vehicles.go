package cli

import (
	"fmt"
	"text/tabwriter"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/service"

	"github.com/spf13/cobra"
)

func vehiclesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vehicles",
		Aliases: []string{"veiculos"},
		Short:   "List vehicles and change their status",
	}

	var status, brand, search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List vehicles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := service.VehicleFilter{Query: search, Brand: brand}
			if status != "" {
				parsed, err := domain.ParseVehicleStatus(status)
				if err != nil {
					return err
				}
				filter.Status = parsed
			}

			vehicles, err := app.Vehicles.Search(cmd.Context(), filter)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(vehicles) == 0 {
				fmt.Fprintln(out, "Nenhum veículo encontrado")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPLACA\tVEÍCULO\tANO\tDIÁRIA\tSTATUS")
			for i := range vehicles {
				v := &vehicles[i]
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
					shortID(v.ID), v.Plate, v.DisplayName(), v.Year, v.DailyRate.StringFixed(2), vehicleStatus(v.Status))
			}
			return w.Flush()
		},
	}
	list.Flags().StringVar(&status, "status", "", "Filter by status (e.g. DISPONIVEL)")
	list.Flags().StringVar(&brand, "brand", "", "Filter by brand")
	list.Flags().StringVar(&search, "search", "", "Search plate, brand or model")
	cmd.AddCommand(list)

	var note string
	setStatus := &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Change a vehicle's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := domain.ParseVehicleStatus(args[1])
			if err != nil {
				return err
			}
			v, err := app.Vehicles.SetStatus(cmd.Context(), args[0], parsed, note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s): %s\n", okMark(), v.DisplayName(), v.Plate, vehicleStatus(v.Status))
			return nil
		},
	}
	setStatus.Flags().StringVar(&note, "note", "", "Description recorded in the status history")
	cmd.AddCommand(setStatus)

	return cmd
}
