package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"liyu1981.xyz/factory-monitor/pkg/models"
)

func newSnapshotCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Show the current KPIs and machine statuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.connect()
			if err != nil {
				return err
			}
			defer d.Close()

			view, err := d.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			printSnapshot(cmd.OutOrStdout(), view)
			return nil
		},
	}
}

func printSnapshot(out io.Writer, view *models.DashboardView) {
	kpis := view.Snapshot.KPIs
	fmt.Fprintf(out, "snapshot %s at %s\n", view.Snapshot.ID, view.Snapshot.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "machines=%d critical=%d warning=%d avg_temp=%d avg_load=%d energy=%d\n\n",
		kpis.TotalMachines, kpis.CriticalStatus, kpis.WarningStatus,
		kpis.AvgTemperature, kpis.AvgLoad, kpis.EnergyConsumption)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tTEMP\tLOAD\tOIL\tVIBRATION")
	for _, m := range view.Machines {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%.0f\t%.0f\t%.1f\n",
			m.ID, m.Name, m.Status,
			m.Telemetry.Temperature, m.Telemetry.Load, m.Telemetry.OilLevel, m.Telemetry.Vibration)
	}
	w.Flush()
}
