package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"liyu1981.xyz/factory-monitor/pkg/models"
)

func newAlertsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts [machine-id]",
		Short: "List displayed alerts, or the stored alert history of one machine",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.connect()
			if err != nil {
				return err
			}
			defer d.Close()

			if len(args) == 1 {
				records, err := d.MachineAlerts(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printAlertHistory(cmd.OutOrStdout(), records)
				return nil
			}

			alerts, err := d.Alerts(cmd.Context())
			if err != nil {
				return err
			}
			printAlerts(cmd.OutOrStdout(), alerts)
			return nil
		},
	}
}

func printAlerts(out io.Writer, alerts []models.Alert) {
	if len(alerts) == 0 {
		fmt.Fprintln(out, "no alerts")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tSEVERITY\tMACHINE\tMESSAGE")
	for _, a := range alerts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Timestamp, a.Severity, a.Machine, a.Message)
	}
	w.Flush()
}

func printAlertHistory(out io.Writer, records []models.AlertRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "no alerts")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RECORDED\tSEVERITY\tSNAPSHOT\tMESSAGE")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.Timestamp.Format("2006-01-02 15:04:05"), r.Severity, r.SnapshotID, r.Message)
	}
	w.Flush()
}
