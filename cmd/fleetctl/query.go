package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newQueryCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "query <question>",
		Short: "Ask the AI analysis service about the current fleet",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.connect()
			if err != nil {
				return err
			}
			defer d.Close()

			resp, err := d.Query(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !resp.Success {
				return fmt.Errorf("query failed: %s", resp.Error)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, resp.Response)
			if model := resp.Model(); model != "" {
				fmt.Fprintf(out, "\n(model: %s)\n", model)
			}
			return nil
		},
	}
}
