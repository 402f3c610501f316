package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
)

type globalOptions struct {
	httpURL  string
	grpcAddr string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "fleetctl",
		Short:         "Inspect a running factory monitor",
		Long:          "fleetctl reads snapshots, machines and alerts from a factory monitor over REST, or over gRPC when --grpc is set.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.httpURL, "http", "http://127.0.0.1:1080", "base URL of the REST server")
	cmd.PersistentFlags().StringVar(&opts.grpcAddr, "grpc", "", "host:port of the gRPC server, used instead of REST when set")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSnapshotCmd(opts))
	cmd.AddCommand(newAlertsCmd(opts))
	cmd.AddCommand(newQueryCmd(opts))
	cmd.AddCommand(newBenchCmd(opts))
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fleetctl %s (commit: %s)\n", Version, Commit)
		},
	}
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
