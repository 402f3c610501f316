package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"liyu1981.xyz/factory-monitor/pkg/telemetry"
)

type benchOptions struct {
	clients  int
	rounds   int
	maxPause time.Duration
}

type benchResult struct {
	actions  int64
	failures int64
	elapsed  time.Duration
}

func newBenchCmd(opts *globalOptions) *cobra.Command {
	bo := &benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Load the read endpoints with many concurrent clients",
		Long:  "Each simulated client runs its read actions in random order every round, picking REST or gRPC per action when --grpc is set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			transports := []dashboard{newRestDashboard(opts.httpURL)}
			if opts.grpcAddr != "" {
				g, err := newGrpcDashboard(opts.grpcAddr)
				if err != nil {
					return err
				}
				defer g.Close()
				transports = append(transports, g)
			}

			view, err := transports[0].Snapshot(cmd.Context())
			if err != nil {
				return fmt.Errorf("server not ready: %w", err)
			}
			machineIDs := make([]string, len(view.Machines))
			for i, m := range view.Machines {
				machineIDs[i] = m.ID
			}
			fmt.Fprintf(cmd.OutOrStdout(), "server verified, %d machines\n", len(machineIDs))

			result := runBench(cmd.Context(), cmd.OutOrStdout(), transports, machineIDs, bo)
			fmt.Fprintf(cmd.OutOrStdout(),
				"\rdid %v actions with %v clients: used time=%v seconds, throughput=%v action/second, failures=%v\n",
				result.actions, bo.clients, result.elapsed.Seconds(),
				float64(result.actions)/result.elapsed.Seconds(), result.failures)
			return nil
		},
	}

	cmd.Flags().IntVar(&bo.clients, "clients", 200, "number of concurrent clients")
	cmd.Flags().IntVar(&bo.rounds, "rounds", 3, "action rounds per client")
	cmd.Flags().DurationVar(&bo.maxPause, "max-pause", 0, "upper bound of the random pause between actions")
	return cmd
}

func shuffle[T any](src telemetry.Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

func runBench(ctx context.Context, out io.Writer, transports []dashboard, machineIDs []string, bo *benchOptions) benchResult {
	src := telemetry.NewTimeSeededSource()
	var actions, failures atomic.Int64
	var outMu sync.Mutex

	pick := func() dashboard { return transports[src.Intn(len(transports))] }
	machine := func() string { return machineIDs[src.Intn(len(machineIDs))] }

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for client := 0; client < bo.clients; client++ {
		client := client
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < bo.rounds; i++ {
				steps := []func() error{
					func() error { _, err := pick().Snapshot(ctx); return err },
					func() error { _, err := pick().Machine(ctx, machine()); return err },
					func() error { _, err := pick().Alerts(ctx); return err },
					func() error { _, err := pick().MachineAlerts(ctx, machine()); return err },
				}
				shuffle(src, steps)
				for _, step := range steps {
					if err := step(); err != nil {
						failures.Add(1)
					}
					actions.Add(1)
					if bo.maxPause > 0 {
						time.Sleep(time.Duration(src.Intn(int(bo.maxPause))))
					}
				}
			}
			outMu.Lock()
			fmt.Fprintf(out, "\rclient %v done", client)
			outMu.Unlock()
		}()
	}
	wg.Wait()

	return benchResult{
		actions:  actions.Load(),
		failures: failures.Load(),
		elapsed:  time.Since(startTime),
	}
}
