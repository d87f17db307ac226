package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run the scanner agent as a long-lived daemon",
	Long: `scan registers this instance with the control plane and runs the
foreground scheduler (classification discovery and rescan) and the
background heartbeat scheduler until it receives SIGINT or SIGTERM,
draining any in-flight chunk scans before exiting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		if err := a.register(ctx); err != nil {
			return err
		}

		a.foreground.Start(ctx)
		a.background.Start(ctx)

		<-ctx.Done()
		a.log.Info("shutting down, draining in-flight work")

		a.foreground.Stop()
		a.background.Stop()
		a.pool.Wait()
		return nil
	},
}
