package main

import (
	"github.com/spf13/cobra"

	"github.com/catherinevee/sensiscan/internal/logger"
)

var onceCmd = &cobra.Command{
	Use:   "once [classification-id]",
	Short: "Run a single scan pass and exit",
	Long: `once runs exactly one scanClassification pass for the given
classification id (or, with no argument, every classification assigned to
this agent) and exits once every submitted chunk has finished, instead of
running the foreground/background schedulers indefinitely. Useful for a
cron-driven deployment or a local fixture run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if err := a.register(ctx); err != nil {
			return err
		}

		ids, err := a.assignedClassificationIDs(ctx, args)
		if err != nil {
			return err
		}

		for _, id := range ids {
			if err := a.scanClassification(ctx, id); err != nil {
				a.log.Error("scan pass failed", logger.String("classification_id", id), logger.Error(err))
			}
		}

		a.pool.Wait()
		return nil
	},
}
