package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"meetbook/backend/internal/reconcile"
)

func newReconcileCmd() *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Retry pending calendar syncs and complete elapsed meetings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := buildApp(ctx, cfg, log, false)
			if err != nil {
				return err
			}
			defer a.Close(log)

			r := &reconcile.Reconciler{
				Sweeper:  a.meetings,
				Interval: cfg.Reconcile.Interval,
				Grace:    cfg.Reconcile.Grace,
				Batch:    cfg.Reconcile.Batch,
				Logger:   log,
			}
			if once {
				res := r.Once(ctx)
				fmt.Fprintf(cmd.OutOrStdout(), "confirmed=%d completed=%d\n", res.Confirmed, res.Completed)
				return nil
			}

			log.Info("reconciler started", slog.Duration("interval", cfg.Reconcile.Interval))
			if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "run a single pass and exit")
	return cmd
}
