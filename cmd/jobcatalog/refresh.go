package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCmdRefresh(o *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "refresh",
		Short:        "Pull listings from the remote API into the cache and store.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(args); err != nil {
				return err
			}
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			defer func() { _ = o.log.Sync() }()

			svc, err := o.service()
			if err != nil {
				return err
			}
			defer svc.Close()

			key, err := o.apiKey()
			if err != nil {
				return err
			}

			started := time.Now()
			jobs, err := svc.Refresh(cmd.Context(), key)
			if err != nil {
				return fmt.Errorf("refresh: %w", err)
			}
			o.log.Info("refresh done", zap.Int("jobs", len(jobs)), zap.Duration("took", time.Since(started)))

			out := &printer{w: cmd.OutOrStdout()}
			out.line("refreshed %d jobs into %s", len(jobs), o.cfg.CachePath())

			last, ok, err := svc.LastRefresh(cmd.Context())
			if err != nil {
				return err
			}
			if ok {
				out.line("store: %d jobs at %s", last.Jobs, last.RefreshedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}
