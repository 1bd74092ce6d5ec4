package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/commentbox/internal/app"
)

func newPingCommand(root *rootOptions) *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check that the analysis API is reachable",
		Long: `Ping calls the API health endpoint once. With --wait it keeps retrying
with backoff until the API answers or the wait runs out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := app.Setup(root.appOptions())
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx := cmd.Context()
			start := time.Now()

			var status string
			if wait > 0 {
				waitCtx, cancel := context.WithTimeout(ctx, wait)
				defer cancel()
				resp, err := app.WaitForAPI(waitCtx, rt.Client, 0, rt.Logger)
				if err != nil {
					return err
				}
				status = resp.Status
			} else {
				resp, err := rt.Client.Health(ctx)
				if err != nil {
					return fmt.Errorf("api at %s: %w", rt.Client.BaseURL(), err)
				}
				status = resp.Status
			}
			if status == "" {
				status = "ok"
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", rt.Client.BaseURL(), status, time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().DurationVar(&wait, "wait", 0, "keep retrying for up to this long (e.g. 30s)")
	return cmd
}
