package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/commentbox/internal/config"
	"github.com/five82/commentbox/internal/logtail"
)

func newLogsCommand(root *rootOptions) *cobra.Command {
	var (
		lines   int
		noColor bool
		raw     bool
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the end of the commentbox log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if !cfg.LoggingEnabled() {
				return errors.New("logging is disabled (log_file = \"-\")")
			}

			entries, err := logtail.Read(cfg.LogPath(), lines)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "no log entries in %s\n", cfg.LogPath())
				return nil
			}

			out := cmd.OutOrStdout()
			color := !noColor && isTerminal(out)
			for _, line := range entries {
				if raw {
					fmt.Fprintln(out, line)
					continue
				}
				fmt.Fprintln(out, logtail.Format(line, color))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&lines, "lines", "n", 50, "number of lines to show (0 for all)")
	f.BoolVar(&noColor, "no-color", false, "disable colored output")
	f.BoolVar(&raw, "raw", false, "print the JSON lines unformatted")
	return cmd
}
