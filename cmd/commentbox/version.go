package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c := version, commit
			if v == "" || v == "dev" {
				v = "development"
			}
			if c == "" || c == "none" {
				c = "local-build"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "commentbox %s (%s)\n", v, c)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
