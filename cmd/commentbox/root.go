package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/commentbox/internal/app"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	prefsPath  string
	apiURL     string
}

func (o *rootOptions) appOptions() app.Options {
	return app.Options{
		ConfigPath: o.configPath,
		PrefsPath:  o.prefsPath,
		APIURL:     o.apiURL,
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "commentbox",
		Short: "Cricket commentary for any website",
		Long: `Commentary Box sends a website to the analysis API and brings back
commentary in the voice of a famous cricket commentator.

Run without arguments for the interactive terminal UI, or use the
subcommands for one-shot and scripted use.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts.appOptions())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file path (default ~/.config/commentbox/config.toml)")
	pf.StringVar(&opts.prefsPath, "prefs", "", "preferences file path (default ~/.config/commentbox/prefs.toml)")
	pf.StringVar(&opts.apiURL, "api-url", "", "analysis API base URL (overrides config and COMMENTBOX_API_URL)")

	cmd.AddCommand(
		newAnalyzeCommand(opts),
		newCommentatorsCommand(),
		newPingCommand(opts),
		newLogsCommand(opts),
		newVersionCommand(),
	)
	return cmd
}

// isTerminal reports whether the stream is attached to a terminal.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
