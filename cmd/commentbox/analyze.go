package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/commentbox/internal/analysis"
	"github.com/five82/commentbox/internal/app"
	"github.com/five82/commentbox/internal/commentator"
	"github.com/five82/commentbox/internal/plaintext"
	"github.com/five82/commentbox/internal/session"
	"github.com/five82/commentbox/internal/share"
)

// maxParallel caps concurrent analyses when several commentators are asked.
const maxParallel = 3

type analyzeOptions struct {
	commentators []string
	all          bool
	copy         bool
	json         bool
}

// result is one commentator's outcome, also the --json wire shape.
type result struct {
	Commentator string `json:"commentator"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Commentary  string `json:"commentary,omitempty"`
	WebsiteType string `json:"website_type,omitempty"`
	Error       string `json:"error,omitempty"`
	Status      int    `json:"status,omitempty"`

	title   string
	network bool
}

func newAnalyzeCommand(root *rootOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <url>",
		Short: "Get commentary for a website",
		Long: `Analyze sends the URL to the analysis API and prints the commentary.

With several --commentator values (or --all) the requests run in parallel
and each commentary is printed in turn. Without --commentator an
interactive terminal gets a picker; otherwise the default commentator is
used.`,
		Example: `  commentbox analyze https://example.com
  commentbox analyze -c harsha,jatin https://example.com
  commentbox analyze --all --json https://example.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chosen, err := resolveCommentators(opts.commentators, opts.all, func() (commentator.Commentator, error) {
				if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
					return commentator.Default(), nil
				}
				return promptCommentator()
			})
			if err != nil {
				return err
			}

			rt, err := app.Setup(root.appOptions())
			if err != nil {
				return err
			}
			defer rt.Close()

			stop := startSpinner(cmd.ErrOrStderr(), spinnerLabel(chosen))
			results := analyzeAll(cmd.Context(), rt.Client, rt.NewSession, args[0], chosen, rt.Logger)
			stop()

			return report(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, *opts)
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&opts.commentators, "commentator", "c", nil, "commentator id(s): "+strings.Join(commentator.IDs(), ", "))
	f.BoolVar(&opts.all, "all", false, "ask every commentator")
	f.BoolVar(&opts.copy, "copy", false, "copy the commentary to the clipboard")
	f.BoolVar(&opts.json, "json", false, "print results as JSON")
	return cmd
}

// resolveCommentators turns flag values into commentators, asking pick when
// nothing was specified. Duplicates are dropped and order is kept.
func resolveCommentators(ids []string, all bool, pick func() (commentator.Commentator, error)) ([]commentator.Commentator, error) {
	if all {
		return commentator.All(), nil
	}

	var out []commentator.Commentator
	seen := make(map[string]bool)
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			continue
		}
		c, ok := commentator.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("unknown commentator %q (want one of %s)", id, strings.Join(commentator.IDs(), ", "))
		}
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	if len(out) > 0 {
		return out, nil
	}

	c, err := pick()
	if err != nil {
		return nil, err
	}
	return []commentator.Commentator{c}, nil
}

func promptCommentator() (commentator.Commentator, error) {
	all := commentator.All()
	items := make([]string, len(all))
	for i, c := range all {
		items[i] = fmt.Sprintf("%s %s · %s", c.Emoji, c.Name, c.Style)
	}
	prompt := promptui.Select{
		Label: "Choose your commentator",
		Items: items,
		Size:  len(items),
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return commentator.Commentator{}, fmt.Errorf("commentator selection: %w", err)
	}
	return all[idx], nil
}

// analyzeAll runs one analysis per commentator. Every commentator gets its
// own session so each result follows the same rules as the TUI.
func analyzeAll(ctx context.Context, client analysis.Analyzer, newSession func() *session.Controller, rawURL string, chosen []commentator.Commentator, logger *zap.Logger) []result {
	if logger == nil {
		logger = zap.NewNop()
	}
	results := make([]result, len(chosen))

	var g errgroup.Group
	g.SetLimit(maxParallel)
	for i, c := range chosen {
		g.Go(func() error {
			results[i] = analyzeOne(ctx, client, newSession(), rawURL, c)
			if results[i].Error != "" {
				logger.Warn("cli analysis failed",
					zap.String("commentator", c.ID),
					zap.String("error", results[i].Error),
				)
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func analyzeOne(ctx context.Context, client analysis.Analyzer, sess *session.Controller, rawURL string, c commentator.Commentator) result {
	res := result{
		Commentator: c.ID,
		Name:        c.Name,
		URL:         strings.TrimSpace(rawURL),
		title:       c.Emoji + " " + c.Title(),
	}
	if err := sess.Select(c.ID); err != nil {
		res.Error = err.Error()
		return res
	}
	t, err := sess.Begin(rawURL)
	if err != nil {
		res.Error = session.FailureMessage(err)
		return res
	}
	resp, err := client.Analyze(ctx, t.Request)
	notice, _ := sess.Complete(t, resp, err)
	if notice.Level == session.LevelError {
		res.Error = plaintext.Line(notice.Text)
		res.Status = analysis.StatusCode(err)
		res.network = analysis.IsNetwork(err)
		return res
	}
	st := sess.State()
	res.Commentary = st.Commentary
	res.WebsiteType = plaintext.Line(st.WebsiteType)
	return res
}

// report prints results and returns an error when any analysis failed.
// Text output is reduced to plain text; JSON escapes control characters.
func report(stdout, stderr io.Writer, results []result, opts analyzeOptions) error {
	var failed, unreachable int
	var texts []string
	for _, r := range results {
		if r.Error != "" {
			failed++
			if r.network {
				unreachable++
			}
			continue
		}
		texts = append(texts, r.Commentary)
	}

	if opts.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
	} else {
		for i, r := range results {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			if r.Error != "" {
				fmt.Fprintf(stderr, "✗ %s: %s\n", r.Name, r.Error)
				continue
			}
			fmt.Fprintln(stdout, r.title)
			fmt.Fprintln(stdout, strings.Repeat("─", len([]rune(r.title))))
			fmt.Fprintln(stdout, plaintext.Clean(r.Commentary))
		}
	}

	if unreachable > 0 {
		fmt.Fprintln(stderr, "the analysis API did not answer; check it with `commentbox ping`")
	}

	if opts.copy && len(texts) > 0 {
		if err := share.Copy(strings.Join(texts, "\n\n")); err != nil {
			fmt.Fprintln(stderr, session.MsgCopyFailed)
		} else {
			fmt.Fprintln(stderr, session.MsgCopied)
		}
	}

	if failed > 0 {
		if failed == len(results) && failed == 1 {
			return errors.New(results[0].Error)
		}
		return fmt.Errorf("%d of %d analyses failed", failed, len(results))
	}
	return nil
}

func spinnerLabel(chosen []commentator.Commentator) string {
	if len(chosen) == 1 {
		return chosen[0].Name + " is calling the game..."
	}
	return fmt.Sprintf("%d commentators are calling the game...", len(chosen))
}
