package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/grovetools/wordpad/errors"
	"github.com/grovetools/wordpad/logging"
	"github.com/grovetools/wordpad/pkg/profiling"
	"github.com/grovetools/wordpad/pkg/session"
	"github.com/grovetools/wordpad/pkg/watch"
	"github.com/grovetools/wordpad/tui/editor"
	"github.com/grovetools/wordpad/tui/theme"
	"github.com/spf13/cobra"
)

// NewStatsCmd creates the stats command.
func NewStatsCmd() *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Print words, characters and reading time of a file or stdin",
		Long: `Counts the words and characters of a text and estimates its reading time
at stats.words_per_minute (200 by default). Reads the file argument or stdin.

Examples:
wordpad stats notes.md
cat notes.md | wordpad stats --json
wordpad stats notes.md --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			file := ""
			if len(args) > 0 {
				file = args[0]
			}
			if follow && file == "" {
				return errors.InvalidInput("--watch needs a file to watch")
			}

			read := profiling.Start("read input")
			text, err := readInput(cmd, file)
			read.Stop()
			if err != nil {
				return err
			}

			store := a.newStore()
			store.Dispatch(session.SetText(text))

			out := cmd.OutOrStdout()
			if err := printStats(out, store.Stats(), a.opts.JSONOutput); err != nil {
				return err
			}
			if !follow {
				return nil
			}

			logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr()).
				InfoPretty(fmt.Sprintf("Watching %s for changes, press Ctrl+C to stop", file))
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			a.serveMetrics(ctx, store)

			follower, err := watch.NewFollower(file, watch.DefaultDebounce, func(text string) {
				store.Dispatch(session.SetText(text))
				if !a.opts.JSONOutput {
					fmt.Fprintln(out)
				}
				if err := printStats(out, store.Stats(), a.opts.JSONOutput); err != nil {
					a.logger.WithError(err).Warn("Failed to print statistics")
				}
			})
			if err != nil {
				return err
			}
			return follower.Run(ctx)
		},
	}

	cmd.Flags().BoolVarP(&follow, "watch", "w", false, "Print the statistics again whenever the file changes")
	return cmd
}

func printStats(w io.Writer, stats session.Stats, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(stats)
	}

	t := theme.DefaultTheme
	if _, err := fmt.Fprintln(w, theme.RenderHeader(editor.SummaryTitle)); err != nil {
		return err
	}
	rows := [][2]string{
		{"Words", fmt.Sprintf("%d", stats.Words)},
		{"Characters", fmt.Sprintf("%d", stats.Characters)},
		{"Reading time", editor.ReadingTime(stats.ReadingMinutes)},
	}
	for _, row := range rows {
		label := fmt.Sprintf("%-13s", row[0]+":")
		if _, err := fmt.Fprintf(w, "%s %s\n", t.Muted.Render(label), t.Bold.Render(row[1])); err != nil {
			return err
		}
	}
	return nil
}
