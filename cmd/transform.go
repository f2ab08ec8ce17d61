package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/grovetools/wordpad/errors"
	"github.com/grovetools/wordpad/logging"
	"github.com/grovetools/wordpad/pkg/clipboard"
	"github.com/grovetools/wordpad/pkg/profiling"
	"github.com/grovetools/wordpad/pkg/session"
	"github.com/spf13/cobra"
)

// TransformResult is the --json output of transform.
type TransformResult struct {
	Text    string              `json:"text"`
	Mode    session.DisplayMode `json:"mode"`
	Stats   session.Stats       `json:"stats"`
	Ignored []string            `json:"ignored,omitempty"`
}

// NewTransformCmd creates the transform command.
func NewTransformCmd() *cobra.Command {
	var (
		file        string
		payload     string
		noClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "transform <action>...",
		Short: "Apply text actions to a file or stdin and print the result",
		Long: `Applies actions left to right and prints the resulting text.

Actions: upper, lower, clear, collapse, copy, theme and set (replaced by
--payload). The full names toUppercase, toLowercase, collapseWhitespace,
copyToClipboard, toggleTheme and setText work too. Unknown actions are
skipped with a warning. Copy outcomes are reported on stderr.

Examples:
echo "  hello   world " | wordpad transform collapse upper
wordpad transform lower copy --file notes.md`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			read := profiling.Start("read input")
			text, err := readInput(cmd, file)
			read.Stop()
			if err != nil {
				return err
			}

			var clip session.Clipboard = clipboard.Discard{}
			if !noClipboard {
				clip = clipboard.FromConfig(a.cfg.Clipboard.Backend, os.Stderr)
			}
			console := logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr())

			store := a.newStore(
				session.WithInitial(session.Session{Text: text, Mode: session.ModeLight}),
				session.WithClipboard(clip),
				session.WithNotifier(console),
			)

			apply := profiling.Start("apply actions")
			var ignored []string
			for _, name := range args {
				t, ok := session.ParseActionType(name)
				if !ok {
					console.WarnPretty(fmt.Sprintf("Ignoring unknown action '%s'", name))
					ignored = append(ignored, name)
				}
				action := session.Action{Type: t}
				if t == session.ActionSetText {
					action.Payload = payload
				}
				store.Dispatch(action)
			}
			store.Wait()
			apply.Stop()

			snap := store.Snapshot()
			out := cmd.OutOrStdout()
			if a.opts.JSONOutput {
				data, err := json.MarshalIndent(TransformResult{
					Text:    snap.Text,
					Mode:    snap.Mode,
					Stats:   store.Stats(),
					Ignored: ignored,
				}, "", "  ")
				if err != nil {
					return errors.Wrap(err, errors.ErrCodeInternal, "failed to encode result")
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			if strings.HasSuffix(snap.Text, "\n") {
				fmt.Fprint(out, snap.Text)
			} else {
				fmt.Fprintln(out, snap.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read the text from this file instead of stdin")
	cmd.Flags().StringVar(&payload, "payload", "", "Replacement text for set actions")
	cmd.Flags().BoolVar(&noClipboard, "no-clipboard", false, "Accept copies without touching the clipboard")
	return cmd
}
