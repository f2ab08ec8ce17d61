package cmd

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/wordpad/errors"
	"github.com/grovetools/wordpad/logging"
	"github.com/grovetools/wordpad/pkg/clipboard"
	"github.com/grovetools/wordpad/pkg/session"
	"github.com/grovetools/wordpad/pkg/watch"
	"github.com/grovetools/wordpad/tui"
	"github.com/grovetools/wordpad/tui/components/toast"
	"github.com/grovetools/wordpad/tui/editor"
	"github.com/grovetools/wordpad/tui/keymap"
	"github.com/spf13/cobra"
)

type tuiOptions struct {
	follow      bool
	noClipboard bool
}

func runTUI(cmd *cobra.Command, args []string, opts tuiOptions) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	file := ""
	if len(args) > 0 {
		file = args[0]
	}
	if opts.follow && file == "" {
		return errors.InvalidInput("--follow needs a file to follow")
	}

	mode, err := session.ParseDisplayMode(a.cfg.TUI.Mode)
	if err != nil {
		return err
	}

	var clip session.Clipboard = clipboard.Discard{}
	if !opts.noClipboard {
		clip = clipboard.FromConfig(a.cfg.Clipboard.Backend, os.Stderr)
	}

	notifier := toast.NewNotifier()
	store := a.newStore(
		session.WithInitial(session.Session{Mode: mode}),
		session.WithClipboard(clip),
		session.WithNotifier(notifier),
	)

	if file != "" {
		text, err := watch.ReadText(file)
		if err != nil {
			return err
		}
		store.Dispatch(session.SetText(text))
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	a.serveMetrics(ctx, store)

	tui.InitializeTUI()
	model := editor.New(editor.Options{
		Store:    store,
		Config:   a.cfg,
		Keys:     keymap.Load(a.cfg),
		Notifier: notifier,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.follow {
		follower, err := watch.NewFollower(file, watch.DefaultDebounce, func(text string) {
			p.Send(editor.TextLoadedMsg{Text: text})
		})
		if err != nil {
			return err
		}
		go func() {
			if err := follower.Run(ctx); err != nil {
				a.logger.WithError(err).Warn("Stopped following file")
			}
		}()
	}

	a.logger.WithField("session_id", store.ID()).Debug("Starting word counter")
	prev := logging.SetGlobalOutput(io.Discard)
	_, err = p.Run()
	logging.SetGlobalOutput(prev)
	store.Wait()
	return err
}
