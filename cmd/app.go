package cmd

import (
	"context"
	"io"
	"os"

	"github.com/grovetools/wordpad/cli"
	"github.com/grovetools/wordpad/config"
	"github.com/grovetools/wordpad/errors"
	"github.com/grovetools/wordpad/pkg/metrics"
	"github.com/grovetools/wordpad/pkg/session"
	"github.com/grovetools/wordpad/pkg/watch"
	"github.com/grovetools/wordpad/tui/theme"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app is the wiring shared by the commands: configuration, logger and the
// metrics recorder observing every store.
type app struct {
	opts     cli.CommandOptions
	cfg      *config.Config
	logger   *logrus.Entry
	recorder *metrics.Recorder
}

func newApp(cmd *cobra.Command) (*app, error) {
	opts := cli.GetOptions(cmd)
	cfg, err := cli.LoadConfig(opts)
	if err != nil {
		return nil, err
	}
	if os.Getenv("WORDPAD_ICONS") == "" {
		theme.UseIcons(cfg.TUI.Icons)
	}
	return &app{
		opts:     opts,
		cfg:      cfg,
		logger:   cli.GetLogger(cmd),
		recorder: metrics.NewRecorder(),
	}, nil
}

// newStore creates a store observed by the app's recorder.
func (a *app) newStore(opts ...session.Option) *session.Store {
	base := []session.Option{
		session.WithObserver(a.recorder),
		session.WithWordsPerMinute(a.cfg.Stats.WordsPerMinute),
	}
	return session.NewStore(append(base, opts...)...)
}

// serveMetrics serves the recorder in the background when metrics.addr is
// set. The server stops when ctx is cancelled.
func (a *app) serveMetrics(ctx context.Context, st *session.Store) {
	addr := a.cfg.Metrics.Addr
	if addr == "" {
		return
	}
	if st != nil {
		a.recorder.TrackStore(st)
	}
	go func() {
		if err := metrics.Serve(ctx, addr, metrics.NewHandler(a.recorder, st)); err != nil {
			a.logger.WithError(err).WithField("addr", addr).Error("Metrics server failed")
		}
	}()
}

// readInput reads the named file, or stdin when no file is given. An
// interactive stdin is rejected rather than waited on.
func readInput(cmd *cobra.Command, file string) (string, error) {
	if file != "" {
		return watch.ReadText(file)
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errors.InvalidInput("no input: pass a file or pipe text on stdin")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.InputReadFailed("stdin", err)
	}
	return string(data), nil
}
