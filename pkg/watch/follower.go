// Package watch follows a text file and reports its content whenever it
// changes on disk.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/grovetools/wordpad/errors"
	"github.com/grovetools/wordpad/logging"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is how long a file must stay quiet before it is re-read.
const DefaultDebounce = 100 * time.Millisecond

// Follower re-reads a file after it changes and passes the new text to a
// callback. The parent directory is watched rather than the file itself
// so editors that save by rename are followed too.
type Follower struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func(text string)
	logger   *logrus.Entry

	mu   sync.Mutex
	last string
}

// NewFollower watches path. Symlinks are resolved so changes to the target
// are seen. A non-positive debounce uses DefaultDebounce.
func NewFollower(path string, debounce time.Duration, onChange func(text string)) (*Follower, error) {
	resolved, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WatchFailed(path, err)
	}
	if target, err := filepath.EvalSymlinks(resolved); err == nil {
		resolved = target
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WatchFailed(path, err)
	}
	if err := watcher.Add(filepath.Dir(resolved)); err != nil {
		watcher.Close()
		return nil, errors.WatchFailed(path, err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	f := &Follower{
		path:     resolved,
		watcher:  watcher,
		debounce: debounce,
		onChange: onChange,
		logger:   logging.NewLogger("wordpad-watch").WithField("path", resolved),
	}
	if text, err := ReadText(resolved); err == nil {
		f.last = text
	}
	return f, nil
}

// Path returns the resolved path being followed.
func (f *Follower) Path() string {
	return f.path
}

// Run delivers changes until ctx is cancelled or the watcher fails. It
// closes the watcher before returning.
func (f *Follower) Run(ctx context.Context) error {
	defer f.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-f.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != f.path {
				continue
			}
			f.logger.Debugf("fsnotify event: op=%v", event.Op)
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(f.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(f.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			f.reload()

		case err, ok := <-f.watcher.Errors:
			if !ok {
				return nil
			}
			f.logger.WithError(err).Error("Watcher error")
			return errors.WatchFailed(f.path, err)

		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		}
	}
}

func (f *Follower) reload() {
	text, err := ReadText(f.path)
	if err != nil {
		f.logger.WithError(err).Warn("Failed to re-read followed file")
		return
	}

	f.mu.Lock()
	unchanged := text == f.last
	f.last = text
	f.mu.Unlock()

	if unchanged {
		return
	}
	f.logger.Debug("Followed file changed")
	f.onChange(text)
}

// ReadText reads a whole file as text.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.InputReadFailed(path, err)
	}
	return string(data), nil
}
