package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"fields/internal/log"
)

// debounceWindow suppresses repeat events for the same path; editors and
// copies tend to fire Create followed by a burst of Writes.
const debounceWindow = 2 * time.Second

// Watcher reports files appearing or changing in a directory.
type Watcher struct {
	dir    string
	match  func(string) bool
	logger zerolog.Logger
}

// New returns a watcher over dir. match filters paths before they are
// reported; a nil match reports everything.
func New(dir string, match func(string) bool) *Watcher {
	if match == nil {
		match = func(string) bool { return true }
	}
	return &Watcher{dir: dir, match: match, logger: log.WithComponent("watch")}
}

// Run watches until ctx is cancelled, invoking handle for each matching
// file that is created or written. Events for the same path within the
// debounce window collapse into one call.
func (w *Watcher) Run(ctx context.Context, handle func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch directory %s: %w", w.dir, err)
	}
	w.logger.Info().Str("dir", w.dir).Msg("watching for permit files")

	lastSeen := make(map[string]time.Time)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !w.match(event.Name) {
				continue
			}
			now := time.Now()
			if seen, ok := lastSeen[event.Name]; ok && now.Sub(seen) < debounceWindow {
				continue
			}
			lastSeen[event.Name] = now
			w.logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("permit file event")
			handle(event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			w.logger.Warn().Err(err).Msg("fsnotify watcher error")
		}
	}
}
