package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gofiber/fiber/v2/log"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher calls onChange after the dataset file is written, renamed into
// place, or recreated. Bursts of events within the debounce window collapse
// into one call.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(ctx context.Context) error
}

func NewWatcher(path string, onChange func(ctx context.Context) error) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: defaultDebounce,
		onChange: onChange,
	}
}

// Run watches until ctx is done. The parent directory is watched so editors
// that replace the file atomically are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Infof("watching dataset %s", w.path)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Errorf("dataset watcher: %v", err)
		case <-fire:
			fire = nil
			if err := w.onChange(ctx); err != nil {
				log.Warnf("dataset reload failed, keeping previous recipes: %v", err)
			}
		}
	}
}
