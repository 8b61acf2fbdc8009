package tuning

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/fennwick/groundview/avatar"
)

const debounce = 100 * time.Millisecond

// Watcher reloads a tuning spec as it is edited on disk and emits the decoded
// controller constants on Tunings. Only the newest value is kept when the
// consumer lags; bad edits are logged and skipped so a half-saved file never
// breaks the loop. Tunings is closed when the watcher shuts down.
type Watcher struct {
	watcher *fsnotify.Watcher
	name    string
	log     zerolog.Logger

	Tunings chan avatar.Tuning

	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches dir for edits to the named spec file.
func NewWatcher(dir, name string, log zerolog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		name:    name,
		log:     log,
		Tunings: make(chan avatar.Tuning, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// run is the only sender on Tunings and closes it on exit, so Close can never
// race a send onto a closed channel.
func (w *Watcher) run() {
	defer close(w.Tunings)
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.matches(event.Name) {
				continue
			}
			now := time.Now()
			if now.Sub(last) < debounce {
				continue
			}
			last = now
			w.reload(event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("tuning: watch error")
		case <-w.closeCh:
			return
		}
	}
}

// matches accepts only the watched spec file; editors that write sibling swap
// or backup files do not trigger reloads.
func (w *Watcher) matches(path string) bool {
	if !isSpecFile(path) {
		return false
	}
	return filepath.Base(path) == w.name
}

func (w *Watcher) reload(path string) {
	spec, err := LoadFile(path)
	if err != nil {
		w.log.Warn().Err(err).Str("path", path).Msg("tuning: reload failed")
		return
	}
	select {
	case <-w.Tunings:
	default:
	}
	w.Tunings <- spec.Tuning()
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
