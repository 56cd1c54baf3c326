package ingest

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/rshade/casedesk/internal/casemodel"
	"github.com/rshade/casedesk/internal/logging"
)

// DefaultDebounce is how long the watcher waits after the last write before reloading.
const DefaultDebounce = 200 * time.Millisecond

// ReloadFunc receives the outcome of every reload. Exactly one of record and
// err is meaningful: err is nil on success.
type ReloadFunc func(record casemodel.CaseRecord, err error)

// Watcher reloads a case file whenever it changes on disk. It watches the
// file's directory rather than the file so that editors which replace the file
// on save are still observed.
type Watcher struct {
	path     string
	debounce time.Duration
	onReload ReloadFunc
	logger   zerolog.Logger

	watcher *fsnotify.Watcher

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher creates a Watcher for path. A non-positive debounce uses DefaultDebounce.
func NewWatcher(path string, debounce time.Duration, onReload ReloadFunc) (*Watcher, error) {
	if onReload == nil {
		return nil, errors.New("ingest: reload callback is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		path:     abs,
		debounce: debounce,
		onReload: onReload,
		logger:   zerolog.Nop(),
		watcher:  fw,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. It returns once the directory watch is registered;
// events are processed on a background goroutine until ctx ends or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.logger = logging.ComponentLogger(*logging.FromContext(ctx), "ingest")
	w.running = true

	w.logger.Debug().Str("path", w.path).Msg("watching case file")
	go w.run(ctx)
	return nil
}

// Stop ends the watch and waits for the background goroutine to exit.
// Calling Stop on a watcher that was never started only releases resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		select {
		case <-w.stopCh:
		default:
			close(w.stopCh)
		}
		<-w.doneCh
	}
	return w.watcher.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			// Restart the quiet period on every write burst.
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("case file watch error")

		case <-timer.C:
			w.reload()
		}
	}
}

// relevant reports whether event touches the watched file with a content change.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	record, err := LoadCaseFile(w.path)
	if err != nil {
		w.logger.Warn().Err(err).Str("path", w.path).Msg("case reload failed")
	} else {
		w.logger.Info().
			Str("case_id", record.ID).
			Int64("amount_minor", record.AmountMinor).
			Bool("high_value", casemodel.IsHighValue(record)).
			Msg("case reloaded")
	}
	w.onReload(record, err)
}
