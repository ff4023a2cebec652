// Package watch provides the rebuild trigger daemon: it re-warms the settings
// cache when watched configuration files change and, optionally, on a fixed
// schedule.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/staticbridge/internal/logfields"
	"git.home.luguber.info/inful/staticbridge/internal/metadata"
	"git.home.luguber.info/inful/staticbridge/internal/rootcfg"
	"git.home.luguber.info/inful/staticbridge/internal/settings"
)

// Watcher monitors configuration file changes and re-warms the settings cache.
type Watcher struct {
	cache     *settings.Cache
	dirs      []string
	interval  time.Duration
	watcher   *fsnotify.Watcher
	scheduler gocron.Scheduler

	mu          sync.Mutex
	stopChan    chan struct{}
	rebuildChan chan struct{}
	debounce    time.Duration
}

// New creates a watcher over the given directories. interval > 0 additionally
// schedules a periodic re-warm.
func New(cache *settings.Cache, dirs []string, interval time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	var scheduler gocron.Scheduler
	if interval > 0 {
		scheduler, err = gocron.NewScheduler()
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("create scheduler: %w", err)
		}
	}

	abs := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		a, err := filepath.Abs(dir)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("resolve watch path: %w", err)
		}
		abs = append(abs, a)
	}

	return &Watcher{
		cache:       cache,
		dirs:        abs,
		interval:    interval,
		watcher:     fsw,
		scheduler:   scheduler,
		stopChan:    make(chan struct{}),
		rebuildChan: make(chan struct{}, 1),
		debounce:    2 * time.Second, // Debounce rapid file changes
	}, nil
}

// Start warms the cache once, then begins monitoring.
func (w *Watcher) Start(ctx context.Context) error {
	for _, dir := range w.dirs {
		if err := w.watcher.Add(dir); err != nil {
			slog.Warn("failed to watch directory, skipping",
				logfields.Path(dir), logfields.Error(err))
			continue
		}
		slog.Info("watching directory", logfields.Path(dir))
	}

	w.rebuild(ctx)

	go w.watchLoop(ctx)
	go w.rebuildLoop(ctx)

	if w.scheduler != nil {
		if _, err := w.scheduler.NewJob(
			gocron.DurationJob(w.interval),
			gocron.NewTask(func() { w.Trigger() }),
			gocron.WithName("settings-rewarm"),
		); err != nil {
			return fmt.Errorf("schedule periodic re-warm: %w", err)
		}
		w.scheduler.Start()
		slog.Info("scheduled periodic settings re-warm", slog.Duration("interval", w.interval))
	}

	return nil
}

// Stop tears down the watcher and scheduler.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.stopChan:
		return nil
	default:
		close(w.stopChan)
	}

	var err error
	if w.scheduler != nil {
		err = w.scheduler.Shutdown()
	}
	if cerr := w.watcher.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Trigger requests a rebuild. Requests arriving while one is pending coalesce.
func (w *Watcher) Trigger() {
	select {
	case w.rebuildChan <- struct{}{}:
	default:
	}
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			slog.Debug("configuration change detected",
				logfields.Path(event.Name), slog.String("op", event.Op.String()))
			w.Trigger()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("file watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) rebuildLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-w.rebuildChan:
			// Collapse the burst of events a single save produces.
			timer := time.NewTimer(w.debounce)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-w.stopChan:
				timer.Stop()
				return
			case <-timer.C:
			}
			w.rebuild(ctx)
		}
	}
}

func (w *Watcher) rebuild(ctx context.Context) {
	id := uuid.NewString()
	start := time.Now()

	if _, err := w.cache.Rebuild(ctx); err != nil {
		slog.Error("settings rebuild failed",
			logfields.RebuildID(id), logfields.Error(err))
		return
	}
	slog.Info("settings cache re-warmed",
		logfields.RebuildID(id),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000.0))
}

// relevant filters watch events down to the two reserved configuration file
// names; everything else in the watched trees is noise.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	switch filepath.Base(event.Name) {
	case rootcfg.ConfigFileName, metadata.FileName:
		return true
	}
	return false
}
