package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"git.home.luguber.info/inful/staticbridge/internal/logfields"
	"git.home.luguber.info/inful/staticbridge/internal/metrics"
	"git.home.luguber.info/inful/staticbridge/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Interval    time.Duration `help:"Periodic re-warm interval (0 disables the schedule)." default:"0"`
	MetricsAddr string        `help:"Serve Prometheus metrics on this address (empty disables)." default:""`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	var recorder metrics.Recorder
	if w.MetricsAddr != "" {
		registry := prometheus.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(registry)
		go serveMetrics(w.MetricsAddr, registry)
	}

	cache, store, err := root.OpenCache(recorder)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dirs, err := watchDirs(ctx, root)
	if err != nil {
		return err
	}

	watcher, err := watch.New(cache, dirs, w.Interval)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Start(ctx); err != nil {
		_ = watcher.Stop()
		return fmt.Errorf("start watcher: %w", err)
	}

	<-ctx.Done()
	slog.Info("shutting down watcher")
	return watcher.Stop()
}

// watchDirs resolves the directories worth watching: the config search root
// and the resolved source directory.
func watchDirs(ctx context.Context, root *CLI) ([]string, error) {
	opts, err := root.ResolverOptions()
	if err != nil {
		return nil, err
	}

	dirs := []string{opts.EffectiveSearchRoot()}

	cache, store, err := root.OpenCache(nil)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	cfg, err := cache.GetRootConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve root config: %w", err)
	}
	if cfg.Source != "" {
		dirs = append(dirs, cfg.Source)
	}
	return dirs, nil
}

func serveMetrics(addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	slog.Info("serving metrics", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("metrics server stopped", logfields.Error(err))
	}
}
