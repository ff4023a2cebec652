package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/staticbridge/internal/metrics"
	"git.home.luguber.info/inful/staticbridge/internal/rootcfg"
	"git.home.luguber.info/inful/staticbridge/internal/settings"
	"git.home.luguber.info/inful/staticbridge/internal/storage"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags shared by every subcommand.
type CLI struct {
	HostRoot     string           `help:"Host application root directory; its last segment is the nested-install marker." default:"." env:"STATICBRIDGE_HOST_ROOT"`
	DefaultTheme string           `help:"Theme directory used when the root config omits source or destination." default:"stark" env:"STATICBRIDGE_DEFAULT_THEME"`
	BasePath     string           `help:"Base path prefix for generated asset URLs." default:"/" env:"STATICBRIDGE_BASE_PATH"`
	CacheBackend string           `help:"Cache backend." enum:"memory,sqlite" default:"memory" env:"STATICBRIDGE_CACHE_BACKEND"`
	CachePath    string           `help:"SQLite cache database path (sqlite backend only)." default:"staticbridge-cache.db" env:"STATICBRIDGE_CACHE_PATH"`
	Verbose      bool             `short:"v" help:"Enable verbose logging"`
	Version      kong.VersionFlag `name:"version" help:"Show version and exit"`

	Settings SettingsCmd `cmd:"" help:"Resolve and print the composed settings"`
	Library  LibraryCmd  `cmd:"" help:"Build and print the asset bundle descriptor"`
	Attach   AttachCmd   `cmd:"" help:"Evaluate the bundle attachment decision for a theme"`
	Rebuild  RebuildCmd  `cmd:"" help:"Re-warm the settings cache"`
	Watch    WatchCmd    `cmd:"" help:"Watch configuration files and re-warm the cache on change"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// ResolverOptions derives the rootcfg options from the global flags.
func (c *CLI) ResolverOptions() (rootcfg.Options, error) {
	hostRoot, err := filepath.Abs(c.HostRoot)
	if err != nil {
		return rootcfg.Options{}, fmt.Errorf("resolve host root: %w", err)
	}
	return rootcfg.Options{
		HostRootPath: hostRoot,
		DefaultTheme: c.DefaultTheme,
	}, nil
}

// OpenCache builds the settings cache over the selected store backend.
// The caller owns the returned store and must close it.
func (c *CLI) OpenCache(recorder metrics.Recorder) (*settings.Cache, storage.Store, error) {
	opts, err := c.ResolverOptions()
	if err != nil {
		return nil, nil, err
	}

	var store storage.Store
	switch c.CacheBackend {
	case "sqlite":
		store, err = storage.NewSQLiteStore(c.CachePath)
	default:
		store, err = storage.NewMemoryStore(0)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open cache backend: %w", err)
	}

	return settings.NewCache(store, opts, recorder), store, nil
}
