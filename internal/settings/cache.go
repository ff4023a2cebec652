package settings

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/staticbridge/internal/errors"
	"git.home.luguber.info/inful/staticbridge/internal/logfields"
	"git.home.luguber.info/inful/staticbridge/internal/metadata"
	"git.home.luguber.info/inful/staticbridge/internal/metrics"
	"git.home.luguber.info/inful/staticbridge/internal/pathnorm"
	"git.home.luguber.info/inful/staticbridge/internal/rootcfg"
	"git.home.luguber.info/inful/staticbridge/internal/storage"
)

// Cache is the read-through settings cache.
//
// On a miss it runs the full resolution chain (root config load → path
// normalization → metadata load), stores the composed result under CacheKey,
// and returns it. It is an explicit, injected object; there is no package
// level cached state.
type Cache struct {
	store    storage.Store
	opts     rootcfg.Options
	recorder metrics.Recorder
}

// NewCache creates a settings cache over the given store. A nil recorder
// defaults to metrics.NoopRecorder.
func NewCache(store storage.Store, opts rootcfg.Options, recorder metrics.Recorder) *Cache {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Cache{store: store, opts: opts, recorder: recorder}
}

// Options returns the resolver options the cache was built with.
func (c *Cache) Options() rootcfg.Options { return c.opts }

// GetComposedSettings returns the cached settings, resolving and storing them
// on a miss.
func (c *Cache) GetComposedSettings(ctx context.Context) (ComposedSettings, error) {
	data, err := c.store.Get(ctx, CacheKey)
	if err == nil {
		c.recorder.CacheHit()
		return Decode(data)
	}
	if !storage.IsNotFound(err) {
		return ComposedSettings{}, errors.StoreReadFailed(CacheKey, err)
	}

	c.recorder.CacheMiss()
	return c.load(ctx)
}

// GetRootConfig returns just the path-normalized root config.
func (c *Cache) GetRootConfig(ctx context.Context) (rootcfg.RootConfig, error) {
	s, err := c.GetComposedSettings(ctx)
	if err != nil {
		return rootcfg.RootConfig{}, err
	}
	return s.Root, nil
}

// GetMetadata returns just the parsed metadata.
func (c *Cache) GetMetadata(ctx context.Context) (metadata.Metadata, error) {
	s, err := c.GetComposedSettings(ctx)
	if err != nil {
		return nil, err
	}
	return s.Meta, nil
}

// Rebuild re-resolves the settings and overwrites the cache entry, so the
// very next read is warm. This is the operation the host's rebuild/flush
// lifecycle event must invoke: it warms the cache, it does not merely clear it.
func (c *Cache) Rebuild(ctx context.Context) (ComposedSettings, error) {
	c.recorder.Rebuild()
	return c.load(ctx)
}

func (c *Cache) load(ctx context.Context) (ComposedSettings, error) {
	start := time.Now()

	cfg, err := rootcfg.Load(ctx, c.opts)
	if err != nil {
		return ComposedSettings{}, err
	}
	cfg = pathnorm.RewriteConfigPaths(cfg, c.opts.HostRootPath)

	meta, err := metadata.Load(ctx, cfg)
	if err != nil {
		return ComposedSettings{}, err
	}

	composed := ComposedSettings{Root: cfg, Meta: meta}
	data, err := Encode(composed)
	if err != nil {
		return ComposedSettings{}, err
	}
	if err := c.store.Set(ctx, CacheKey, data); err != nil {
		return ComposedSettings{}, errors.StoreWriteFailed(CacheKey, err)
	}

	slog.DebugContext(ctx, "settings resolved and cached",
		logfields.CacheKey(CacheKey),
		logfields.SourceDir(cfg.Source),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000.0))
	c.recorder.LoadDuration(time.Since(start))

	return composed, nil
}
