package commands

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/staticbridge/internal/logfields"
	"git.home.luguber.info/inful/staticbridge/internal/settings"
)

// RebuildCmd implements the 'rebuild' command.
type RebuildCmd struct{}

func (r *RebuildCmd) Run(_ *Global, root *CLI) error {
	cache, store, err := root.OpenCache(nil)
	if err != nil {
		return err
	}
	defer store.Close()

	if _, err := cache.Rebuild(context.Background()); err != nil {
		return fmt.Errorf("rebuild settings cache: %w", err)
	}

	slog.Info("settings cache re-warmed", logfields.CacheKey(settings.CacheKey))
	return nil
}
