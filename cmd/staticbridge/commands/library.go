package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"git.home.luguber.info/inful/staticbridge/internal/library"
)

// LibraryCmd implements the 'library' command.
type LibraryCmd struct{}

func (l *LibraryCmd) Run(_ *Global, root *CLI) error {
	cache, store, err := root.OpenCache(nil)
	if err != nil {
		return err
	}
	defer store.Close()

	composed, err := cache.GetComposedSettings(context.Background())
	if err != nil {
		return fmt.Errorf("resolve settings: %w", err)
	}

	descriptor, err := library.Build(composed, root.BasePath)
	if err != nil {
		return fmt.Errorf("build library descriptor: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(descriptor)
}
