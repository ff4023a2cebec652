package commands

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SettingsCmd implements the 'settings' command.
type SettingsCmd struct {
	Field string `help:"Print only one part of the settings." enum:"all,root,meta" default:"all"`
}

func (s *SettingsCmd) Run(_ *Global, root *CLI) error {
	cache, store, err := root.OpenCache(nil)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	var out any
	switch s.Field {
	case "root":
		out, err = cache.GetRootConfig(ctx)
	case "meta":
		out, err = cache.GetMetadata(ctx)
	default:
		out, err = cache.GetComposedSettings(ctx)
	}
	if err != nil {
		return fmt.Errorf("resolve settings: %w", err)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(out)
}
