package settings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	bridgeerrors "git.home.luguber.info/inful/staticbridge/internal/errors"
	"git.home.luguber.info/inful/staticbridge/internal/library"
	"git.home.luguber.info/inful/staticbridge/internal/rootcfg"
	"git.home.luguber.info/inful/staticbridge/internal/settings"
	"git.home.luguber.info/inful/staticbridge/internal/storage"
)

// Absent root config → theme defaults → missing source dir → empty metadata →
// descriptor build fails loudly on the required stylesheets key.
func TestEndToEnd_AbsentConfigDegradesToDefaultsThenFailsLoudly(t *testing.T) {
	store := storage.NewMockStore()
	cache := settings.NewCache(store, rootcfg.Options{
		SearchRoot:   t.TempDir(), // no config file anywhere beneath
		HostRootPath: "/var/www/host",
		DefaultTheme: "stark",
	}, nil)

	composed, err := cache.GetComposedSettings(context.Background())
	require.NoError(t, err)

	require.Equal(t, "stark/kalastatic", composed.Root.Source)
	require.Equal(t, "stark/kalastatic/build", composed.Root.Destination)
	require.Empty(t, composed.Meta)

	_, err = library.Build(composed, "/")
	require.Error(t, err)
	require.True(t, bridgeerrors.IsCategory(err, bridgeerrors.CategoryMetadata))
}
