package library

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/staticbridge/internal/errors"
	"git.home.luguber.info/inful/staticbridge/internal/metadata"
	"git.home.luguber.info/inful/staticbridge/internal/settings"
)

func composed(meta metadata.Metadata) settings.ComposedSettings {
	s := settings.ComposedSettings{Meta: meta}
	s.Root.Destination = "themes/custom/mytheme/build"
	return s
}

func TestBuild_ComposesAbsoluteAssetURLs(t *testing.T) {
	s := composed(metadata.Metadata{
		"stylesheets": []any{"css/main.css"},
		"scripts":     map[string]any{"footer": map[string]any{"all": []any{"js/main.js"}}},
	})

	descriptor, err := Build(s, "/")
	require.NoError(t, err)
	require.Equal(t, []string{"/themes/custom/mytheme/build/css/main.css"}, descriptor.Stylesheets)
	require.Equal(t, []string{"/themes/custom/mytheme/build/js/main.js"}, descriptor.Scripts)
}

func TestBuild_FixedBundleDeclaration(t *testing.T) {
	s := composed(metadata.Metadata{
		"stylesheets": []any{},
		"scripts":     map[string]any{"footer": map[string]any{"all": []any{}}},
	})

	descriptor, err := Build(s, "/")
	require.NoError(t, err)
	require.Equal(t, BundleID, descriptor.Name)
	require.Equal(t, []string{Dependency}, descriptor.Dependencies)
	require.Equal(t, "MIT", descriptor.License.Name)
	require.True(t, descriptor.License.GPLCompatible)
}

func TestBuild_PreservesOrderAndDuplicates(t *testing.T) {
	s := composed(metadata.Metadata{
		"stylesheets": []any{"b.css", "a.css", "b.css"},
		"scripts":     map[string]any{"footer": map[string]any{"all": []any{}}},
	})

	descriptor, err := Build(s, "/")
	require.NoError(t, err)
	require.Equal(t, []string{
		"/themes/custom/mytheme/build/b.css",
		"/themes/custom/mytheme/build/a.css",
		"/themes/custom/mytheme/build/b.css",
	}, descriptor.Stylesheets)
}

func TestBuild_MissingStylesheets_FailsLoudly(t *testing.T) {
	s := composed(metadata.Metadata{
		"scripts": map[string]any{"footer": map[string]any{"all": []any{}}},
	})

	_, err := Build(s, "/")
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryMetadata))
}

func TestBuild_MissingFooterScripts_FailsLoudly(t *testing.T) {
	s := composed(metadata.Metadata{
		"stylesheets": []any{"css/main.css"},
		"scripts":     map[string]any{},
	})

	_, err := Build(s, "/")
	require.Error(t, err)
}

func TestBuild_NonRootBasePath(t *testing.T) {
	s := composed(metadata.Metadata{
		"stylesheets": []any{"css/main.css"},
		"scripts":     map[string]any{"footer": map[string]any{"all": []any{}}},
	})

	descriptor, err := Build(s, "/subsite/")
	require.NoError(t, err)
	require.Equal(t, []string{"/subsite/themes/custom/mytheme/build/css/main.css"}, descriptor.Stylesheets)
}
