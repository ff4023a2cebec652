// Package library derives the front-end asset bundle descriptor from the
// resolved settings. The descriptor is rebuilt on every request and never
// persisted.
package library

import (
	"git.home.luguber.info/inful/staticbridge/internal/settings"
)

// BundleID is the fixed name of the asset bundle.
const BundleID = "kalastatic"

// Dependency is the front-end library capability the bundle requires.
const Dependency = "core/drupal"

// License is the fixed license block the bundle declares.
type License struct {
	Name          string `json:"name" yaml:"name"`
	URL           string `json:"url" yaml:"url"`
	GPLCompatible bool   `json:"gpl-compatible" yaml:"gpl-compatible"`
}

// MITLicense is the license block attached to every descriptor.
var MITLicense = License{
	Name:          "MIT",
	URL:           "https://opensource.org/licenses/MIT",
	GPLCompatible: true,
}

// Descriptor is the declarative asset bundle: absolute stylesheet and script
// URLs plus fixed dependency and license declarations.
type Descriptor struct {
	Name         string   `json:"name" yaml:"name"`
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
	License      License  `json:"license" yaml:"license"`
	Stylesheets  []string `json:"stylesheets" yaml:"stylesheets"`
	Scripts      []string `json:"scripts" yaml:"scripts"`
}

// Build composes the descriptor from the cached settings and the host's base
// path prefix.
//
// URL order follows the metadata file, duplicates included. Missing
// `stylesheets` or `scripts.footer.all` keys fail loudly rather than
// producing an empty bundle.
func Build(s settings.ComposedSettings, hostBasePath string) (*Descriptor, error) {
	stylesheets, err := s.Meta.StringSlice("stylesheets")
	if err != nil {
		return nil, err
	}
	scripts, err := s.Meta.StringSlice("scripts", "footer", "all")
	if err != nil {
		return nil, err
	}

	return &Descriptor{
		Name:         BundleID,
		Dependencies: []string{Dependency},
		License:      MITLicense,
		Stylesheets:  assetURLs(hostBasePath, s.Root.Destination, stylesheets),
		Scripts:      assetURLs(hostBasePath, s.Root.Destination, scripts),
	}, nil
}

// assetURLs maps each relative path to hostBasePath + destination + "/" + rel.
func assetURLs(hostBasePath, destination string, relative []string) []string {
	urls := make([]string, len(relative))
	for i, rel := range relative {
		urls[i] = hostBasePath + destination + "/" + rel
	}
	return urls
}
