// Package settings composes, normalizes, and caches the resolved static-site
// build configuration. All downstream consumers read through the Cache.
package settings

import (
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/staticbridge/internal/errors"
	"git.home.luguber.info/inful/staticbridge/internal/metadata"
	"git.home.luguber.info/inful/staticbridge/internal/rootcfg"
)

// CacheKey is the fixed key composed settings are stored under.
const CacheKey = "staticbridge.settings"

// ComposedSettings is the cached union of the path-normalized root config and
// the parsed metadata. It is immutable once composed; consumers never mutate
// it in place.
type ComposedSettings struct {
	Root rootcfg.RootConfig `yaml:"yaml"`
	Meta metadata.Metadata  `yaml:"config"`
}

// Encode serializes settings for the cache store. Decode(Encode(s)) is
// value-identical to s, which is what makes repeated cache reads
// bit-identical.
func Encode(s ComposedSettings) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, errors.EncodeFailed(err)
	}
	return data, nil
}

// Decode deserializes a cache entry written by Encode.
func Decode(data []byte) (ComposedSettings, error) {
	var s ComposedSettings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return ComposedSettings{}, errors.EncodeFailed(err)
	}
	if s.Meta == nil {
		s.Meta = metadata.Metadata{}
	}
	return s, nil
}
