// Package rootcfg locates and parses the static-site tool's top-level
// configuration file.
package rootcfg

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RootConfig represents the static-site tool's top-level configuration.
//
// Source and Destination are authored relative to the static-site project
// root; pathnorm.RewriteConfigPaths rebases them onto the host root.
type RootConfig struct {
	Source      string     `yaml:"source"`
	Destination string     `yaml:"destination"`
	PluginOpts  PluginOpts `yaml:"pluginOpts,omitempty"`
}

// PluginOpts carries per-plugin option trees from the root config.
type PluginOpts struct {
	JSTransformer JSTransformerOpts `yaml:"metalsmith-jstransformer,omitempty"`
}

// JSTransformerOpts holds the jstransformer plugin options.
type JSTransformerOpts struct {
	EngineOptions EngineOptions `yaml:"engineOptions,omitempty"`
}

// EngineOptions holds per-engine option blocks.
type EngineOptions struct {
	Twig TwigOptions `yaml:"twig,omitempty"`
}

// TwigOptions holds the Twig engine configuration.
type TwigOptions struct {
	Namespaces []Namespace `yaml:"namespaces,omitempty"`
}

// Namespace is one Twig namespace declaration: a name mapped to a directory
// path. On the wire each entry is a single-key mapping.
type Namespace struct {
	Name string
	Path string
}

// UnmarshalYAML decodes a single-key name→path mapping.
func (n *Namespace) UnmarshalYAML(value *yaml.Node) error {
	var entry map[string]string
	if err := value.Decode(&entry); err != nil {
		return err
	}
	if len(entry) != 1 {
		return fmt.Errorf("twig namespace entry must be a single name: path mapping, got %d keys", len(entry))
	}
	for name, path := range entry {
		n.Name = name
		n.Path = path
	}
	return nil
}

// MarshalYAML encodes the namespace back to its single-key mapping form.
func (n Namespace) MarshalYAML() (any, error) {
	return map[string]string{n.Name: n.Path}, nil
}
