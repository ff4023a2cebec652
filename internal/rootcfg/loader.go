package rootcfg

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/staticbridge/internal/errors"
	"git.home.luguber.info/inful/staticbridge/internal/logfields"
)

// Options configures root config resolution.
type Options struct {
	// HostRootPath is the host application's root directory. Its final path
	// segment doubles as the nested-install marker for path normalization.
	HostRootPath string

	// DefaultTheme is the theme directory used to derive source/destination
	// defaults when the config file is absent or omits them.
	DefaultTheme string

	// SearchRoot overrides the directory the config file search starts from.
	// When empty the search starts one directory above HostRootPath, reaching
	// above a Composer-style project root.
	SearchRoot string
}

// EffectiveSearchRoot returns the directory the config search starts from.
func (o Options) EffectiveSearchRoot() string {
	if o.SearchRoot != "" {
		return o.SearchRoot
	}
	return filepath.Dir(o.HostRootPath)
}

// Load locates and parses the root configuration file.
//
// Zero matches is not an error: the convention-derived defaults are returned.
// Multiple matches are visited in deterministic lexicographic walk order and
// the last one parsed wins; every shadowed candidate is logged. A YAML parse
// failure in any candidate is fatal for the load.
func Load(ctx context.Context, opts Options) (RootConfig, error) {
	root := opts.EffectiveSearchRoot()

	matches, err := findConfigFiles(root)
	if err != nil {
		return RootConfig{}, errors.ConfigSearchFailed(root, err)
	}

	var cfg RootConfig
	switch len(matches) {
	case 0:
		slog.DebugContext(ctx, "root config file not found, using theme defaults",
			logfields.SearchRoot(root), logfields.Theme(opts.DefaultTheme))
	case 1:
		if err := parseInto(&cfg, matches[0]); err != nil {
			return RootConfig{}, err
		}
	default:
		slog.WarnContext(ctx, "multiple root config files found, last match wins",
			logfields.SearchRoot(root), logfields.Matches(matches))
		for _, match := range matches {
			cfg = RootConfig{}
			if err := parseInto(&cfg, match); err != nil {
				return RootConfig{}, err
			}
		}
	}

	ApplyDefaults(&cfg, opts.DefaultTheme)
	return cfg, nil
}

func parseInto(cfg *RootConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.ConfigSearchFailed(path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.MalformedYAML(path, err)
	}
	return nil
}

// findConfigFiles walks root recursively collecting files named
// ConfigFileName. filepath.WalkDir visits entries in lexical order, which
// gives the multi-match policy a stable ordering across filesystems.
func findConfigFiles(root string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var matches []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped rather than aborting the search.
			if path == root {
				return err
			}
			return fs.SkipDir
		}
		if d.IsDir() {
			if skipDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() == ConfigFileName {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// skipDir prunes directory trees that never legitimately hold the root config
// and can be arbitrarily large.
func skipDir(name string) bool {
	switch name {
	case ".git", "node_modules":
		return true
	}
	return false
}
