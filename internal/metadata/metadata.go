// Package metadata locates and parses the static site's descriptive metadata
// file: a markdown document carrying a YAML payload between three-dash
// delimiter lines.
package metadata

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/staticbridge/internal/errors"
	"git.home.luguber.info/inful/staticbridge/internal/logfields"
	"git.home.luguber.info/inful/staticbridge/internal/rootcfg"
)

// FileName is the reserved name of the metadata file inside the source tree.
const FileName = "kalastatic.md"

// Metadata is the parsed metadata mapping. It may be empty when the source
// directory or the metadata file is absent.
type Metadata map[string]any

// Load searches the resolved source directory recursively for the metadata
// file and parses it.
//
// A missing source directory is recoverable: one diagnostic is logged and an
// empty mapping is returned. Multiple matching files are visited in
// deterministic lexicographic walk order with last parsed winning, same as
// the root config search. A YAML parse failure is fatal.
func Load(ctx context.Context, cfg rootcfg.RootConfig) (Metadata, error) {
	info, err := os.Stat(cfg.Source)
	if err != nil || !info.IsDir() {
		slog.ErrorContext(ctx, "static site source directory not found",
			logfields.SourceDir(cfg.Source))
		return Metadata{}, nil
	}

	matches, err := findMetadataFiles(cfg.Source)
	if err != nil {
		return nil, errors.ConfigSearchFailed(cfg.Source, err)
	}
	if len(matches) == 0 {
		return Metadata{}, nil
	}
	if len(matches) > 1 {
		slog.WarnContext(ctx, "multiple metadata files found, last match wins",
			logfields.SourceDir(cfg.Source), logfields.Matches(matches))
	}

	meta := Metadata{}
	for _, match := range matches {
		data, err := os.ReadFile(match)
		if err != nil {
			return nil, errors.ConfigSearchFailed(match, err)
		}
		parsed, err := Parse(data)
		if err != nil {
			return nil, errors.MalformedYAML(match, err)
		}
		meta = parsed
	}
	return meta, nil
}

// Parse strips every line consisting of the three-dash delimiter and parses
// the remaining text wholesale as a single YAML document.
//
// This is deliberately permissive: it is not a strict front-matter extractor
// with an end boundary, so a file that is nothing but delimited YAML blocks
// parses as the union of their content.
func Parse(data []byte) (Metadata, error) {
	lines := strings.Split(string(data), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimRight(line, "\r") == "---" {
			continue
		}
		kept = append(kept, line)
	}

	var meta Metadata
	if err := yaml.Unmarshal([]byte(strings.Join(kept, "\n")), &meta); err != nil {
		return nil, err
	}
	if meta == nil {
		meta = Metadata{}
	}
	return meta, nil
}

// StringSlice returns the string list at the given key path.
//
// Absent keys, non-mapping intermediate nodes, and non-list leaves all yield
// a MissingRequiredField error naming the deepest path reached; a malformed
// metadata file must surface, not degrade to an empty bundle.
func (m Metadata) StringSlice(path ...string) ([]string, error) {
	var current any = map[string]any(m)
	for i, key := range path {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, errors.MissingRequiredField(strings.Join(path[:i+1], "."))
		}
		current, ok = node[key]
		if !ok {
			return nil, errors.MissingRequiredField(strings.Join(path[:i+1], "."))
		}
	}

	list, ok := current.([]any)
	if !ok {
		return nil, errors.MissingRequiredField(strings.Join(path, "."))
	}
	out := make([]string, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, errors.MissingRequiredField(strings.Join(path, "."))
		}
		out[i] = s
	}
	return out, nil
}

func findMetadataFiles(root string) ([]string, error) {
	var matches []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return fs.SkipDir
		}
		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == "node_modules" {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() == FileName {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
