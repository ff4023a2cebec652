// Package pathnorm reconciles paths authored against the static-site tool's
// filesystem root with the host application's nested-install root.
//
// When the static-site project sits one directory above the host install (a
// common nested-project layout), paths inside its config carry one extra
// leading segment relative to what the host's own path resolution expects.
// Normalize strips exactly that segment, and only when a genuine match is
// detected, so non-nested installs are untouched.
package pathnorm

import (
	"strings"

	"git.home.luguber.info/inful/staticbridge/internal/rootcfg"
)

const separator = "/"

// Normalize rewrites path, authored relative to the static-site project root,
// so it is valid relative to the host application root.
//
// The final segment of hostRootPath is the nested-install marker. If the first
// segment of path equals the marker, the marker plus its one following
// separator is stripped; otherwise path is returned unchanged.
func Normalize(path, hostRootPath string) string {
	marker := lastSegment(hostRootPath)
	if marker == "" {
		return path
	}
	prefix, rest, cut := strings.Cut(path, separator)
	if prefix != marker {
		return path
	}
	if !cut {
		// Path is the bare marker. Stripping the marker and its following
		// separator leaves nothing.
		return ""
	}
	return rest
}

// RewriteConfigPaths applies Normalize to every path field the root config
// carries: source, destination, and each Twig namespace directory.
//
// The field list here is the single application site for normalization. A
// path field added to rootcfg.RootConfig must be enumerated here or it will
// silently keep its un-normalized value.
func RewriteConfigPaths(cfg rootcfg.RootConfig, hostRootPath string) rootcfg.RootConfig {
	out := cfg

	fields := []*string{&out.Source, &out.Destination}
	for _, f := range fields {
		*f = Normalize(*f, hostRootPath)
	}

	src := cfg.PluginOpts.JSTransformer.EngineOptions.Twig.Namespaces
	if len(src) > 0 {
		namespaces := make([]rootcfg.Namespace, len(src))
		for i, ns := range src {
			ns.Path = Normalize(ns.Path, hostRootPath)
			namespaces[i] = ns
		}
		out.PluginOpts.JSTransformer.EngineOptions.Twig.Namespaces = namespaces
	}

	return out
}

func lastSegment(p string) string {
	segments := strings.Split(p, separator)
	return segments[len(segments)-1]
}
