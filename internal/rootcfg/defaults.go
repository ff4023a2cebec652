package rootcfg

import "path"

const (
	// ConfigFileName is the reserved name of the root configuration file.
	ConfigFileName = "kalastatic.yaml"

	// defaultSiteDir is the conventional static-site directory inside a theme.
	defaultSiteDir = "kalastatic"

	// defaultBuildDir is the conventional build output directory inside the site dir.
	defaultBuildDir = "build"
)

// DefaultSource returns the convention-derived source directory for a theme.
func DefaultSource(defaultTheme string) string {
	return path.Join(defaultTheme, defaultSiteDir)
}

// DefaultDestination returns the convention-derived build output directory
// for a theme.
func DefaultDestination(defaultTheme string) string {
	return path.Join(defaultTheme, defaultSiteDir, defaultBuildDir)
}

// ApplyDefaults fills source and destination from the theme convention.
//
// Each field defaults independently: source only when source is absent,
// destination only when destination is absent. The historical behavior
// coupled the two checks to whatever keys happened to be present, which was
// only correct when both were missing at once.
func ApplyDefaults(cfg *RootConfig, defaultTheme string) {
	if cfg.Source == "" {
		cfg.Source = DefaultSource(defaultTheme)
	}
	if cfg.Destination == "" {
		cfg.Destination = DefaultDestination(defaultTheme)
	}
}
