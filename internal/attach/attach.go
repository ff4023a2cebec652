// Package attach decides whether the asset bundle is injected into the
// current page render.
package attach

// Result is the three-state attachment decision.
type Result string

const (
	// NoPolicyConfigured means no theme allow-list exists. The caller should
	// surface a user-facing configuration error; nothing is attached.
	NoPolicyConfigured Result = "no-policy-configured"

	// ThemeNotEnabled means a policy exists but the active theme is missing
	// from it or flagged off. Not an error; nothing is attached.
	ThemeNotEnabled Result = "theme-not-enabled"

	// Attach means the active theme is enabled and the bundle should be
	// injected.
	Attach Result = "attach"
)

// ShouldInject reports whether the decision calls for injecting the bundle.
func (r Result) ShouldInject() bool { return r == Attach }

// ShouldAttach evaluates the active theme against the configured allow-list.
//
// The decision is pure: emitting the user-facing message for
// NoPolicyConfigured and performing the actual injection are both the
// caller's responsibility.
func ShouldAttach(activeTheme string, themeAllowList map[string]bool) Result {
	if themeAllowList == nil {
		return NoPolicyConfigured
	}
	if !themeAllowList[activeTheme] {
		return ThemeNotEnabled
	}
	return Attach
}
