package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyComponent  = "component"
	KeyPath       = "path"
	KeySourceDir  = "source_dir"
	KeySearchRoot = "search_root"
	KeyCacheKey   = "cache_key"
	KeyTheme      = "theme"
	KeyRebuildID  = "rebuild_id"
	KeyDurationMS = "duration_ms"
	KeyMatches    = "matches"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Component(c string) slog.Attr    { return slog.String(KeyComponent, c) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func SourceDir(d string) slog.Attr    { return slog.String(KeySourceDir, d) }
func SearchRoot(r string) slog.Attr   { return slog.String(KeySearchRoot, r) }
func CacheKey(k string) slog.Attr     { return slog.String(KeyCacheKey, k) }
func Theme(t string) slog.Attr        { return slog.String(KeyTheme, t) }
func RebuildID(id string) slog.Attr   { return slog.String(KeyRebuildID, id) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Matches(paths []string) slog.Attr {
	return slog.Any(KeyMatches, paths)
}
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
