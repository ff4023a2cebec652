package errors

// Convenience functions for common error patterns

// Config errors

// MalformedYAML wraps a YAML parse failure in either the root config file or
// the metadata file. Malformed configuration is never recovered locally.
func MalformedYAML(path string, err error) *BridgeError {
	return Wrap(err, CategoryConfig, SeverityFatal, "malformed yaml").
		WithContext("path", path)
}

// ConfigSearchFailed indicates the filesystem walk for the root config file
// could not complete.
func ConfigSearchFailed(root string, err error) *BridgeError {
	return Wrap(err, CategoryFileSystem, SeverityFatal, "config file search failed").
		WithContext("search_root", root)
}

// Metadata errors

// MissingRequiredField indicates the metadata file lacks a structurally
// required key (or carries it with the wrong shape). Building a half-correct
// asset list silently is worse than failing visibly.
func MissingRequiredField(field string) *BridgeError {
	return New(CategoryMetadata, SeverityFatal, "required metadata field missing or malformed").
		WithContext("field", field)
}

// Policy errors

// NoThemePolicy indicates no theme allow-list is configured, so the
// attachment decision cannot be made. Recoverable: surfaced to the user,
// nothing is attached.
func NoThemePolicy() *BridgeError {
	return New(CategoryPolicy, SeverityWarning, "no theme allow-list configured; asset bundle will not be attached")
}

// Storage errors

// StoreReadFailed wraps a cache backend read failure.
func StoreReadFailed(key string, err error) *BridgeError {
	return Wrap(err, CategoryStorage, SeverityError, "cache read failed").
		WithContext("cache_key", key)
}

// StoreWriteFailed wraps a cache backend write failure.
func StoreWriteFailed(key string, err error) *BridgeError {
	return Wrap(err, CategoryStorage, SeverityError, "cache write failed").
		WithContext("cache_key", key)
}

// Internal errors

// EncodeFailed wraps a settings serialization failure.
func EncodeFailed(err error) *BridgeError {
	return Wrap(err, CategoryInternal, SeverityError, "settings serialization failed")
}
