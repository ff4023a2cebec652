package logfields

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_NilError_EmptyValue(t *testing.T) {
	attr := Error(nil)
	require.Equal(t, KeyError, attr.Key)
	require.Equal(t, "", attr.Value.String())
}

func TestError_NonNil_CarriesMessage(t *testing.T) {
	attr := Error(errors.New("walk failed"))
	require.Equal(t, "walk failed", attr.Value.String())
}

func TestHelpers_UseCanonicalKeys(t *testing.T) {
	require.Equal(t, KeySourceDir, SourceDir("stark/kalastatic").Key)
	require.Equal(t, KeyRebuildID, RebuildID("abc").Key)
	require.Equal(t, KeyCacheKey, CacheKey("settings").Key)
}
