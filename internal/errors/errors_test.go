package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_WithCause_IncludesCauseInMessage(t *testing.T) {
	cause := fmt.Errorf("yaml: line 3: mapping values are not allowed")
	err := MalformedYAML("site/kalastatic.yaml", cause)

	require.Contains(t, err.Error(), "config")
	require.Contains(t, err.Error(), "malformed yaml")
	require.Contains(t, err.Error(), "line 3")
	require.True(t, errors.Is(err, cause))
}

func TestIsCategory_MatchesOnlyOwnCategory(t *testing.T) {
	err := MissingRequiredField("stylesheets")

	require.True(t, IsCategory(err, CategoryMetadata))
	require.False(t, IsCategory(err, CategoryConfig))
	require.False(t, IsCategory(errors.New("plain"), CategoryMetadata))
}

func TestGetCategory_PlainError_FallsBackToInternal(t *testing.T) {
	require.Equal(t, CategoryInternal, GetCategory(errors.New("plain")))
	require.Equal(t, CategoryPolicy, GetCategory(NoThemePolicy()))
}

func TestWithContext_AccumulatesFields(t *testing.T) {
	err := New(CategoryStorage, SeverityError, "boom").
		WithContext("cache_key", "settings").
		WithContext("attempt", 2)

	require.Equal(t, "settings", err.Context["cache_key"])
	require.Equal(t, 2, err.Context["attempt"])
}
