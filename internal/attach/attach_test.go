package attach

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShouldAttach_DecisionTable(t *testing.T) {
	cases := []struct {
		name      string
		theme     string
		allowList map[string]bool
		want      Result
	}{
		{"nil allow-list means no policy", "olivero", nil, NoPolicyConfigured},
		{"theme flagged false", "olivero", map[string]bool{"olivero": false}, ThemeNotEnabled},
		{"theme flagged true", "olivero", map[string]bool{"olivero": true}, Attach},
		{"theme absent from policy", "olivero", map[string]bool{"claro": true}, ThemeNotEnabled},
		{"empty policy is still a policy", "olivero", map[string]bool{}, ThemeNotEnabled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ShouldAttach(tc.theme, tc.allowList))
		})
	}
}

func TestShouldInject_OnlyOnAttach(t *testing.T) {
	require.True(t, Attach.ShouldInject())
	require.False(t, ThemeNotEnabled.ShouldInject())
	require.False(t, NoPolicyConfigured.ShouldInject())
}
