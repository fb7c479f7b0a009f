package navigation_test

import (
	"testing"

	"marketplace-bff/internal/navigation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeepLink(t *testing.T) {
	tests := []struct {
		raw   string
		route navigation.Route
		token string
	}{
		{"https://app.example.com/verify-email?token=abc123", navigation.RouteVerifyEmail, "abc123"},
		{"https://app.example.com/auth/reset-password?token=r3s3t&email=a%40b.com", navigation.RouteResetPassword, "r3s3t"},
		{"marketplace://reset-password?token=xyz", navigation.RouteResetPassword, "xyz"},
		{"marketplace://verifyEmail?token=t", navigation.RouteVerifyEmail, "t"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			link, err := navigation.ParseDeepLink(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.route, link.Route)
			assert.Equal(t, tt.token, link.Token)
		})
	}
}

func TestParseDeepLink_KeepsEmailAndExtraParams(t *testing.T) {
	link, err := navigation.ParseDeepLink("https://x.test/reset-password?token=t&email=a%40b.com&lang=en")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", link.Email)
	assert.Equal(t, map[string]string{"lang": "en"}, link.Query)
}

func TestParseDeepLink_Errors(t *testing.T) {
	_, err := navigation.ParseDeepLink("https://x.test/verify-email")
	assert.ErrorIs(t, err, navigation.ErrMissingToken)

	_, err = navigation.ParseDeepLink("https://x.test/jobs/42?token=t")
	assert.ErrorIs(t, err, navigation.ErrUnsupportedLink)
}

func TestKnown(t *testing.T) {
	assert.True(t, navigation.Known(navigation.RouteDashboard))
	assert.False(t, navigation.Known("user/unknown"))
}
