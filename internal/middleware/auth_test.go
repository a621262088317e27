package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cafeteria-be/internal/user"
	"cafeteria-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAccessToken(t *testing.T) {
	t.Run("CookieWinsOverHeader", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
		r.Header.Set("Authorization", "Bearer header-token")

		assert.Equal(t, "cookie-token", ExtractAccessToken(r))
	})

	t.Run("BearerHeader", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer header-token")

		assert.Equal(t, "header-token", ExtractAccessToken(r))
	})

	t.Run("NoToken", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, ExtractAccessToken(r))
	})

	t.Run("NonBearerHeaderIgnored", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Basic abc123")
		assert.Empty(t, ExtractAccessToken(r))
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	capture := func(gotID *int, gotRole *string, called *bool) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*called = true
			if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
				*gotID = id
			}
			*gotRole = utils.GetUserRoleFromContext(r.Context())
		})
	}

	t.Run("ValidTokenPopulatesContext", func(t *testing.T) {
		token, err := user.GenerateJWT(7, "Staff", "staff@cafeteria.local")
		require.NoError(t, err)

		var gotID int
		var gotRole string
		var called bool
		handler := AuthMiddleware(capture(&gotID, &gotRole, &called))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(httptest.NewRecorder(), r)

		assert.True(t, called)
		assert.Equal(t, 7, gotID)
		assert.Equal(t, "Staff", gotRole)
	})

	t.Run("NoTokenPassesThroughAnonymously", func(t *testing.T) {
		var gotID int
		var gotRole string
		var called bool
		handler := AuthMiddleware(capture(&gotID, &gotRole, &called))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, called)
		assert.Zero(t, gotID)
		assert.Empty(t, gotRole)
	})

	t.Run("InvalidTokenPassesThroughAnonymously", func(t *testing.T) {
		var gotID int
		var gotRole string
		var called bool
		handler := AuthMiddleware(capture(&gotID, &gotRole, &called))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer garbage")
		handler.ServeHTTP(httptest.NewRecorder(), r)

		assert.True(t, called)
		assert.Zero(t, gotID)
	})
}
