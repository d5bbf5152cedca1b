package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdesk/admin-ui/internal/routes"
	"github.com/eventdesk/admin-ui/internal/session/cookiestore"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-1",
		"email": "op@example.com",
		"exp":   exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func guardedHandler(inner http.Handler) http.Handler {
	guard := Guard(GuardOptions{
		Classifier: routes.NewClassifier(routes.Config{}),
		Cookies:    cookiestore.New(cookiestore.Config{}),
	})
	return guard(inner)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestGuard_PublicPassthrough(t *testing.T) {
	handler := guardedHandler(okHandler())

	for _, path := range []string{"/", "/about", "/healthz", "/login", "/register"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "path %s should pass without a token", path)
	}
}

func TestGuard_ProtectedWithoutToken(t *testing.T) {
	handler := guardedHandler(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect=%2Fdashboard&reason=authentication_required", w.Header().Get("Location"))
}

func TestGuard_ProtectedWithExpiredToken(t *testing.T) {
	handler := guardedHandler(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: signedToken(t, time.Now().Add(-time.Minute))})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect=%2Fdashboard&reason=authentication_required", w.Header().Get("Location"))
}

func TestGuard_RedirectPreservesQuery(t *testing.T) {
	handler := guardedHandler(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/dashboard?tab=roles", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect=%2Fdashboard%3Ftab%3Droles&reason=authentication_required", w.Header().Get("Location"))
}

func TestGuard_ProtectedWithValidToken(t *testing.T) {
	handler := guardedHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "op@example.com", claims.Email)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: signedToken(t, time.Now().Add(time.Hour))})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuard_APIRequestsGet401(t *testing.T) {
	handler := guardedHandler(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication_required")
	assert.Empty(t, w.Header().Get("Location"))
}

func TestRequireAuth_IndependentOfGuard(t *testing.T) {
	wrap := RequireAuth(cookiestore.New(cookiestore.Config{}))
	handler := wrap(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	handler(w, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect=%2Fdashboard&reason=authentication_required", w.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: signedToken(t, time.Now().Add(time.Hour))})
	w = httptest.NewRecorder()
	handler(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuard_MalformedTokenTreatedAsExpired(t *testing.T) {
	handler := guardedHandler(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "not-a-token"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
}
