package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eventdesk/admin-ui/internal/api"
	"github.com/eventdesk/admin-ui/internal/routes"
	"github.com/eventdesk/admin-ui/internal/service"
	"github.com/eventdesk/admin-ui/internal/session"
	"github.com/eventdesk/admin-ui/internal/session/cookiestore"
)

// testEnv wires the full router against a fake upstream API.
type testEnv struct {
	router  http.Handler
	tokens  *session.MemoryTokenStore
	session *session.Store
}

func newTestEnv(t *testing.T, upstream http.Handler) *testEnv {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	tokens := session.NewMemoryTokenStore()
	client, err := api.NewClient(api.Config{BaseURL: srv.URL, Tokens: tokens})
	require.NoError(t, err)

	sessionStore := session.NewStore(session.StoreOptions{Tokens: tokens})
	authService := service.NewAuthService(service.AuthServiceOptions{
		API:     client,
		Session: sessionStore,
		Tokens:  tokens,
	})

	router := NewRouter(RouterServices{
		Categories:  service.NewCategoryService(client, nil, nil),
		EventTypes:  service.NewEventTypeService(client, nil, nil),
		Roles:       service.NewRoleService(client, nil, nil),
		Permissions: service.NewPermissionService(client, nil, nil),
		Auth:        authService,
		Session:     sessionStore,
		Cookies:     cookiestore.New(cookiestore.Config{}),
		Classifier:  routes.NewClassifier(routes.Config{}),
	})

	return &testEnv{router: router, tokens: tokens, session: sessionStore}
}

// fakeUpstream builds an upstream API that answers the auth endpoints with
// the given token and serves an in-memory category list.
func fakeUpstream(t *testing.T, token string) http.Handler {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]api.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		creds := body["user"]
		if creds.Password != "hunter2" {
			writeUpstream(t, w, http.StatusUnauthorized, map[string]any{
				"status":  "error",
				"message": "Invalid email or password",
			})
			return
		}
		writeUpstream(t, w, http.StatusOK, map[string]any{
			"status": "success",
			"data": map[string]any{
				"user":  map[string]any{"id": "u-1", "email": creds.Email, "first_name": "Pat"},
				"token": token,
			},
		})
	})

	mux.HandleFunc("GET /categories", func(w http.ResponseWriter, _ *http.Request) {
		writeUpstream(t, w, http.StatusOK, map[string]any{
			"status": "success",
			"data":   []map[string]any{{"id": "1", "name": "ops"}},
			"meta":   map[string]any{"current_page": 1, "per_page": 25, "total_count": 1, "total_pages": 1},
		})
	})

	mux.HandleFunc("POST /categories", func(w http.ResponseWriter, _ *http.Request) {
		writeUpstream(t, w, http.StatusCreated, map[string]any{
			"status": "success",
			"data":   map[string]any{"id": "2", "name": "incidents"},
		})
	})

	return mux
}

func writeUpstream(t *testing.T, w http.ResponseWriter, code int, env map[string]any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	require.NoError(t, json.NewEncoder(w).Encode(env))
}

func authCookie(value string) *http.Cookie {
	return &http.Cookie{Name: "auth_token", Value: value}
}

func liveToken(t *testing.T) string {
	t.Helper()
	return signedToken(t, time.Now().Add(time.Hour))
}

func expiredToken(t *testing.T) string {
	t.Helper()
	return signedToken(t, time.Now().Add(-time.Minute))
}
