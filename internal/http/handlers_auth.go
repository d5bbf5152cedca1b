package httpx

import (
	"log/slog"
	"net/http"

	"github.com/eventdesk/admin-ui/internal/api"
	"github.com/eventdesk/admin-ui/internal/service"
	"github.com/eventdesk/admin-ui/internal/session/cookiestore"
	"github.com/eventdesk/admin-ui/internal/token"

	domainauth "github.com/eventdesk/admin-ui/internal/domain/auth"
)

// defaultPostLoginPath is where authenticated users land when no validated
// redirect target is present.
const defaultPostLoginPath = "/dashboard"

// AuthHandlers serves the login and registration pages and the auth API.
type AuthHandlers struct {
	Svc     *service.AuthService
	Cookies *cookiestore.Store
	Logger  *slog.Logger
}

// requestAuthenticated reports whether the request carries a valid,
// unexpired token cookie.
func (h *AuthHandlers) requestAuthenticated(r *http.Request) bool {
	tok, ok := h.Cookies.Get(r)
	return ok && !token.IsExpired(tok)
}

// postLoginTarget resolves the validated redirect target from the query.
// "redirect" is the canonical param; "return_to" is accepted as an alias.
func postLoginTarget(r *http.Request) string {
	for _, key := range []string{"redirect", "return_to"} {
		if target := safeRedirectPath(r.URL.Query().Get(key)); target != "" {
			return target
		}
	}
	return defaultPostLoginPath
}

// LoginPage renders the login form. Already authenticated users are bounced
// to the validated redirect target instead; an auth page is never shown to
// an authenticated user.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if h.requestAuthenticated(r) {
		http.Redirect(w, r, postLoginTarget(r), http.StatusSeeOther)
		return
	}
	renderPage(w, h.Logger, "login.html", loginPageData{
		Redirect: safeRedirectPath(r.URL.Query().Get("redirect")),
		Reason:   r.URL.Query().Get("reason"),
	})
}

// RegisterPage renders the registration form, with the same bounce for
// authenticated users as the login page.
func (h *AuthHandlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if h.requestAuthenticated(r) {
		http.Redirect(w, r, postLoginTarget(r), http.StatusSeeOther)
		return
	}
	renderPage(w, h.Logger, "register.html", nil)
}

type authResponse struct {
	Status   string          `json:"status"`
	User     domainauth.User `json:"user"`
	Redirect string          `json:"redirect"`
}

// Login exchanges credentials for a session. On success the token cookie is
// set and the validated redirect target is returned for the client to
// navigate to.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var creds api.Credentials
	if !DecodeJSON(w, r, &creds) {
		return
	}
	res, err := h.Svc.Login(r.Context(), creds)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.Cookies.Set(w, res.Token)
	WriteJSON(w, http.StatusOK, authResponse{
		Status:   "success",
		User:     res.User,
		Redirect: postLoginTarget(r),
	})
}

// Register creates an account and establishes a session like Login.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	res, err := h.Svc.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.Cookies.Set(w, res.Token)
	WriteJSON(w, http.StatusCreated, authResponse{
		Status:   "success",
		User:     res.User,
		Redirect: postLoginTarget(r),
	})
}

// Logout clears the session state and expires the token cookie.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.Svc.Logout()
	h.Cookies.Clear(w)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "success", "redirect": "/login"})
}

type statusResponse struct {
	Authenticated bool             `json:"authenticated"`
	User          *domainauth.User `json:"user,omitempty"`
}

// Status reports whether the request carries a valid session, with the
// cached display user when available. Authentication is derived from the
// request's own cookie, never from persisted state.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	if !h.requestAuthenticated(r) {
		WriteJSON(w, http.StatusOK, statusResponse{Authenticated: false})
		return
	}
	st := h.Svc.Status()
	WriteJSON(w, http.StatusOK, statusResponse{Authenticated: true, User: st.User})
}
