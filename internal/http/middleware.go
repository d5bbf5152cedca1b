package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"github.com/eventdesk/admin-ui/internal/obs"
	"github.com/eventdesk/admin-ui/internal/routes"
	"github.com/eventdesk/admin-ui/internal/session/cookiestore"
	"github.com/eventdesk/admin-ui/internal/token"
)

// ReasonAuthenticationRequired is the reason query param value set when the
// guard bounces an unauthenticated request to the login page.
const ReasonAuthenticationRequired = "authentication_required"

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// GuardOptions groups dependencies for the Guard middleware.
type GuardOptions struct {
	Classifier *routes.Classifier
	Cookies    *cookiestore.Store
	Logger     *slog.Logger
}

// Guard returns the edge middleware that enforces route access before any
// handler runs. Protected routes require a present, unexpired token cookie;
// failing that, page requests are bounced to the login page carrying the
// original path and a reason, and API requests get a 401. Auth and public
// routes pass through; bouncing authenticated users off the login page is
// the page handler's decision, since it can read the session there.
func Guard(opts GuardOptions) func(http.Handler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cls := opts.Classifier.Classify(r.URL.Path)
			if !cls.Protected {
				next.ServeHTTP(w, r)
				return
			}

			tok, ok := opts.Cookies.Get(r)
			if !ok || token.IsExpired(tok) {
				obs.RecordGuardDecision(obs.GuardRedirect)
				logger.Info("guard redirect",
					slog.String("path", r.URL.Path),
					slog.Bool("token_present", ok),
				)
				if isAPIRequest(r.URL.Path) {
					WriteError(w, ErrorParams{
						Code:    http.StatusUnauthorized,
						ErrCode: ReasonAuthenticationRequired,
						Err:     errors.New("authentication required"),
					})
					return
				}
				redirectToLogin(w, r)
				return
			}

			obs.RecordGuardDecision(obs.GuardAllow)
			if claims, err := token.Decode(tok); err == nil {
				r = r.WithContext(SetClaimsInContext(r.Context(), claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth wraps a page handler with its own token check, independent of
// the edge guard, so a protected handler stays safe even when mounted outside
// a guarded tree.
func RequireAuth(cookies *cookiestore.Store) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			tok, ok := cookies.Get(r)
			if !ok || token.IsExpired(tok) {
				redirectToLogin(w, r)
				return
			}
			next(w, r)
		}
	}
}

// isAPIRequest reports whether the path belongs to the JSON API surface,
// which gets 401 responses instead of login redirects.
func isAPIRequest(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// redirectToLogin bounces the request to the login page with the original
// path as the redirect target and the machine-readable reason.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	target := safeRedirectPath(r.URL.RequestURI())
	if target == "" {
		target = "/"
	}
	loginURL := "/login?redirect=" + url.QueryEscape(target) + "&reason=" + ReasonAuthenticationRequired
	http.Redirect(w, r, loginURL, http.StatusSeeOther)
}
