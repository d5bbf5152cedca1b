package httpx

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/eventdesk/admin-ui/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type loginPageData struct {
	Redirect string
	Reason   string
}

type dashboardPageData struct {
	Email string
	Name  string
}

// renderPage executes a page template into a buffer first so template errors
// become a clean 500 instead of a half-written page.
func renderPage(w http.ResponseWriter, logger *slog.Logger, name string, data any) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		if logger != nil {
			logger.Error("rendering page failed", slog.String("template", name), slog.Any("error", err))
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		return
	}
}

// PageHandlers serves the console pages.
type PageHandlers struct {
	Session *session.Store
	Logger  *slog.Logger
}

// Home renders the landing page.
func (h *PageHandlers) Home(w http.ResponseWriter, _ *http.Request) {
	renderPage(w, h.Logger, "home.html", nil)
}

// About renders the about page.
func (h *PageHandlers) About(w http.ResponseWriter, _ *http.Request) {
	renderPage(w, h.Logger, "about.html", nil)
}

// Dashboard renders the dashboard shell. The guard has already enforced a
// valid token; the display name comes from claims or the session cache.
func (h *PageHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := dashboardPageData{}
	if claims, ok := ClaimsFromContext(r.Context()); ok {
		data.Email = claims.Email
	}
	if st := h.Session.Snapshot(); st.User != nil {
		data.Name = strings.TrimSpace(st.User.FirstName + " " + st.User.LastName)
		if data.Email == "" {
			data.Email = st.User.Email
		}
	}
	renderPage(w, h.Logger, "dashboard.html", data)
}
