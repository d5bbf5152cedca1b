package bootstrap

import (
	"log/slog"
	"net/http"
	"time"

	httpx "github.com/eventdesk/admin-ui/internal/http"
)

// BuildHTTPHandler assembles the full handler tree.
// Order: Recover -> Logging -> Router (guard and metrics live inside).
func BuildHTTPHandler(services ServiceContainer, logger *slog.Logger) http.Handler {
	router := httpx.NewRouter(httpx.RouterServices{
		Categories:  services.Categories,
		EventTypes:  services.EventTypes,
		Roles:       services.Roles,
		Permissions: services.Permissions,
		Auth:        services.Auth,
		Session:     services.Session,
		Cookies:     services.Cookies,
		Classifier:  services.Classifier,
		Logger:      logger,
	})

	h := httpx.Logging(logger)(router)
	h = httpx.Recover(logger)(h)
	return h
}

// NewHTTPServer builds the server with sane timeouts.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}
