package httpx

import (
	"log/slog"
	"net/http"

	"github.com/eventdesk/admin-ui/internal/domain/model"
	"github.com/eventdesk/admin-ui/internal/obs"
	"github.com/eventdesk/admin-ui/internal/routes"
	"github.com/eventdesk/admin-ui/internal/service"
	"github.com/eventdesk/admin-ui/internal/session"
	"github.com/eventdesk/admin-ui/internal/session/cookiestore"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Categories  *service.CategoryService
	EventTypes  *service.EventTypeService
	Roles       *service.RoleService
	Permissions *service.PermissionService
	Auth        *service.AuthService
	Session     *session.Store
	Cookies     *cookiestore.Store
	Classifier  *routes.Classifier
	Logger      *slog.Logger
}

// NewRouter creates the HTTP handler tree: routes wrapped by the edge guard
// and metrics instrumentation. Request logging and panic recovery are
// applied by bootstrap around the returned handler.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Svc: services.Auth, Cookies: services.Cookies, Logger: logger}
	pageHandlers := &PageHandlers{Session: services.Session, Logger: logger}

	requireAuth := RequireAuth(services.Cookies)

	mux.HandleFunc("GET /{$}", pageHandlers.Home)
	mux.HandleFunc("GET /about", pageHandlers.About)
	mux.HandleFunc("GET /dashboard", requireAuth(pageHandlers.Dashboard))

	mux.HandleFunc("GET /login", authHandlers.LoginPage)
	mux.HandleFunc("GET /register", authHandlers.RegisterPage)
	mux.HandleFunc("POST /auth/login", authHandlers.Login)
	mux.HandleFunc("POST /auth/register", authHandlers.Register)
	mux.HandleFunc("POST /auth/logout", authHandlers.Logout)
	mux.HandleFunc("GET /auth/status", authHandlers.Status)

	registerResourceRoutes(mux, "categories", &ResourceHandlers[model.Category, model.CreateCategoryRequest, model.UpdateCategoryRequest]{Svc: services.Categories})
	registerResourceRoutes(mux, "event_types", &ResourceHandlers[model.EventType, model.CreateEventTypeRequest, model.UpdateEventTypeRequest]{Svc: services.EventTypes})
	registerResourceRoutes(mux, "roles", &ResourceHandlers[model.Role, model.CreateRoleRequest, model.UpdateRoleRequest]{Svc: services.Roles})
	registerResourceRoutes(mux, "permissions", &ResourceHandlers[model.Permission, model.CreatePermissionRequest, model.UpdatePermissionRequest]{Svc: services.Permissions})

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /metrics", obs.Handler())

	guard := Guard(GuardOptions{
		Classifier: services.Classifier,
		Cookies:    services.Cookies,
		Logger:     logger,
	})

	handler := guard(mux)
	return obs.Instrument(handler)
}
