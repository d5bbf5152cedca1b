package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/eventdesk/admin-ui/config"
	"github.com/eventdesk/admin-ui/internal/api"
	"github.com/eventdesk/admin-ui/internal/routes"
	"github.com/eventdesk/admin-ui/internal/service"
	"github.com/eventdesk/admin-ui/internal/session"
	"github.com/eventdesk/admin-ui/internal/session/cookiestore"
)

// ServiceContainer holds all application services and shared state.
type ServiceContainer struct {
	Categories  *service.CategoryService
	EventTypes  *service.EventTypeService
	Roles       *service.RoleService
	Permissions *service.PermissionService
	Auth        *service.AuthService
	Session     *session.Store
	Tokens      *session.MemoryTokenStore
	Cookies     *cookiestore.Store
	Classifier  *routes.Classifier
	API         *api.Client
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config *config.AppConfig
	Logger *slog.Logger
}

// NewServices wires the API client, session state, and the per-resource
// optimistic services. The session store is created here and injected
// everywhere it is needed; nothing holds it as a package singleton.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	tokens := session.NewMemoryTokenStore()

	client, err := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Tokens:  tokens,
		Timeout: cfg.API.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build api client: %w", err)
	}

	sessionStore := session.NewStore(session.StoreOptions{
		Tokens: tokens,
		Logger: logger,
	})

	var cache *session.FileCache
	if cfg.Auth.SessionCachePath != "" {
		cache = session.NewFileCache(cfg.Auth.SessionCachePath)
	}

	authService := service.NewAuthService(service.AuthServiceOptions{
		API:     client,
		Session: sessionStore,
		Tokens:  tokens,
		Cache:   cache,
		Logger:  logger,
	})
	authService.Restore()

	cookies := cookiestore.New(cookiestore.Config{
		Name:   cfg.Auth.CookieName,
		Domain: cfg.Auth.CookieDomain,
		MaxAge: cfg.Auth.CookieMaxAge,
		Secure: cfg.Auth.CookieSecure,
	})

	classifier := routes.NewClassifier(routes.Config{
		ProtectedPrefixes: cfg.Auth.ProtectedPrefixes,
		AuthPrefixes:      cfg.Auth.AuthPrefixes,
		PublicPaths:       cfg.Auth.PublicPaths,
	})

	return ServiceContainer{
		Categories:  service.NewCategoryService(client, nil, logger),
		EventTypes:  service.NewEventTypeService(client, nil, logger),
		Roles:       service.NewRoleService(client, nil, logger),
		Permissions: service.NewPermissionService(client, nil, logger),
		Auth:        authService,
		Session:     sessionStore,
		Tokens:      tokens,
		Cookies:     cookies,
		Classifier:  classifier,
		API:         client,
	}, nil
}
