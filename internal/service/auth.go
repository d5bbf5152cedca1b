package service

import (
	"context"
	"log/slog"

	"github.com/eventdesk/admin-ui/internal/api"
	apperrors "github.com/eventdesk/admin-ui/internal/errors"
	"github.com/eventdesk/admin-ui/internal/session"

	domainauth "github.com/eventdesk/admin-ui/internal/domain/auth"
)

// AuthService coordinates credential exchange with the remote API and the
// local session state. Cookie writes stay in the HTTP layer; this service
// only touches the in-process token mirror and the session store.
type AuthService struct {
	api     *api.Client
	session *session.Store
	tokens  session.TokenStore
	cache   *session.FileCache
	logger  *slog.Logger
}

// AuthServiceOptions contains dependencies for an AuthService.
type AuthServiceOptions struct {
	API     *api.Client
	Session *session.Store
	Tokens  session.TokenStore
	// Cache persists the display user between runs. Optional.
	Cache  *session.FileCache
	Logger *slog.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		api:     opts.API,
		session: opts.Session,
		tokens:  opts.Tokens,
		cache:   opts.Cache,
		logger:  logger,
	}
}

// Login exchanges credentials for a token, stores the token in the process
// mirror, and hydrates the session with the returned user. The caller writes
// the cookie from the returned token.
func (s *AuthService) Login(ctx context.Context, creds api.Credentials) (*api.AuthResult, error) {
	if err := creds.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	s.session.SetLoading(true)
	defer s.session.SetLoading(false)

	res, err := s.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	s.establish(res)
	s.logger.Info("login succeeded", slog.String("email", res.User.Email))
	return res, nil
}

// Register creates an account and establishes a session the same way a
// successful login does.
func (s *AuthService) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	s.session.SetLoading(true)
	defer s.session.SetLoading(false)

	res, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	s.establish(res)
	s.logger.Info("registration succeeded", slog.String("email", res.User.Email))
	return res, nil
}

func (s *AuthService) establish(res *api.AuthResult) {
	s.tokens.SetToken(res.Token)
	s.session.Hydrate(&res.User)
	if s.cache != nil {
		if err := s.cache.Save(&res.User); err != nil {
			s.logger.Warn("persisting session cache failed", slog.Any("error", err))
		}
	}
}

// Logout clears the session state, the token mirror, and the persisted
// cache. The caller clears the cookie. Logout is local only; the remote API
// holds no session to invalidate.
func (s *AuthService) Logout() {
	s.session.ClearAuth()
	if s.cache != nil {
		if err := s.cache.Clear(); err != nil {
			s.logger.Warn("clearing session cache failed", slog.Any("error", err))
		}
	}
	s.logger.Info("logged out")
}

// Restore hydrates the session from the persisted display cache at startup.
// Authentication state is re-derived from the token, never from disk.
func (s *AuthService) Restore() {
	if s.cache == nil {
		s.session.CheckAuth()
		return
	}
	u, err := s.cache.Load()
	if err != nil {
		s.logger.Warn("loading session cache failed", slog.Any("error", err))
		s.session.CheckAuth()
		return
	}
	s.session.Hydrate(u)
}

// RefreshProfile re-fetches the authenticated user's profile and updates the
// session display user.
func (s *AuthService) RefreshProfile(ctx context.Context) (*domainauth.User, error) {
	s.session.CheckAuth()
	if !s.session.Snapshot().IsAuthenticated {
		return nil, apperrors.Unauthorized("not authenticated")
	}
	u, err := s.api.Profile(ctx)
	if err != nil {
		if apiErr, ok := api.AsError(err); ok && apiErr.IsAuthFailure() {
			s.session.ClearAuth()
			return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "session rejected by api")
		}
		return nil, err
	}
	s.session.SetUser(u)
	if s.cache != nil {
		if err := s.cache.Save(u); err != nil {
			s.logger.Warn("persisting session cache failed", slog.Any("error", err))
		}
	}
	return u, nil
}

// Status re-derives and returns the current session state.
func (s *AuthService) Status() session.State {
	s.session.CheckAuth()
	return s.session.Snapshot()
}
