package commands

import (
	"context"
	"log/slog"

	"parkspot/internal/domain/user"
	reqdto "parkspot/internal/handler/dto/request"
	"parkspot/internal/infra/localstore"
	"parkspot/internal/infra/mockapi"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/jwt"
	"parkspot/internal/state"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

// AuthFacade is the auth surface of the mock remote API.
type AuthFacade interface {
	Login(ctx context.Context, email, password string) (user.User, error)
	Register(ctx context.Context, name, email, password string) (user.User, error)
	UpdateProfile(ctx context.Context, userID string, updates mockapi.ProfileUpdate) (user.User, error)
}

type LoginResult struct {
	User  user.User
	Token string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, req reqdto.UpdateProfileRequest) (user.User, error)
	ToggleTheme(ctx context.Context) bool
}

type authCommandsImpl struct {
	facade     AuthFacade
	jwtService *jwt.Service
	appState   *state.AppState
	store      localstore.Store
}

func NewAuthCommands(facade AuthFacade, jwtService *jwt.Service, appState *state.AppState, store localstore.Store) AuthCommands {
	return &authCommandsImpl{
		facade:     facade,
		jwtService: jwtService,
		appState:   appState,
		store:      store,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	u, err := a.facade.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	return a.establishSession(u)
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error) {
	u, err := a.facade.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return a.establishSession(u)
}

// establishSession issues the token, updates the in-memory session, and
// persists both identity keys. Persistence lives here, at the mock auth call
// site, not in the state container.
func (a *authCommandsImpl) establishSession(u user.User) (*LoginResult, error) {
	token, err := a.jwtService.GenerateToken(u.ID, u.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	a.appState.Login(u, token)

	if err := localstore.Save(a.store, state.KeyUser, u); err != nil {
		slog.Warn("session persistence degraded", "key", state.KeyUser, "error", err.Error())
	}
	if err := a.store.Set(state.KeyAuthToken, []byte(token)); err != nil {
		slog.Warn("session persistence degraded", "key", state.KeyAuthToken, "error", err.Error())
	}

	return &LoginResult{User: u, Token: token}, nil
}

// Logout clears the in-memory session and removes each persisted session key
// individually. The canonical booking list is deliberately left in place.
func (a *authCommandsImpl) Logout(_ context.Context) error {
	a.appState.Logout()

	for _, key := range []string{state.KeyAuthToken, state.KeyUser} {
		if err := a.store.Remove(key); err != nil {
			slog.Warn("failed to remove session key", "key", key, "error", err.Error())
		}
	}
	return nil
}

// ToggleTheme flips the session theme flag. Memory only, never persisted.
func (a *authCommandsImpl) ToggleTheme(_ context.Context) bool {
	return a.appState.ToggleTheme()
}

func (a *authCommandsImpl) UpdateProfile(ctx context.Context, req reqdto.UpdateProfileRequest) (user.User, error) {
	current, ok := a.appState.User()
	if !ok {
		return user.User{}, ErrAuthenticationFailed
	}

	updated, err := a.facade.UpdateProfile(ctx, current.ID, mockapi.ProfileUpdate{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return user.User{}, err
	}

	a.appState.Login(updated, a.appState.Token())
	if err := localstore.Save(a.store, state.KeyUser, updated); err != nil {
		slog.Warn("session persistence degraded", "key", state.KeyUser, "error", err.Error())
	}
	return updated, nil
}
