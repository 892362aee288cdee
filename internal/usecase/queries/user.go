package queries

import (
	"context"

	"parkspot/internal/domain/user"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/state"
)

var ErrNotAuthenticated = errs.New("not authenticated")

type UserQueries interface {
	CurrentUser(ctx context.Context) (user.User, error)
	IsDarkMode(ctx context.Context) bool
}

type userQueriesImpl struct {
	appState *state.AppState
}

func NewUserQueries(appState *state.AppState) UserQueries {
	return &userQueriesImpl{appState: appState}
}

func (q *userQueriesImpl) CurrentUser(_ context.Context) (user.User, error) {
	u, ok := q.appState.User()
	if !ok {
		return user.User{}, ErrNotAuthenticated
	}
	return u, nil
}

func (q *userQueriesImpl) IsDarkMode(_ context.Context) bool {
	return q.appState.IsDarkMode()
}
