package commands

import (
	"context"
	"log/slog"

	"roombook/internal/domain/user"
	"roombook/internal/infra"
	"roombook/internal/pkg/errs"
	"roombook/internal/pkg/jwt"
	"roombook/internal/pkg/password"
	"roombook/internal/usecase/queries"
	"roombook/internal/usecase/shared"
)

// ErrAuthenticationFailed deliberately covers unknown username, wrong
// password and deactivated account alike.
var ErrAuthenticationFailed = errs.New("invalid username or password")

type LoginResult struct {
	Token string
	User  *queries.UserView
}

type AuthCommands interface {
	Login(ctx context.Context, username, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow         shared.UnitOfWork
	userQueries queries.UserQueries
	jwtService  *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, userQueries queries.UserQueries, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{uow: uow, userQueries: userQueries, jwtService: jwtService}
}

func (c *authCommandsImpl) Login(ctx context.Context, username, plainPassword string) (*LoginResult, error) {
	var account *user.User
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Users().FindByUsername(ctx, tx.DB(), username)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAuthenticationFailed
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		account = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !account.IsActive() {
		return nil, ErrAuthenticationFailed
	}
	if err := password.Compare(account.PasswordHash(), plainPassword); err != nil {
		return nil, ErrAuthenticationFailed
	}

	token, err := c.jwtService.GenerateToken(account.ID(), account.FullName(), account.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue token")
	}

	// Best effort; a failed timestamp write never blocks the login.
	if err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), account.ID())
	}); err != nil {
		slog.Warn("failed to record last login", "user_id", account.ID().String(), "error", err.Error())
	}

	view, err := c.userQueries.GetByID(ctx, account.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &LoginResult{Token: token, User: view}, nil
}
