package commands

import (
	"context"

	"roombook/internal/domain/user"
	"roombook/internal/infra"
	"roombook/internal/pkg/errs"
	"roombook/internal/pkg/password"
	"roombook/internal/usecase/queries"
	"roombook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrUsernameTaken        = errs.New("username or email already taken")
	ErrInvalidUser          = errs.New("invalid user")
	ErrWrongCurrentPassword = errs.New("current password is incorrect")
)

type CreateUserParams struct {
	Username   string
	Email      string
	Password   string
	FirstName  string
	MiddleName *string
	LastName   string
	Role       user.Role
}

type ChangePasswordParams struct {
	TargetID uuid.UUID
	// CurrentPassword is verified when set; admins resetting another
	// account's password leave it nil.
	CurrentPassword *string
	NewPassword     string
}

type UserCommands interface {
	Create(ctx context.Context, p CreateUserParams) (*queries.UserView, error)
	ChangePassword(ctx context.Context, p ChangePasswordParams) error
	Deactivate(ctx context.Context, userID uuid.UUID) error
}

type userCommandsImpl struct {
	uow         shared.UnitOfWork
	userQueries queries.UserQueries
}

func NewUserCommands(uow shared.UnitOfWork, userQueries queries.UserQueries) UserCommands {
	return &userCommandsImpl{uow: uow, userQueries: userQueries}
}

func (c *userCommandsImpl) Create(ctx context.Context, p CreateUserParams) (*queries.UserView, error) {
	if len(p.Password) < password.MinLength {
		return nil, errs.Wrapf(ErrInvalidUser, "password must be at least %d characters", password.MinLength)
	}
	hash, err := password.Hash(p.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUser)
	}

	entity, err := user.NewUser(p.Username, p.Email, hash, p.FirstName, p.MiddleName, p.LastName, p.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUser)
	}

	txErr := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, tx.DB(), entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrUsernameTaken
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	view, err := c.userQueries.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *userCommandsImpl) ChangePassword(ctx context.Context, p ChangePasswordParams) error {
	if len(p.NewPassword) < password.MinLength {
		return errs.Wrapf(ErrInvalidUser, "password must be at least %d characters", password.MinLength)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		account, err := tx.Users().FindByID(ctx, tx.DB(), p.TargetID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if p.CurrentPassword != nil {
			if err := password.Compare(account.PasswordHash(), *p.CurrentPassword); err != nil {
				return ErrWrongCurrentPassword
			}
		}

		hash, err := password.Hash(p.NewPassword)
		if err != nil {
			return errs.Mark(err, ErrInvalidUser)
		}
		if err := tx.Users().UpdatePassword(ctx, tx.DB(), p.TargetID, hash); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *userCommandsImpl) Deactivate(ctx context.Context, userID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().FindByID(ctx, tx.DB(), userID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Users().Deactivate(ctx, tx.DB(), userID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
