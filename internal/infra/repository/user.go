package repository

import (
	"context"
	"time"

	"roombook/internal/domain/user"
	"roombook/internal/infra"
	"roombook/internal/infra/db"
	"roombook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type userRepository struct{}

func NewUserRepository() shared.UserRepository {
	return &userRepository{}
}

const userColumns = `id, username, email, password_hash, first_name, middle_name, last_name, role, is_active, created_at, last_login_at`

func (r *userRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) error {
	const query = `
		INSERT INTO users
			(id, username, email, password_hash, first_name, middle_name, last_name, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := dbtx.Exec(ctx, query,
		u.ID(),
		u.Username(),
		u.Email(),
		u.PasswordHash(),
		u.FirstName(),
		u.MiddleName(),
		u.LastName(),
		u.Role().String(),
		u.IsActive(),
		u.CreatedAt(),
	)
	if err != nil {
		return wrapDBErr("failed to create user", err)
	}
	return nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, `UPDATE users SET last_login_at = now() WHERE id = $1`, userID)
	if err != nil {
		return wrapDBErr("failed to update last login", err)
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, passwordHash string) error {
	tag, err := dbtx.Exec(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, userID, passwordHash)
	if err != nil {
		return wrapDBErr("failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *userRepository) Deactivate(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `UPDATE users SET is_active = FALSE WHERE id = $1`, userID)
	if err != nil {
		return wrapDBErr("failed to deactivate user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) (*user.User, error) {
	row := dbtx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	return scanUser(row)
}

func (r *userRepository) FindByUsername(ctx context.Context, dbtx db.DBTX, username string) (*user.User, error) {
	row := dbtx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(username) = lower($1)`, username)
	return scanUser(row)
}

func (r *userRepository) ListAdmins(ctx context.Context, dbtx db.DBTX) ([]*user.User, error) {
	rows, err := dbtx.Query(ctx, `SELECT `+userColumns+` FROM users WHERE role = 'admin' AND is_active`)
	if err != nil {
		return nil, wrapDBErr("failed to list admins", err)
	}
	defer rows.Close()

	var admins []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr("failed to list admins", err)
	}
	return admins, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id           uuid.UUID
		username     string
		email        string
		passwordHash string
		firstName    string
		middleName   *string
		lastName     string
		roleRaw      string
		isActive     bool
		createdAt    time.Time
		lastLoginAt  *time.Time
	)
	err := row.Scan(
		&id, &username, &email, &passwordHash,
		&firstName, &middleName, &lastName,
		&roleRaw, &isActive, &createdAt, &lastLoginAt,
	)
	if err != nil {
		return nil, wrapDBErr("failed to scan user", err)
	}
	return user.ReconstructUser(
		id, username, email, passwordHash,
		firstName, middleName, lastName,
		user.Role(roleRaw), isActive, createdAt, lastLoginAt,
	), nil
}
