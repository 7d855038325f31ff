package readstore

import (
	"context"

	"roombook/internal/infra/db"
	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type userReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) queries.UserReadStore {
	return &userReadStore{db: dbtx}
}

const userSelect = `
	SELECT id, username, email, first_name, middle_name, last_name, role, is_active, created_at, last_login_at
	FROM users`

func (s *userReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row := s.db.QueryRow(ctx, userSelect+` WHERE id = $1`, id)
	return scanUserView(row)
}

func (s *userReadStore) ListAll(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := s.db.Query(ctx, userSelect+` ORDER BY username`)
	if err != nil {
		return nil, wrapReadErr("failed to list users", err)
	}
	defer rows.Close()

	var views []*queries.UserView
	for rows.Next() {
		v, err := scanUserView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to read user rows", err)
	}
	return views, nil
}

func scanUserView(row pgx.Row) (*queries.UserView, error) {
	var v queries.UserView
	err := row.Scan(
		&v.ID, &v.Username, &v.Email,
		&v.FirstName, &v.MiddleName, &v.LastName,
		&v.Role, &v.IsActive, &v.CreatedAt, &v.LastLoginAt,
	)
	if err != nil {
		return nil, wrapReadErr("failed to scan user", err)
	}
	return &v, nil
}
