package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrEmptyName       = errors.New("first and last name are required")
)

type User struct {
	id           uuid.UUID
	username     string
	email        string
	passwordHash string
	firstName    string
	middleName   *string
	lastName     string
	role         Role
	isActive     bool
	createdAt    time.Time
	lastLoginAt  *time.Time
}

func NewUser(username, email, passwordHash, firstName string, middleName *string, lastName string, role Role) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, ErrInvalidUsername
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, ErrEmptyName
	}

	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		firstName:    strings.TrimSpace(firstName),
		middleName:   middleName,
		lastName:     strings.TrimSpace(lastName),
		role:         role,
		isActive:     true,
		createdAt:    time.Now().UTC(),
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	username, email, passwordHash, firstName string,
	middleName *string,
	lastName string,
	role Role,
	isActive bool,
	createdAt time.Time,
	lastLoginAt *time.Time,
) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		middleName:   middleName,
		lastName:     lastName,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
		lastLoginAt:  lastLoginAt,
	}
}

// FullName joins the name parts the way notification texts address the user.
func (u *User) FullName() string {
	if u.middleName == nil || *u.middleName == "" {
		return u.firstName + " " + u.lastName
	}
	return u.firstName + " " + *u.middleName + " " + u.lastName
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Username() string      { return u.username }
func (u *User) Email() string         { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) FirstName() string     { return u.firstName }
func (u *User) MiddleName() *string   { return u.middleName }
func (u *User) LastName() string      { return u.lastName }
func (u *User) Role() Role            { return u.role }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) LastLogin() *time.Time { return u.lastLoginAt }
