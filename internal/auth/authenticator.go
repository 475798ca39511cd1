package auth

import (
	"asset-management-api/internal/model"
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Demo credentials used when no others are configured.
const (
	DefaultUsername = "admin"
	DefaultPassword = "password123"
	DefaultRole     = "System Administrator"
)

// ErrInvalidCredentials is returned when a username/password pair does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator checks login credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*model.Principal, error)
}

// StaticAuthenticator accepts exactly one username and password.
type StaticAuthenticator struct {
	username     string
	passwordHash []byte
	role         string
}

var _ Authenticator = (*StaticAuthenticator)(nil)

// NewStaticAuthenticator hashes password and returns an authenticator for
// the single account.
func NewStaticAuthenticator(username, password, role string) (*StaticAuthenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return NewStaticAuthenticatorWithHash(username, string(hash), role)
}

// NewStaticAuthenticatorWithHash builds an authenticator from a
// pre-computed bcrypt hash.
func NewStaticAuthenticatorWithHash(username, passwordHash, role string) (*StaticAuthenticator, error) {
	if username == "" {
		return nil, errors.New("username is required")
	}
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, fmt.Errorf("invalid password hash: %w", err)
	}
	return &StaticAuthenticator{
		username:     username,
		passwordHash: []byte(passwordHash),
		role:         role,
	}, nil
}

// Authenticate implements Authenticator.
func (a *StaticAuthenticator) Authenticate(ctx context.Context, username, password string) (*model.Principal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	// Always run the hash comparison so timing does not reveal the username.
	passErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return nil, ErrInvalidCredentials
	}

	return &model.Principal{Username: a.username, Role: a.role}, nil
}
