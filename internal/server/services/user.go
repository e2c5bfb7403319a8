// Package services contains server-side business logic. This file
// implements UserService, which handles registration and login and mints
// session JWTs.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/bookshop/internal/common"
	"github.com/dmitrijs2005/bookshop/internal/server/auth"
	"github.com/dmitrijs2005/bookshop/internal/server/config"
	"github.com/dmitrijs2005/bookshop/internal/server/models"
	"github.com/dmitrijs2005/bookshop/internal/server/repositories/users"
)

// dummyHash is a valid bcrypt digest (of an unrelated string) used to burn
// the same verification cost when the username does not exist, so the
// unknown-user and wrong-password paths are indistinguishable by timing as
// well as by error shape.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint a session token
type UserService struct {
	repo                  users.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using the credential store and
// server config. The signing key is read once here; there is no rotation.
func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new user with the given username and password. The
// password is hashed before the store is touched, so the expensive bcrypt
// work never runs inside the store's critical section.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", common.ErrorInternal)
	}

	user := &models.User{UserName: username, PasswordHash: hash}
	u, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return u, nil
}

// Login verifies the credentials and, on success, returns a signed session
// token. Unknown usernames and wrong passwords produce the same
// common.ErrorUnauthorized; callers must not be able to tell them apart.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", common.ErrorValidation
	}

	user, err := s.repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn the same hashing cost as the known-user path
			auth.CheckPassword(password, dummyHash)
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.UserName, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
