// Package users holds the credential store: username → password-hash
// records with a uniqueness guarantee on the username.
package users

import (
	"context"

	"github.com/dmitrijs2005/bookshop/internal/server/models"
)

// Repository is the credential store contract. The store is append-only:
// there is no update or delete operation.
type Repository interface {
	// Create inserts a new user. The uniqueness check and the insert are a
	// single atomic step; a taken username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByLogin returns the user with the given username, or
	// common.ErrorNotFound. Absence is a valid outcome for the caller to
	// interpret, not an internal failure.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}
