// Package client implements the HTTP API client the CLI talks through.
package client

import (
	"context"

	"github.com/dmitrijs2005/bookshop/internal/client/models"
)

type Client interface {
	Register(ctx context.Context, username, password string) error
	// Login authenticates and stores the session token for subsequent
	// review calls.
	Login(ctx context.Context, username, password string) error

	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, isbn string) (*models.Book, error)
	SearchByAuthor(ctx context.Context, author string) ([]models.Book, error)
	SearchByTitle(ctx context.Context, title string) ([]models.Book, error)
	Reviews(ctx context.Context, isbn string) (*models.ReviewsPage, error)

	AddReview(ctx context.Context, isbn, text string) error
	DeleteReview(ctx context.Context, isbn string) error
}
