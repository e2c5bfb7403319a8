// Package books holds the catalog and the per-book review ledger. Book
// identity and metadata are fixed at seeding time; the ledger mutates only
// the review mapping and enforces "at most one review per user per book".
package books

import (
	"context"

	"github.com/dmitrijs2005/bookshop/internal/server/models"
)

// Repository combines catalog reads with review-ledger mutations. The
// ledger operations trust the username they are given: identity checks are
// the transport middleware's responsibility, not the store's.
type Repository interface {
	// Add inserts a catalog record; a duplicate ISBN yields
	// common.ErrorAlreadyExists.
	Add(ctx context.Context, book *models.Book) error

	// List returns the catalog without review mappings, in ISBN order.
	List(ctx context.Context) ([]models.Book, error)

	// GetByISBN returns the full record including a copy of its reviews,
	// or common.ErrorNotFound.
	GetByISBN(ctx context.Context, isbn string) (*models.Book, error)

	// FindByAuthor returns books whose author matches exactly,
	// case-insensitively. An empty result is not an error.
	FindByAuthor(ctx context.Context, author string) ([]models.Book, error)

	// FindByTitle returns books whose title contains the query,
	// case-insensitively.
	FindByTitle(ctx context.Context, title string) ([]models.Book, error)

	// UpsertReview inserts or replaces username's review on the book.
	// Unknown ISBN yields common.ErrorNotFound.
	UpsertReview(ctx context.Context, isbn, username, text string) error

	// DeleteReview removes username's review; common.ErrorNotFound when
	// the book is unknown or the user has no review on it.
	DeleteReview(ctx context.Context, isbn, username string) error

	// ListReviews returns a snapshot of the book's reviews sorted by
	// username. A book without reviews yields an empty slice; an unknown
	// ISBN yields common.ErrorNotFound.
	ListReviews(ctx context.Context, isbn string) ([]models.Review, error)
}
