package services

import (
	"context"

	"github.com/dmitrijs2005/bookshop/internal/common"
	"github.com/dmitrijs2005/bookshop/internal/server/models"
	"github.com/dmitrijs2005/bookshop/internal/server/repositories/books"
)

// BookService exposes catalog reads and review mutations. It never derives
// an acting username itself: mutating operations receive the principal
// that the transport layer extracted from a verified token.
type BookService struct {
	repo books.Repository
}

func NewBookService(repo books.Repository) *BookService {
	return &BookService{repo: repo}
}

// List returns the catalog, optionally filtered by exact author or by a
// title substring (both case-insensitive). Only one filter applies at a
// time; author wins when both are supplied.
func (s *BookService) List(ctx context.Context, author, title string) ([]models.Book, error) {
	switch {
	case author != "":
		return s.repo.FindByAuthor(ctx, author)
	case title != "":
		return s.repo.FindByTitle(ctx, title)
	default:
		return s.repo.List(ctx)
	}
}

func (s *BookService) GetByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	if isbn == "" {
		return nil, common.ErrorValidation
	}
	return s.repo.GetByISBN(ctx, isbn)
}

// Reviews returns the review snapshot for a book together with its title,
// mirroring what the read endpoint exposes.
func (s *BookService) Reviews(ctx context.Context, isbn string) (*models.Book, []models.Review, error) {
	if isbn == "" {
		return nil, nil, common.ErrorValidation
	}
	book, err := s.repo.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, nil, err
	}
	reviews, err := s.repo.ListReviews(ctx, isbn)
	if err != nil {
		return nil, nil, err
	}
	return book, reviews, nil
}

// UpsertReview adds or replaces username's review on the book. The text is
// required; the username comes from the verified token upstream.
func (s *BookService) UpsertReview(ctx context.Context, isbn, username, text string) error {
	if isbn == "" || username == "" || text == "" {
		return common.ErrorValidation
	}
	return s.repo.UpsertReview(ctx, isbn, username, text)
}

// DeleteReview removes username's review from the book.
func (s *BookService) DeleteReview(ctx context.Context, isbn, username string) error {
	if isbn == "" || username == "" {
		return common.ErrorValidation
	}
	return s.repo.DeleteReview(ctx, isbn, username)
}
