package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/bookshop/internal/common"
	"github.com/dmitrijs2005/bookshop/internal/server/models"
)

type fakeBooksRepo struct {
	listCalled     bool
	byAuthorCalled string
	byTitleCalled  string

	upsertErr error
	deleteErr error

	lastUpsert struct{ isbn, username, text string }
}

func (f *fakeBooksRepo) Add(ctx context.Context, b *models.Book) error { return nil }

func (f *fakeBooksRepo) List(ctx context.Context) ([]models.Book, error) {
	f.listCalled = true
	return []models.Book{}, nil
}

func (f *fakeBooksRepo) GetByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	return &models.Book{ISBN: isbn, Title: "T"}, nil
}

func (f *fakeBooksRepo) FindByAuthor(ctx context.Context, author string) ([]models.Book, error) {
	f.byAuthorCalled = author
	return []models.Book{}, nil
}

func (f *fakeBooksRepo) FindByTitle(ctx context.Context, title string) ([]models.Book, error) {
	f.byTitleCalled = title
	return []models.Book{}, nil
}

func (f *fakeBooksRepo) UpsertReview(ctx context.Context, isbn, username, text string) error {
	f.lastUpsert = struct{ isbn, username, text string }{isbn, username, text}
	return f.upsertErr
}

func (f *fakeBooksRepo) DeleteReview(ctx context.Context, isbn, username string) error {
	return f.deleteErr
}

func (f *fakeBooksRepo) ListReviews(ctx context.Context, isbn string) ([]models.Review, error) {
	return []models.Review{}, nil
}

func TestList_FilterSelection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	repo := &fakeBooksRepo{}
	svc := NewBookService(repo)

	if _, err := svc.List(ctx, "", ""); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if !repo.listCalled {
		t.Fatalf("expected plain listing without filters")
	}

	if _, err := svc.List(ctx, "Harper Lee", ""); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if repo.byAuthorCalled != "Harper Lee" {
		t.Fatalf("author filter not applied")
	}

	if _, err := svc.List(ctx, "", "mockingbird"); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if repo.byTitleCalled != "mockingbird" {
		t.Fatalf("title filter not applied")
	}
}

func TestUpsertReview_Validation(t *testing.T) {
	t.Parallel()

	svc := NewBookService(&fakeBooksRepo{})
	ctx := context.Background()

	for _, tc := range []struct{ isbn, username, text string }{
		{"", "alice", "x"},
		{"i", "", "x"},
		{"i", "alice", ""},
	} {
		err := svc.UpsertReview(ctx, tc.isbn, tc.username, tc.text)
		if !errors.Is(err, common.ErrorValidation) {
			t.Fatalf("expected common.ErrorValidation for %+v, got %v", tc, err)
		}
	}
}

func TestUpsertReview_PassesPrincipalThrough(t *testing.T) {
	t.Parallel()

	repo := &fakeBooksRepo{}
	svc := NewBookService(repo)

	if err := svc.UpsertReview(context.Background(), "isbn-1", "alice", "Great read"); err != nil {
		t.Fatalf("UpsertReview error: %v", err)
	}
	if repo.lastUpsert.username != "alice" || repo.lastUpsert.isbn != "isbn-1" {
		t.Fatalf("unexpected arguments: %+v", repo.lastUpsert)
	}
}

func TestDeleteReview_NotFoundPassthrough(t *testing.T) {
	t.Parallel()

	svc := NewBookService(&fakeBooksRepo{deleteErr: common.ErrorNotFound})
	err := svc.DeleteReview(context.Background(), "isbn-1", "alice")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
