package books

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/bookshop/internal/common"
	"github.com/dmitrijs2005/bookshop/internal/server/models"
)

// InMemoryRepository keeps the catalog in a mutex-guarded map keyed by ISBN.
// A single lock covers the whole store; every ledger mutation is one
// critical section, so upserts and deletes on the same book serialize.
type InMemoryRepository struct {
	mu    sync.RWMutex
	books map[string]*models.Book
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{books: make(map[string]*models.Book)}
}

func (r *InMemoryRepository) Add(ctx context.Context, book *models.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[book.ISBN]; ok {
		return common.ErrorAlreadyExists
	}

	stored := &models.Book{
		ISBN:    book.ISBN,
		Title:   book.Title,
		Author:  book.Author,
		Reviews: make(map[string]string, len(book.Reviews)),
	}
	for username, text := range book.Reviews {
		stored.Reviews[username] = text
	}
	r.books[stored.ISBN] = stored

	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, models.Book{ISBN: b.ISBN, Title: b.Title, Author: b.Author})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ISBN < out[j].ISBN })

	return out, nil
}

func (r *InMemoryRepository) GetByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := &models.Book{
		ISBN:    b.ISBN,
		Title:   b.Title,
		Author:  b.Author,
		Reviews: make(map[string]string, len(b.Reviews)),
	}
	for username, text := range b.Reviews {
		out.Reviews[username] = text
	}

	return out, nil
}

func (r *InMemoryRepository) FindByAuthor(ctx context.Context, author string) ([]models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Book, 0)
	for _, b := range r.books {
		if strings.EqualFold(b.Author, author) {
			out = append(out, models.Book{ISBN: b.ISBN, Title: b.Title, Author: b.Author})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ISBN < out[j].ISBN })

	return out, nil
}

func (r *InMemoryRepository) FindByTitle(ctx context.Context, title string) ([]models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(title)
	out := make([]models.Book, 0)
	for _, b := range r.books {
		if strings.Contains(strings.ToLower(b.Title), query) {
			out = append(out, models.Book{ISBN: b.ISBN, Title: b.Title, Author: b.Author})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ISBN < out[j].ISBN })

	return out, nil
}

func (r *InMemoryRepository) UpsertReview(ctx context.Context, isbn, username, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[isbn]
	if !ok {
		return common.ErrorNotFound
	}

	b.Reviews[username] = text
	return nil
}

func (r *InMemoryRepository) DeleteReview(ctx context.Context, isbn, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[isbn]
	if !ok {
		return common.ErrorNotFound
	}
	if _, ok := b.Reviews[username]; !ok {
		return common.ErrorNotFound
	}

	delete(b.Reviews, username)
	return nil
}

func (r *InMemoryRepository) ListReviews(ctx context.Context, isbn string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := make([]models.Review, 0, len(b.Reviews))
	for username, text := range b.Reviews {
		out = append(out, models.Review{Username: username, Review: text})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })

	return out, nil
}
