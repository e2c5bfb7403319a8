package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookshop/internal/client/client"
	"github.com/dmitrijs2005/bookshop/internal/client/models"
)

func (a *App) printBooks(books []models.Book) {
	if len(books) == 0 {
		fmt.Fprintln(a.out, "No books found")
		return
	}
	for _, b := range books {
		fmt.Fprintf(a.out, "%s  %-28s %s\n", b.ISBN, b.Title, b.Author)
	}
}

func (a *App) listBooks(ctx context.Context) {
	books, err := a.api.ListBooks(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	a.printBooks(books)
}

func (a *App) getBook(ctx context.Context, isbn string) {
	book, err := a.api.GetBook(ctx, isbn)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			fmt.Fprintln(a.out, "Book not found")
			return
		}
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "%s  %s — %s (%d reviews)\n", book.ISBN, book.Title, book.Author, len(book.Reviews))
}

func (a *App) searchByAuthor(ctx context.Context, author string) {
	books, err := a.api.SearchByAuthor(ctx, author)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	a.printBooks(books)
}

func (a *App) searchByTitle(ctx context.Context, title string) {
	books, err := a.api.SearchByTitle(ctx, title)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	a.printBooks(books)
}

func (a *App) listReviews(ctx context.Context, isbn string) {
	page, err := a.api.Reviews(ctx, isbn)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			fmt.Fprintln(a.out, "Book not found")
			return
		}
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(page.Reviews) == 0 {
		fmt.Fprintf(a.out, "No reviews yet for %q\n", page.Title)
		return
	}
	fmt.Fprintf(a.out, "Reviews for %q:\n", page.Title)
	for _, r := range page.Reviews {
		fmt.Fprintf(a.out, "  %s: %s\n", r.Username, r.Review)
	}
}
