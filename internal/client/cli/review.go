package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookshop/internal/client/client"
)

func (a *App) addReview(ctx context.Context, isbn string) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Login first")
		return
	}

	text, err := GetMultiline(a.reader, "Enter your review", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if text == "" {
		fmt.Fprintln(a.out, "Review text is empty, nothing sent")
		return
	}

	if err := a.api.AddReview(ctx, isbn, text); err != nil {
		a.printReviewError(err)
		return
	}

	fmt.Fprintln(a.out, "Review saved")
}

func (a *App) deleteReview(ctx context.Context, isbn string) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Login first")
		return
	}

	if err := a.api.DeleteReview(ctx, isbn); err != nil {
		if errors.Is(err, client.ErrNotFound) {
			fmt.Fprintln(a.out, "No review of yours on this book")
			return
		}
		a.printReviewError(err)
		return
	}

	fmt.Fprintln(a.out, "Review deleted")
}

func (a *App) printReviewError(err error) {
	switch {
	case errors.Is(err, client.ErrForbidden), errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintln(a.out, "Session invalid or expired, please login again")
	case errors.Is(err, client.ErrNotFound):
		fmt.Fprintln(a.out, "Book not found")
	default:
		fmt.Fprintf(a.out, "error: %v\n", err)
	}
}
