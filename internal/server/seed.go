package server

import (
	"context"

	"github.com/dmitrijs2005/bookshop/internal/server/models"
	"github.com/dmitrijs2005/bookshop/internal/server/repositories/books"
)

// demoCatalog is the sample shop stock loaded when demo seeding is on.
var demoCatalog = []models.Book{
	{ISBN: "9780143127741", Title: "The Martian", Author: "Andy Weir"},
	{ISBN: "9780553386790", Title: "A Game of Thrones", Author: "George R. R. Martin"},
	{ISBN: "9780061120084", Title: "To Kill a Mockingbird", Author: "Harper Lee"},
	{ISBN: "9780307277671", Title: "Kafka on the Shore", Author: "Haruki Murakami"},
}

const (
	demoUsername = "alice"
	demoPassword = "password123"
)

// seedDemoData loads the sample catalog and registers the sample user.
// The sample password goes through the regular registration path so it is
// stored hashed like any other credential.
func (app *App) seedDemoData(ctx context.Context, bookRepo books.Repository) error {
	for i := range demoCatalog {
		book := demoCatalog[i]
		if err := bookRepo.Add(ctx, &book); err != nil {
			return err
		}
	}

	if _, err := app.userService.Register(ctx, demoUsername, demoPassword); err != nil {
		return err
	}

	app.logger.Info(ctx, "Demo data seeded", "books", len(demoCatalog), "sample_user", demoUsername)
	return nil
}
