// Package server initializes and runs the bookshop server: it builds the
// in-memory stores, seeds the demo catalog, and starts the HTTP endpoint
// with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/bookshop/internal/logging"
	"github.com/dmitrijs2005/bookshop/internal/server/config"
	"github.com/dmitrijs2005/bookshop/internal/server/repositories/books"
	"github.com/dmitrijs2005/bookshop/internal/server/repositories/users"
	"github.com/dmitrijs2005/bookshop/internal/server/rest"
	"github.com/dmitrijs2005/bookshop/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *services.UserService
	bookService *services.BookService
}

func NewApp(cfg *config.Config) (*App, error) {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	userRepo := users.NewInMemoryRepository()
	bookRepo := books.NewInMemoryRepository()

	us := services.NewUserService(userRepo, cfg)
	bs := services.NewBookService(bookRepo)

	app := &App{config: cfg, logger: logger, userService: us, bookService: bs}

	if cfg.SeedDemoData {
		if err := app.seedDemoData(context.Background(), bookRepo); err != nil {
			return nil, fmt.Errorf("seed error: %w", err)
		}
	}

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewServer(app.config, app.logger, app.userService, app.bookService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
