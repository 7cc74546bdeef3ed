// Package server initializes and runs the lookbook application server.
// It opens the database, applies migrations, wires services to the HTTP
// shell, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/okatkov/lookbook/internal/logging"
	"github.com/okatkov/lookbook/internal/server/config"
	"github.com/okatkov/lookbook/internal/server/repositories/repomanager"
	"github.com/okatkov/lookbook/internal/server/rest"
	"github.com/okatkov/lookbook/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler *rest.Handler
	auth    *rest.AuthMiddleware
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	userService := services.NewUserService(db, m)
	authService := services.NewAuthService(db, m)
	postService := services.NewPostService(db, m)
	lookService := services.NewLookService(db, m)
	itemService := services.NewItemService(db, m)
	commentService := services.NewCommentService(db, m)

	handler := rest.NewHandler(logger, userService, postService, lookService, itemService, commentService)
	auth := rest.NewAuthMiddleware(authService)

	return &App{config: c, logger: logger, db: db, handler: handler, auth: auth}, nil
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

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	app.handler.RegisterRoutes(e, app.auth)

	go func() {
		if err := e.Start(app.config.EndpointAddr); err != nil && err != http.ErrServerClosed {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, err.Error())
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(shutdownCtx, err.Error())
	}

	app.logger.Info(shutdownCtx, "Server stopped")
}
