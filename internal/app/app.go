package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cashflow-api/internal/config"
	"cashflow-api/internal/database"
	"cashflow-api/internal/handler"
	"cashflow-api/internal/middleware"
	"cashflow-api/internal/repository"
	"cashflow-api/internal/router"
	"cashflow-api/internal/security"
	"cashflow-api/internal/service"
	"cashflow-api/internal/validation"
)

type App struct {
	server       *http.Server
	cleanupFuncs []func()
}

func New(cfg *config.Config) (*App, error) {
	hasher, err := security.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	secret, err := security.NewSigningSecret(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to load signing secret: %w", err)
	}

	if cfg.JWTIssuer == "" || cfg.JWTAudience == "" {
		slog.Warn("token issuer or audience not configured, those claims will not be enforced")
	}

	tokens, err := security.NewTokenService(secret, security.TokenOptions{
		TTL:      cfg.JWTAccessTTL,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	slog.Info("database ready")

	authService := service.NewAuthService(userRepo, hasher, tokens)
	userService := service.NewUserService(userRepo, userRepo, hasher, tokens)
	expenseService := service.NewExpenseService(expenseRepo, expenseRepo, expenseRepo, db)

	if cfg.SeedsAdmin() {
		seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		created, err := userService.EnsureAdmin(seedCtx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
		cancel()
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to seed admin account: %w", err)
		}
		slog.Info("admin account checked", "email", cfg.AdminEmail, "created", created)
	}

	validator := validation.New()

	appRouter := router.New(cfg, middleware.NewAuthMiddleware(tokens), router.Handlers{
		Auth:    handler.NewAuthHandler(authService, validator),
		User:    handler.NewUserHandler(userService, validator),
		Expense: handler.NewExpenseHandler(expenseService, validator),
		Health:  handler.NewHealthHandler(db),
	})

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{
		server: server,
		cleanupFuncs: []func(){
			db.Close,
		},
	}, nil
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests before
// releasing the database pool.
func (a *App) Run() error {
	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-serveErr:
		a.cleanup()
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-stop:
		slog.Info("shutdown requested", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	shutdownErr := a.server.Shutdown(ctx)
	a.cleanup()
	if shutdownErr != nil {
		return fmt.Errorf("graceful shutdown failed: %w", shutdownErr)
	}

	slog.Info("server stopped")
	return nil
}

func (a *App) cleanup() {
	for _, fn := range a.cleanupFuncs {
		fn()
	}
}
