// Package gymmembership собирает приложение: хранилище, платёжный
// провайдер, выпуск токенов, маршруты и HTTP-сервер.
package gymmembership

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/gym-membership/internal/config"
	"github.com/magabrotheeeer/gym-membership/internal/lib/jwt"
	"github.com/magabrotheeeer/gym-membership/internal/paymentprovider"
	"github.com/magabrotheeeer/gym-membership/internal/storage/mongodb"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *mongodb.Storage
}

// New подключается к хранилищу и собирает HTTP-сервер со всеми маршрутами.
// Хранилище создаётся здесь один раз и передаётся в обработчики явно.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := mongodb.New(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}

	providerClient := paymentprovider.NewClient(cfg.Stripe.SecretKey)
	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, db, jwtMaker, providerClient)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до остановки.
// По отмене контекста сервер останавливается корректно,
// после чего закрывается подключение к хранилищу.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.Close(timeoutCtx); closeErr != nil {
			a.logger.Error("failed to close storage", slog.Any("err", closeErr))
		}
		return err
	}
}
