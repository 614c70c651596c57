// Package gymmembership предоставляет маршруты для основного приложения.
package gymmembership

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/gym-membership/internal/config"
	"github.com/magabrotheeeer/gym-membership/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/gym-membership/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/gym-membership/internal/http/handlers/payment/paymentintent"
	subcreate "github.com/magabrotheeeer/gym-membership/internal/http/handlers/subscription/create"
	sublist "github.com/magabrotheeeer/gym-membership/internal/http/handlers/subscription/list"
	"github.com/magabrotheeeer/gym-membership/internal/http/handlers/subscription/read"
	"github.com/magabrotheeeer/gym-membership/internal/http/handlers/subscription/remove"
	"github.com/magabrotheeeer/gym-membership/internal/http/handlers/subscription/update"
	userlist "github.com/magabrotheeeer/gym-membership/internal/http/handlers/user/list"
	"github.com/magabrotheeeer/gym-membership/internal/http/middlewarectx"
	"github.com/magabrotheeeer/gym-membership/internal/lib/jwt"
	"github.com/magabrotheeeer/gym-membership/internal/models"
	"github.com/magabrotheeeer/gym-membership/internal/paymentprovider"
	"github.com/magabrotheeeer/gym-membership/internal/storage/mongodb"
)

// RegisterRoutes регистрирует все маршруты приложения.
//
// Маршруты /users/{id} (PATCH, DELETE, GET) исторически работают
// с коллекцией подписок — имена сохранены ради совместимости клиентов.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config,
	db *mongodb.Storage, jwtMaker jwt.Maker, providerClient paymentprovider.Client) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, fmt.Sprintf("server is running at %d", cfg.Port))
	})

	// Открытые конечные точки
	r.Post("/users", register.New(logger, db).ServeHTTP)
	r.Post("/login", login.New(logger, db, jwtMaker).ServeHTTP)
	r.Get("/users", userlist.New(logger, db).ServeHTTP)
	r.Get("/users/{id}", read.New(logger, db).ServeHTTP)
	r.Post("/subscriptions", subcreate.New(logger, db).ServeHTTP)
	r.Get("/subscriptions", sublist.New(logger, db).ServeHTTP)
	r.Post("/create-payment-intent", paymentintent.New(logger, providerClient).ServeHTTP)

	// Группа с JWT аутентификацией и проверкой роли
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
		r.Use(middlewarectx.RequireRole(logger, models.RoleAdmin))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Patch("/users/{id}", update.New(logger, db).ServeHTTP)
		r.Delete("/users/{id}", remove.New(logger, db).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
}
