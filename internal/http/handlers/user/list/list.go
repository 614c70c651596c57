package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-membership/internal/http/response"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// UsersLister определяет контракт получения всех пользователей.
type UsersLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

type Handler struct {
	log   *slog.Logger
	users UsersLister
}

func New(log *slog.Logger, users UsersLister) *Handler {
	return &Handler{log: log, users: users}
}

// ServeHTTP обрабатывает GET /users: возвращает массив пользователей.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list users"))
		return
	}

	log.Info("listed users", slog.Int("count", len(users)))
	render.JSON(w, r, users)
}
