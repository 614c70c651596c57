// Package read реализует обработчик получения одной подписки.
//
// Маршрут исторически называется GET /users/{id}, но читает коллекцию
// подписок — переименовывать его нельзя, на него завязаны клиенты.
package read

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/gym-membership/internal/http/response"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
)

// SubscriptionGetter определяет контракт поиска подписки по идентификатору.
type SubscriptionGetter interface {
	FindSubscriptionByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
}

type Handler struct {
	log           *slog.Logger
	subscriptions SubscriptionGetter
}

func New(log *slog.Logger, subscriptions SubscriptionGetter) *Handler {
	return &Handler{log: log, subscriptions: subscriptions}
}

// ServeHTTP обрабатывает GET /users/{id}: возвращает документ подписки
// или null, если документа нет. Некорректный формат идентификатора —
// структурированная ошибка 400, а не падение на уровне хранилища.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid subscription id"))
		return
	}

	doc, err := h.subscriptions.FindSubscriptionByID(r.Context(), id)
	if err != nil {
		log.Error("failed to read subscription", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read subscription"))
		return
	}

	if doc == nil {
		log.Info("subscription not found", slog.String("id", id.Hex()))
		render.JSON(w, r, nil)
		return
	}

	log.Info("read subscription", slog.String("id", id.Hex()))
	render.JSON(w, r, doc)
}
