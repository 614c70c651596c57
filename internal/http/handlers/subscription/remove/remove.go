// Package remove предоставляет HTTP‑обработчик удаления подписки по ID.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/magabrotheeeer/gym-membership/internal/http/response"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
)

// SubscriptionDeleter определяет контракт удаления подписки по ID.
type SubscriptionDeleter interface {
	DeleteSubscription(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type Handler struct {
	log           *slog.Logger
	subscriptions SubscriptionDeleter
}

func New(log *slog.Logger, subscriptions SubscriptionDeleter) *Handler {
	return &Handler{log: log, subscriptions: subscriptions}
}

// ServeHTTP обрабатывает DELETE /users/{id} (маршрут работает
// с коллекцией подписок, см. пакет read).
//
// Удаление идемпотентно: повторный запрос по уже удалённому ID
// возвращает тот же ответ 200 с нулевым числом удалённых записей.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.remove"

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

	res, err := h.subscriptions.DeleteSubscription(r.Context(), id)
	if err != nil {
		log.Error("failed to delete subscription", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete subscription"))
		return
	}

	log.Info("deleted subscription",
		slog.String("id", id.Hex()),
		slog.Int64("deleted_count", res.DeletedCount),
	)
	render.PlainText(w, r, "Subscription deleted")
}
