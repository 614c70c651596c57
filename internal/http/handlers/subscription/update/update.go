package update

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/magabrotheeeer/gym-membership/internal/http/response"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
)

// SubscriptionUpserter определяет контракт обновления документа подписки
// с созданием документа при его отсутствии.
type SubscriptionUpserter interface {
	UpsertSubscription(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error)
}

type Handler struct {
	log           *slog.Logger
	subscriptions SubscriptionUpserter
}

func New(log *slog.Logger, subscriptions SubscriptionUpserter) *Handler {
	return &Handler{log: log, subscriptions: subscriptions}
}

// ServeHTTP обрабатывает PATCH /users/{id} (маршрут исторически назван
// по пользователям, но работает с коллекцией подписок).
//
// Тело запроса — произвольный набор полей, которые заменяют значения
// в документе; отсутствующий документ создаётся (upsert). Успешный
// ответ — результат обновления из хранилища как есть.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.update"

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

	var fields bson.M
	if err := render.DecodeJSON(r.Body, &fields); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	// _id неизменяем, попытка записать его в $set уронит запрос в хранилище.
	delete(fields, "_id")

	res, err := h.subscriptions.UpsertSubscription(r.Context(), id, fields)
	if err != nil {
		log.Error("failed to update subscription", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update subscription"))
		return
	}

	log.Info("updated subscription",
		slog.String("id", id.Hex()),
		slog.Int64("matched", res.MatchedCount),
		slog.Int64("modified", res.ModifiedCount),
	)
	render.JSON(w, r, res)
}
