package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/magabrotheeeer/gym-membership/internal/http/response"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
)

// SubscriptionsLister определяет контракт получения всех подписок.
type SubscriptionsLister interface {
	ListSubscriptions(ctx context.Context) ([]bson.M, error)
}

type Handler struct {
	log           *slog.Logger
	subscriptions SubscriptionsLister
}

func New(log *slog.Logger, subscriptions SubscriptionsLister) *Handler {
	return &Handler{log: log, subscriptions: subscriptions}
}

// ServeHTTP обрабатывает GET /subscriptions: возвращает массив документов.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	docs, err := h.subscriptions.ListSubscriptions(r.Context())
	if err != nil {
		log.Error("failed to list subscriptions", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list subscriptions"))
		return
	}

	log.Info("listed subscriptions", slog.Int("count", len(docs)))
	render.JSON(w, r, docs)
}
