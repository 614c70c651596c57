package create

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/magabrotheeeer/gym-membership/internal/http/response"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// Request — входные данные для создания подписки.
// Поля документа задаёт клиент в объекте info.
type Request struct {
	Info map[string]any `json:"info" validate:"required"`
}

// SubscriptionInserter определяет контракт вставки документа подписки.
type SubscriptionInserter interface {
	InsertSubscription(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error)
}

type Handler struct {
	log           *slog.Logger
	subscriptions SubscriptionInserter
	validate      *validator.Validate
}

func New(log *slog.Logger, subscriptions SubscriptionInserter) *Handler {
	return &Handler{
		log:           log,
		subscriptions: subscriptions,
		validate:      validator.New(),
	}
}

// ServeHTTP обрабатывает POST /subscriptions.
//
// Документ собирается из полей info, затем сервер выставляет createdAt
// и status — эти значения всегда серверные, что бы ни прислал клиент.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	doc := make(bson.M, len(req.Info)+2)
	for k, v := range req.Info {
		doc[k] = v
	}
	doc[models.SubscriptionFieldCreatedAt] = time.Now().UTC()
	doc[models.SubscriptionFieldStatus] = models.SubscriptionStatusActive

	res, err := h.subscriptions.InsertSubscription(r.Context(), doc)
	if err != nil {
		log.Error("failed to insert subscription", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to save subscription"))
		return
	}

	log.Info("subscription created", slog.Any("id", res.InsertedID))
	render.JSON(w, r, res)
}
