package paymentintent

import (
	"context"
	"log/slog"
	"math"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/stripe/stripe-go/v81"

	"github.com/magabrotheeeer/gym-membership/internal/http/response"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
)

// Currency — валюта всех платежей сервиса.
const Currency = "usd"

// Request — входные данные для создания payment intent.
// Цена задаётся в основных единицах валюты (долларах).
type Request struct {
	Price float64 `json:"price"`
}

// IntentCreater определяет контракт платёжного провайдера.
type IntentCreater interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*stripe.PaymentIntent, error)
}

type Handler struct {
	log      *slog.Logger
	provider IntentCreater
}

func New(log *slog.Logger, provider IntentCreater) *Handler {
	return &Handler{log: log, provider: provider}
}

// ServeHTTP обрабатывает POST /create-payment-intent.
//
// Отрицательная цена отклоняется с HTTP 400; нулевая цена допустима.
// Сумма пересчитывается в минорные единицы (центы) умножением на 100.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.paymentintent"

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

	if req.Price < 0 {
		log.Error("negative price rejected", slog.Float64("price", req.Price))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("Price must be greater than zero"))
		return
	}

	amount := int64(math.Round(req.Price * 100))

	intent, err := h.provider.CreatePaymentIntent(r.Context(), amount, Currency)
	if err != nil {
		log.Error("failed to create payment intent", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create payment intent"))
		return
	}

	log.Info("payment intent created",
		slog.Int64("amount", amount),
		slog.String("currency", Currency),
	)
	render.JSON(w, r, map[string]string{"clientSecret": intent.ClientSecret})
}
