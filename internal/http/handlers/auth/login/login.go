package login

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/gym-membership/internal/http/response"
	"github.com/magabrotheeeer/gym-membership/internal/lib/jwt"
	"github.com/magabrotheeeer/gym-membership/internal/lib/password"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// Request — входные данные для входа.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserGetter определяет контракт поиска пользователя по email.
type UserGetter interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type Handler struct {
	log      *slog.Logger
	users    UserGetter
	jwtMaker jwt.Maker
	validate *validator.Validate
}

func New(log *slog.Logger, users UserGetter, jwtMaker jwt.Maker) *Handler {
	return &Handler{
		log:      log,
		users:    users,
		jwtMaker: jwtMaker,
		validate: validator.New(),
	}
}

// ServeHTTP обрабатывает POST /login.
//
// Неизвестный email и неверный пароль дают одинаковый ответ
// 400 "Invalid credentials": по ответу нельзя понять, какой из двух
// случаев произошёл. Ошибка подписи токена возвращается как HTTP 500,
// а не проглатывается.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

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

	user, err := h.users.FindUserByEmail(r.Context(), req.Email)
	if err != nil {
		log.Error("user lookup failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Message("Invalid credentials"))
		return
	}

	if err := password.CompareHash(user.PasswordHash, req.Password); err != nil {
		log.Error("password mismatch", slog.String("email", req.Email))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Message("Invalid credentials"))
		return
	}

	token, err := h.jwtMaker.GenerateToken(user.Role, user.Email)
	if err != nil {
		log.Error("could not generate token", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to generate token"))
		return
	}

	log.Info("user logged in", slog.String("email", user.Email), slog.String("role", user.Role))
	render.JSON(w, r, map[string]string{"token": token})
}
