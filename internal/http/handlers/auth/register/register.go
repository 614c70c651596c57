package register

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/magabrotheeeer/gym-membership/internal/http/response"
	"github.com/magabrotheeeer/gym-membership/internal/lib/password"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// Request — входные данные для регистрации.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UserInserter определяет контракт для вставки записи пользователя.
type UserInserter interface {
	InsertUser(ctx context.Context, user models.User) (*mongo.InsertOneResult, error)
}

type Handler struct {
	log      *slog.Logger
	users    UserInserter
	validate *validator.Validate
}

func New(log *slog.Logger, users UserInserter) *Handler {
	return &Handler{
		log:      log,
		users:    users,
		validate: validator.New(),
	}
}

// ServeHTTP обрабатывает POST /users: хэширует пароль, выставляет роль
// по умолчанию и вставляет запись. Успешный ответ — результат вставки
// из хранилища как есть.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

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
	log.Info("request body decoded", slog.String("email", req.Email))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	passwordHash, err := password.GetHash(req.Password)
	if err != nil {
		log.Error("failed to hash password", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to register user"))
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleMember
	}

	res, err := h.users.InsertUser(r.Context(), models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Role:         role,
	})
	if err != nil {
		log.Error("failed to insert user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to register user"))
		return
	}

	log.Info("user registered", slog.String("email", req.Email), slog.String("role", role))
	render.JSON(w, r, res)
}
