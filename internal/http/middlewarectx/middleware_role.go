package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-membership/internal/http/response"
)

// RequireRole возвращает middleware, который пропускает запрос, только
// если роль из контекста входит в набор разрешённых ролей.
//
// Проверка — вхождение во множество, а не сравнение с единственным
// значением: маршрут может разрешать сразу несколько ролей.
// Middleware должен стоять после JWTMiddleware: без роли в контексте
// запрос отклоняется как неаутентифицированный.
func RequireRole(log *slog.Logger, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireRole"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			role, ok := r.Context().Value(Role).(string)
			if !ok || role == "" {
				log.Error("role claim missing from context")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Message("Unauthorized"))
				return
			}

			if _, ok := allowed[role]; !ok {
				log.Error("insufficient permissions", slog.String("role", role))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Message("Access denied: Insufficient permissions"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
