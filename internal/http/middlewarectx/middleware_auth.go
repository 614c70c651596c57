// Package middlewarectx содержит HTTP middleware проверки JWT токенов
// и авторизации по ролям.
//
// JWTMiddleware проверяет наличие и валидность токена в заголовке
// Authorization и кладёт роль и email из claims в контекст запроса.
// Отсутствующий или неправильно оформленный заголовок — HTTP 401,
// невалидная подпись или истёкший токен — HTTP 403.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-membership/internal/http/response"
	"github.com/magabrotheeeer/gym-membership/internal/lib/jwt"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// Role — ключ для роли пользователя в контексте
	Role Key = "role"
	// Email — ключ для email пользователя в контексте
	Email Key = "email"
)

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT
// в заголовке Authorization.
//
// Если токен валиден, добавляет роль и email в контекст запроса.
func JWTMiddleware(jwtMaker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Message("Unauthorized"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := jwtMaker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Message("Forbidden"))
				return
			}

			ctx := context.WithValue(r.Context(), Role, claims.Role)
			ctx = context.WithValue(ctx, Email, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
