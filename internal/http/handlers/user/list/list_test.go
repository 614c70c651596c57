package list_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-membership/internal/http/handlers/user/list"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

type mockLister struct {
	ListFunc func(ctx context.Context) ([]models.User, error)
}

func (m *mockLister) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.ListFunc(ctx)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func makeLogger() *slog.Logger {
	return slog.New(discardHandler{})
}

func TestUserListHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		users := &mockLister{
			ListFunc: func(_ context.Context) ([]models.User, error) {
				return []models.User{
					{Email: "admin@gym.com", Role: models.RoleAdmin, PasswordHash: "bcrypt-hash"},
					{Email: "member@gym.com", Role: models.RoleMember, PasswordHash: "bcrypt-hash"},
				}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		w := httptest.NewRecorder()

		list.New(makeLogger(), users).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "admin@gym.com", resp[0]["email"])

		// хэш пароля не должен попадать в ответ
		assert.NotContains(t, w.Body.String(), "bcrypt-hash")
	})

	t.Run("empty store returns empty array", func(t *testing.T) {
		users := &mockLister{
			ListFunc: func(_ context.Context) ([]models.User, error) {
				return []models.User{}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		w := httptest.NewRecorder()

		list.New(makeLogger(), users).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		users := &mockLister{
			ListFunc: func(_ context.Context) ([]models.User, error) {
				return nil, errors.New("connection reset")
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		w := httptest.NewRecorder()

		list.New(makeLogger(), users).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
