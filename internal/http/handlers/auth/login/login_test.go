package login_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-membership/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/gym-membership/internal/lib/jwt"
	"github.com/magabrotheeeer/gym-membership/internal/lib/password"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

type mockUserGetter struct {
	FindFunc func(ctx context.Context, email string) (*models.User, error)
}

func (m *mockUserGetter) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.FindFunc(ctx, email)
}

type failingMaker struct{}

func (failingMaker) GenerateToken(_, _ string) (string, error) {
	return "", errors.New("signing failed")
}

func (failingMaker) ParseToken(_ string) (*jwt.CustomClaims, error) {
	return nil, errors.New("not implemented")
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func makeLogger() *slog.Logger {
	return slog.New(discardHandler{})
}

func newLoginRequest(t *testing.T, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(raw))
}

func TestLoginHandler(t *testing.T) {
	maker := jwt.NewJWTMaker("test_secret_key_1234567890", time.Hour)

	hash, err := password.GetHash("correct-password")
	require.NoError(t, err)

	adminUser := &models.User{
		Email:        "admin@gym.com",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}

	t.Run("success", func(t *testing.T) {
		users := &mockUserGetter{
			FindFunc: func(_ context.Context, email string) (*models.User, error) {
				require.Equal(t, "admin@gym.com", email)
				return adminUser, nil
			},
		}

		req := newLoginRequest(t, map[string]string{
			"email":    "admin@gym.com",
			"password": "correct-password",
		})
		w := httptest.NewRecorder()

		login.New(makeLogger(), users, maker).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		claims, err := maker.ParseToken(resp["token"])
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, claims.Role)
		assert.Equal(t, "admin@gym.com", claims.Email)
	})

	t.Run("unknown email", func(t *testing.T) {
		users := &mockUserGetter{
			FindFunc: func(_ context.Context, _ string) (*models.User, error) {
				return nil, errors.New("user not found")
			},
		}

		req := newLoginRequest(t, map[string]string{
			"email":    "nobody@gym.com",
			"password": "whatever",
		})
		w := httptest.NewRecorder()

		login.New(makeLogger(), users, maker).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Invalid credentials"}`, w.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		users := &mockUserGetter{
			FindFunc: func(_ context.Context, _ string) (*models.User, error) {
				return adminUser, nil
			},
		}

		req := newLoginRequest(t, map[string]string{
			"email":    "admin@gym.com",
			"password": "wrong-password",
		})
		w := httptest.NewRecorder()

		login.New(makeLogger(), users, maker).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Invalid credentials"}`, w.Body.String())
	})

	t.Run("missing email", func(t *testing.T) {
		users := &mockUserGetter{
			FindFunc: func(_ context.Context, _ string) (*models.User, error) {
				t.Fatal("storage must not be called")
				return nil, nil
			},
		}

		req := newLoginRequest(t, map[string]string{"password": "whatever"})
		w := httptest.NewRecorder()

		login.New(makeLogger(), users, maker).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("token signing failure surfaces as 500", func(t *testing.T) {
		users := &mockUserGetter{
			FindFunc: func(_ context.Context, _ string) (*models.User, error) {
				return adminUser, nil
			},
		}

		req := newLoginRequest(t, map[string]string{
			"email":    "admin@gym.com",
			"password": "correct-password",
		})
		w := httptest.NewRecorder()

		login.New(makeLogger(), users, failingMaker{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "failed to generate token")
	})
}
