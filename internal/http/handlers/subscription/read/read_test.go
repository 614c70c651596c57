package read_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/gym-membership/internal/http/handlers/subscription/read"
)

type mockGetter struct {
	FindFunc func(ctx context.Context, id primitive.ObjectID) (bson.M, error)
}

func (m *mockGetter) FindSubscriptionByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	return m.FindFunc(ctx, id)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func makeLogger() *slog.Logger {
	return slog.New(discardHandler{})
}

func newReadRequest(id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	req := httptest.NewRequest(http.MethodGet, "/users/"+id, nil)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestReadHandler(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("success", func(t *testing.T) {
		subscriptions := &mockGetter{
			FindFunc: func(_ context.Context, gotID primitive.ObjectID) (bson.M, error) {
				require.Equal(t, id, gotID)
				return bson.M{"_id": id, "plan": "gold", "status": "active"}, nil
			},
		}

		w := httptest.NewRecorder()
		read.New(makeLogger(), subscriptions).ServeHTTP(w, newReadRequest(id.Hex()))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "gold")
	})

	t.Run("missing document returns null", func(t *testing.T) {
		subscriptions := &mockGetter{
			FindFunc: func(_ context.Context, _ primitive.ObjectID) (bson.M, error) {
				return nil, nil
			},
		}

		w := httptest.NewRecorder()
		read.New(makeLogger(), subscriptions).ServeHTTP(w, newReadRequest(id.Hex()))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", strings.TrimSpace(w.Body.String()))
	})

	t.Run("invalid id format", func(t *testing.T) {
		subscriptions := &mockGetter{
			FindFunc: func(_ context.Context, _ primitive.ObjectID) (bson.M, error) {
				t.Fatal("storage must not be called")
				return nil, nil
			},
		}

		w := httptest.NewRecorder()
		read.New(makeLogger(), subscriptions).ServeHTTP(w, newReadRequest("not-an-object-id"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid subscription id"}`, w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		subscriptions := &mockGetter{
			FindFunc: func(_ context.Context, _ primitive.ObjectID) (bson.M, error) {
				return nil, errors.New("connection reset")
			},
		}

		w := httptest.NewRecorder()
		read.New(makeLogger(), subscriptions).ServeHTTP(w, newReadRequest(id.Hex()))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
