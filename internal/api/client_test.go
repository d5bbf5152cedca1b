package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdesk/admin-ui/internal/domain/model"
)

type staticTokens struct{ tok string }

func (s staticTokens) Token() (string, bool) { return s.tok, s.tok != "" }

func newTestClient(t *testing.T, handler http.Handler, tokens TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, Tokens: tokens})
	require.NoError(t, err)
	return c
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, code int, env map[string]any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	require.NoError(t, json.NewEncoder(w).Encode(env))
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)

	c, err := NewClient(Config{BaseURL: "http://localhost:3000/api/v1/"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/api/v1", c.baseURL)
}

func TestListCategories_ParsesDataAndMeta(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("per_page"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"status": "success",
			"data": []map[string]any{
				{"id": "1", "name": "ops"},
				{"id": "2", "name": "incidents"},
			},
			"meta": map[string]any{
				"current_page": 2,
				"per_page":     50,
				"total_count":  120,
				"total_pages":  3,
				"next_page":    3,
				"prev_page":    1,
			},
		})
	}), nil)

	items, meta, err := c.ListCategories(context.Background(), model.ListOptions{Page: 2, PerPage: 50})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "ops", items[0].Name)
	assert.False(t, items[0].ID.IsPending())

	require.NotNil(t, meta)
	assert.Equal(t, 120, meta.TotalCount)
	require.NotNil(t, meta.NextPage)
	assert.Equal(t, 3, *meta.NextPage)
}

func TestClient_SendsBearerToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusOK, map[string]any{"status": "success", "data": []any{}})
	}), staticTokens{tok: "tok-123"})

	_, _, err := c.ListCategories(context.Background(), model.ListOptions{})
	require.NoError(t, err)
}

func TestCreateCategory_WrapsBodyInSingularKey(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Contains(t, body, "category")

		writeEnvelope(t, w, http.StatusCreated, map[string]any{
			"status": "success",
			"data":   map[string]any{"id": "42", "name": "ops"},
		})
	}), nil)

	created, err := c.CreateCategory(context.Background(), model.CreateCategoryRequest{Name: "ops"})
	require.NoError(t, err)
	assert.Equal(t, "42", created.ID.String())
}

func TestClient_FieldErrorsResolvedOnce(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(t, w, http.StatusUnprocessableEntity, map[string]any{
			"status":  "error",
			"message": "Validation failed",
			"errors": map[string][]string{
				"name":  {"can't be blank"},
				"email": {"is invalid", "is taken"},
			},
		})
	}), nil)

	_, err := c.CreateCategory(context.Background(), model.CreateCategoryRequest{Name: "x"})
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "Validation failed", apiErr.Message)
	require.NotNil(t, apiErr.Validation)
	assert.Equal(t, KindFieldErrors, apiErr.Validation.Kind)
	assert.Equal(t, []string{
		"email: is invalid",
		"email: is taken",
		"name: can't be blank",
	}, apiErr.Validation.Flatten())
}

func TestClient_MessageListErrors(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(t, w, http.StatusBadRequest, map[string]any{
			"status":  "error",
			"message": "Bad request",
			"errors":  []string{"first problem", "second problem"},
		})
	}), nil)

	_, err := c.CreateCategory(context.Background(), model.CreateCategoryRequest{Name: "x"})
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	require.NotNil(t, apiErr.Validation)
	assert.Equal(t, KindMessages, apiErr.Validation.Kind)
	assert.Equal(t, []string{"first problem", "second problem"}, apiErr.Validation.Flatten())
}

func TestGet_RetriesOnceOnGatewayError(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"status": "success",
			"data":   []map[string]any{{"id": "1", "name": "ops"}},
		})
	}), nil)

	items, _, err := c.ListCategories(context.Background(), model.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGet_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}), nil)

	_, _, err := c.ListCategories(context.Background(), model.ListOptions{})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestMutate_NeverRetries(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}), nil)

	_, err := c.CreateCategory(context.Background(), model.CreateCategoryRequest{Name: "ops"})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	srv.Close()

	_, _, err = c.ListCategories(context.Background(), model.ListOptions{})
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.Status)
	assert.Error(t, apiErr.Cause)
}

func TestLogin_ReturnsUserAndToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		var body map[string]Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "op@example.com", body["user"].Email)

		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"status": "success",
			"data": map[string]any{
				"user":  map[string]any{"id": "u-1", "email": "op@example.com"},
				"token": "tok-abc",
			},
		})
	}), nil)

	res, err := c.Login(context.Background(), Credentials{Email: "op@example.com", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", res.Token)
	assert.Equal(t, "u-1", res.User.ID)
}

func TestDeleteCategory_EscapesID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/categories/a%2Fb", r.URL.EscapedPath())
		writeEnvelope(t, w, http.StatusOK, map[string]any{"status": "success"})
	}), nil)

	require.NoError(t, c.DeleteCategory(context.Background(), "a/b"))
}
