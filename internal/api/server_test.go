package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/shoptime/internal/db"
	"github.com/vbonduro/shoptime/internal/domain"
	"github.com/vbonduro/shoptime/internal/service"
	"github.com/vbonduro/shoptime/internal/store"
)

// setupTestServer builds an API server over a fresh in-memory database. Each
// created item is one minute newer than the previous one.
func setupTestServer(t *testing.T) (*Server, *store.ItemStore, *sql.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	next := time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC)
	items := store.NewItemStore(d, store.WithClock(func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}))
	svc := service.NewCatalogService(items, 2, slog.Default())
	return NewServer(svc, slog.Default()), items, d
}

func insertTestItem(t *testing.T, items *store.ItemStore, name, price, category string) *domain.Item {
	t.Helper()
	item, err := items.Create(context.Background(), domain.NewItem{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Category: domain.Str(category),
		ImageURL: domain.Str("/img/" + name + ".jpg"),
	})
	require.NoError(t, err)
	return item
}

func doGet(t *testing.T, s *Server, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.ServeHTTP(w, req)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return w, body
}

func decodeItems(t *testing.T, raw json.RawMessage) []itemResponse {
	t.Helper()
	var items []itemResponse
	require.NoError(t, json.Unmarshal(raw, &items))
	return items
}

func TestHandleHealth(t *testing.T) {
	s, _, _ := setupTestServer(t)

	w, body := doGet(t, s, "/api/v1/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"ok"`, string(body["status"]))
}

func TestHandleListItems(t *testing.T) {
	s, items, _ := setupTestServer(t)
	insertTestItem(t, items, "Plaid", "90", "Plaids")
	insertTestItem(t, items, "Scarf", "20.5", "")

	w, body := doGet(t, s, "/api/v1/items")
	require.Equal(t, http.StatusOK, w.Code)

	list := decodeItems(t, body["items"])
	require.Len(t, list, 2)
	assert.Equal(t, "Plaid", list[0].Name)
	assert.Equal(t, "90.00", list[0].Price)
	assert.Equal(t, "Plaids", *list[0].Category)
	assert.Equal(t, "/img/Plaid.jpg", *list[0].ImageURL)
	assert.Equal(t, "20.50", list[1].Price)
	assert.Nil(t, list[1].Category)
}

func TestHandleListItems_Empty(t *testing.T) {
	s, _, _ := setupTestServer(t)

	w, body := doGet(t, s, "/api/v1/items")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(body["items"]))
}

func TestHandleGetItem(t *testing.T) {
	s, items, _ := setupTestServer(t)
	rug := insertTestItem(t, items, "Rug", "120", "Decor")

	w, body := doGet(t, s, "/api/v1/items/1")
	require.Equal(t, http.StatusOK, w.Code)

	var got itemResponse
	require.NoError(t, json.Unmarshal(body["item"], &got))
	assert.Equal(t, rug.ID, got.ID)
	assert.Equal(t, "Rug", got.Name)
	assert.Equal(t, "120.00", got.Price)
	assert.True(t, rug.CreatedAt.Equal(got.CreatedAt))
}

func TestHandleGetItem_NotFound(t *testing.T) {
	s, _, _ := setupTestServer(t)

	for _, path := range []string{"/api/v1/items/999", "/api/v1/items/abc"} {
		w, body := doGet(t, s, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `"item not found"`, string(body["error"]), path)
	}
}

func TestHandleAbout(t *testing.T) {
	s, items, _ := setupTestServer(t)
	insertTestItem(t, items, "Plaid", "90", "Plaids")
	scarf := insertTestItem(t, items, "Scarf", "20", "Accessories")
	softPlaid := insertTestItem(t, items, "Soft plaid", "150", "Plaids")

	w, body := doGet(t, s, "/api/v1/about")
	require.Equal(t, http.StatusOK, w.Code)

	top := decodeItems(t, body["topItems"])
	require.Len(t, top, 2)
	assert.Equal(t, scarf.ID, top[0].ID)
	assert.Equal(t, softPlaid.ID, top[1].ID)
}

func TestHandlers_StorageErrorIsGeneric500(t *testing.T) {
	s, items, d := setupTestServer(t)
	insertTestItem(t, items, "Plaid", "90", "Plaids")
	require.NoError(t, d.Close())

	for _, path := range []string{"/api/v1/items", "/api/v1/items/1", "/api/v1/about"} {
		w, body := doGet(t, s, path)
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.JSONEq(t, `"server error"`, string(body["error"]), path)
		assert.NotContains(t, w.Body.String(), "database is closed", path)
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(recovery(slog.Default()))
	router.GET("/panic", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"server error"}`, w.Body.String())
}
