package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sklyit/cache"
	"sklyit/models"
	"sklyit/services"
)

type stubSearcher struct {
	calls int
}

func (s *stubSearcher) SearchClients(ctx context.Context, filters models.SearchFilters) ([]models.BusinessClient, int, error) {
	s.calls++
	return []models.BusinessClient{{BusinessID: "b1", ClientName: "Acme Salon"}}, 1, nil
}

type stubHistory struct{ calls int }

func (s *stubHistory) AddSearchHistory(ctx context.Context, userID, queryText, location string) error {
	s.calls++
	return nil
}

func newSearchApp(t *testing.T) (*fiber.App, *stubSearcher) {
	t.Helper()
	searcher := &stubSearcher{}
	svc := services.NewSearchService(searcher, cache.NewMemory(), &stubHistory{}, 5*time.Minute, zerolog.Nop())
	h := NewSearchHandler(svc, nil)

	app := fiber.New()
	app.Get("/search/businesses", h.HandleSearchBusinesses)
	app.Delete("/search/cache", h.HandleClearSearchCache)
	return app, searcher
}

func TestSearchBusinessesEnvelope(t *testing.T) {
	app, _ := newSearchApp(t)

	req := httptest.NewRequest("GET", "/search/businesses?queryString=salon&page=2&limit=5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["page"])
	assert.Equal(t, float64(5), body["limit"])
	assert.Equal(t, float64(1), body["total"])
	assert.NotNil(t, body["data"])
	assert.NotNil(t, body["pagination"])
}

func TestSearchBusinessesServedFromCache(t *testing.T) {
	app, searcher := newSearchApp(t)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/search/businesses?queryString=salon", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	assert.Equal(t, 1, searcher.calls)
}

func TestClearSearchCache(t *testing.T) {
	app, searcher := newSearchApp(t)

	first := httptest.NewRequest("GET", "/search/businesses?queryString=salon", nil)
	_, err := app.Test(first)
	require.NoError(t, err)

	clear := httptest.NewRequest("DELETE", "/search/cache", nil)
	resp, err := app.Test(clear)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	again := httptest.NewRequest("GET", "/search/businesses?queryString=salon", nil)
	_, err = app.Test(again)
	require.NoError(t, err)

	assert.Equal(t, 2, searcher.calls)
}
