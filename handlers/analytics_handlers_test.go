package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sklyit/services"
)

func newAnalyticsApp(t *testing.T) (*fiber.App, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	h := NewAnalyticsHandler(services.NewAnalyticsService(mock, zerolog.Nop()), nil)
	app := fiber.New()
	app.Get("/bs/:business_id/analytics/customers/spending", h.HandleCustomersBySpending)
	app.Get("/bs/:business_id/analytics/customers/spending/range", h.HandleTopCustomersByRange)
	app.Get("/bs/:business_id/analytics/revenue", h.HandleTotalRevenue)
	app.Get("/bs/:business_id/analytics/totals", h.HandleBusinessTotals)
	return app, mock
}

func TestCustomersBySpendingDefaultsToTopSix(t *testing.T) {
	app, mock := newAnalyticsApp(t)

	mock.ExpectQuery(`SELECT o.cust_id, c.name, SUM`).
		WithArgs("b1", 6).
		WillReturnRows(pgxmock.NewRows([]string{"cust_id", "name", "total"}))

	req := httptest.NewRequest("GET", "/bs/b1/analytics/customers/spending", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomersBySpendingBottomDefaultsToThree(t *testing.T) {
	app, mock := newAnalyticsApp(t)

	mock.ExpectQuery(`SELECT o.cust_id, c.name, SUM`).
		WithArgs("b1", 3).
		WillReturnRows(pgxmock.NewRows([]string{"cust_id", "name", "total"}))

	req := httptest.NewRequest("GET", "/bs/b1/analytics/customers/spending?order=asc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomersBySpendingExplicitLimitWins(t *testing.T) {
	app, mock := newAnalyticsApp(t)

	mock.ExpectQuery(`SELECT o.cust_id, c.name, SUM`).
		WithArgs("b1", 2).
		WillReturnRows(pgxmock.NewRows([]string{"cust_id", "name", "total"}))

	req := httptest.NewRequest("GET", "/bs/b1/analytics/customers/spending?limit=2", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopCustomersByRangeRequiresDates(t *testing.T) {
	app, _ := newAnalyticsApp(t)

	req := httptest.NewRequest("GET", "/bs/b1/analytics/customers/spending/range", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTotalRevenueInRangeEnvelope(t *testing.T) {
	app, mock := newAnalyticsApp(t)

	mock.ExpectQuery(`SELECT COALESCE\(SUM`).
		WithArgs("b1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"total_revenue"}).AddRow(99.5))

	req := httptest.NewRequest("GET", "/bs/b1/analytics/revenue?from=2026-03-01&to=2026-03-31", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 99.5, data["totalRevenue"])
}

func TestBusinessTotalsEnvelope(t *testing.T) {
	app, mock := newAnalyticsApp(t)

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT o.cust_id\) AS customer_count`).
		WithArgs("b1").
		WillReturnRows(pgxmock.NewRows([]string{"customer_count", "total_revenue"}).AddRow(3, 120.0))

	req := httptest.NewRequest("GET", "/bs/b1/analytics/totals", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), data["customerCount"])
}
