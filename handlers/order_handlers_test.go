package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sklyit/services"
)

func newOrderApp(t *testing.T) (*fiber.App, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	h := NewOrderHandler(services.NewOrdersService(mock, zerolog.Nop()))
	app := fiber.New()
	app.Get("/bs/:business_id/orders/:oid", h.HandleGetOrder)
	app.Post("/bs/:business_id/orders", h.HandleCreateOrder)
	app.Delete("/bs/:business_id/orders/:oid", h.HandleDeleteOrder)
	return app, mock
}

func TestCreateOrderRejectsInvalidBody(t *testing.T) {
	app, _ := newOrderApp(t)

	req := httptest.NewRequest("POST", "/bs/b1/orders", strings.NewReader(`{"services":[{"name":"","cost":-1}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["errors"])
}

func TestCreateOrderSuccess(t *testing.T) {
	app, mock := newOrderApp(t)

	mock.ExpectExec("INSERT INTO orders").
		WithArgs(pgxmock.AnyArg(), "b1", "c1", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	req := httptest.NewRequest("POST", "/bs/b1/orders",
		strings.NewReader(`{"custid":"c1","services":[{"name":"Haircut","cost":20,"quantity":1}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrderNotFoundMapsTo404(t *testing.T) {
	app, mock := newOrderApp(t)

	mock.ExpectQuery("SELECT oid, business_id").
		WithArgs("b1", "missing").
		WillReturnError(pgx.ErrNoRows)

	req := httptest.NewRequest("GET", "/bs/b1/orders/missing", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteOrderSuccess(t *testing.T) {
	app, mock := newOrderApp(t)

	mock.ExpectExec("DELETE FROM orders").
		WithArgs("b1", "o1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	req := httptest.NewRequest("DELETE", "/bs/b1/orders/o1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
