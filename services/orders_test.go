package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sklyit/models"
)

func newOrdersMock(t *testing.T) (*OrdersService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewOrdersService(mock, zerolog.Nop()), mock
}

func TestGetOrderByIDNotFound(t *testing.T) {
	svc, mock := newOrdersMock(t)

	mock.ExpectQuery("SELECT oid, business_id").
		WithArgs("b1", "missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.GetOrderByID(context.Background(), "b1", "missing")
	assert.Equal(t, models.ErrKindNotFound, models.KindOf(err))
}

func TestGetOrderByIDRequiresIDs(t *testing.T) {
	svc, _ := newOrdersMock(t)

	_, err := svc.GetOrderByID(context.Background(), "", "o1")
	assert.Equal(t, models.ErrKindMissingField, models.KindOf(err))

	_, err = svc.GetOrderByID(context.Background(), "b1", "")
	assert.Equal(t, models.ErrKindMissingField, models.KindOf(err))
}

func TestCreateOrderDefaultsDateAndLists(t *testing.T) {
	svc, mock := newOrdersMock(t)

	mock.ExpectExec("INSERT INTO orders").
		WithArgs(pgxmock.AnyArg(), "b1", "c1", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	order, err := svc.CreateOrder(context.Background(), "b1", models.CreateOrderRequest{
		CustID:   "c1",
		Services: []models.LineItem{{Name: "Haircut", Cost: 20, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, order.Oid)
	assert.WithinDuration(t, time.Now(), order.Odate, time.Minute)
	assert.NotNil(t, order.Products, "absent product list stores as empty, not null")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderKeepsStoredListsWhenNil(t *testing.T) {
	svc, mock := newOrdersMock(t)
	stored := []models.LineItem{{Name: "Haircut", Cost: 20, Quantity: 1}}
	odate := time.Date(2026, time.July, 4, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT oid, business_id").
		WithArgs("b1", "o1").
		WillReturnRows(pgxmock.NewRows([]string{"oid", "business_id", "cust_id", "odate", "services", "products"}).
			AddRow("o1", "b1", "c1", odate, stored, []models.LineItem{}))
	mock.ExpectExec("UPDATE orders").
		WithArgs("b1", "o1", stored, []models.LineItem{{Name: "Shampoo", Cost: 5, Quantity: 2}}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	order, err := svc.UpdateOrder(context.Background(), "b1", "o1", models.UpdateOrderRequest{
		Products: []models.LineItem{{Name: "Shampoo", Cost: 5, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, stored, order.Services, "nil services in the request must keep the stored list")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOrderNotFound(t *testing.T) {
	svc, mock := newOrdersMock(t)

	mock.ExpectExec("DELETE FROM orders").
		WithArgs("b1", "missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := svc.DeleteOrder(context.Background(), "b1", "missing")
	assert.Equal(t, models.ErrKindNotFound, models.KindOf(err))
}
