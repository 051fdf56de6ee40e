package services

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sklyit/models"
)

func newClientsMock(t *testing.T) (*ClientsService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewClientsService(mock, zerolog.Nop()), mock
}

func clientRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"business_id", "client_name", "shop_name", "domain_name", "shop_desc",
		"shop_locations", "addresses", "created_at",
	}).AddRow("b1", "Acme Salon", "Acme", "acme.example", "hair and spa",
		[]string{"Pune"}, []models.Address{{City: "Pune", State: "MH"}}, time.Now())
}

func TestSearchClientsNoFilters(t *testing.T) {
	svc, mock := newClientsMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM business_clients`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("ORDER BY client_name ASC, business_id ASC").
		WithArgs(10, 0).
		WillReturnRows(clientRows())

	clients, total, err := svc.SearchClients(context.Background(), models.SearchFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, clients, 1)
	assert.Equal(t, "Acme Salon", clients[0].ClientName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchClientsCombinesFiltersWithAnd(t *testing.T) {
	svc, mock := newClientsMock(t)

	// One placeholder per filter group; both groups must be present.
	mock.ExpectQuery(`unnest.+ILIKE`).
		WithArgs("%Pune%", "%salon%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("ORDER BY client_name ASC").
		WithArgs("%Pune%", "%salon%", 10, 10).
		WillReturnRows(pgxmock.NewRows([]string{
			"business_id", "client_name", "shop_name", "domain_name", "shop_desc",
			"shop_locations", "addresses", "created_at",
		}))

	clients, total, err := svc.SearchClients(context.Background(), models.SearchFilters{
		QueryString: "salon",
		Location:    "Pune",
		Page:        2,
		Limit:       10,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, clients)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClientDuplicateDomain(t *testing.T) {
	svc, mock := newClientsMock(t)

	mock.ExpectQuery("INSERT INTO business_clients").
		WithArgs(pgxmock.AnyArg(), "Acme Salon", "Acme", "acme.example", "", []string{}, []models.Address{}).
		WillReturnError(assert.AnError)

	_, err := svc.CreateClient(context.Background(), models.CreateClientRequest{
		ClientName: "Acme Salon",
		ShopName:   "Acme",
		DomainName: "acme.example",
	})
	assert.Equal(t, models.ErrKindUpstream, models.KindOf(err))
}

func TestUpdateClientNotFound(t *testing.T) {
	svc, mock := newClientsMock(t)

	mock.ExpectExec("UPDATE business_clients").
		WithArgs("missing", "A", "B", "C", "D", []string(nil), []models.Address(nil)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	_, err := svc.UpdateClient(context.Background(), "missing", models.CreateClientRequest{
		ClientName: "A", ShopName: "B", DomainName: "C", ShopDesc: "D",
	})
	assert.Equal(t, models.ErrKindNotFound, models.KindOf(err))
}
