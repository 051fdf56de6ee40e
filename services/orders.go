package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"sklyit/database"
	"sklyit/models"
)

const orderColumns = `oid, business_id, cust_id, odate,
	COALESCE(services, '[]'::jsonb), COALESCE(products, '[]'::jsonb)`

// OrdersService manages the order ledger of a business.
type OrdersService struct {
	db  database.Querier
	log zerolog.Logger
}

func NewOrdersService(db database.Querier, log zerolog.Logger) *OrdersService {
	return &OrdersService{db: db, log: log}
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	var o models.Order
	err := row.Scan(&o.Oid, &o.BusinessID, &o.CustID, &o.Odate, &o.Services, &o.Products)
	if err != nil {
		return nil, err
	}
	if o.Services == nil {
		o.Services = []models.LineItem{}
	}
	if o.Products == nil {
		o.Products = []models.LineItem{}
	}
	return &o, nil
}

// GetAllOrders lists every order of a business, newest first.
func (s *OrdersService) GetAllOrders(ctx context.Context, businessID string) ([]models.Order, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	rows, err := s.db.Query(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE business_id = $1 ORDER BY odate DESC", businessID)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("failed to list orders")
		return nil, models.Upstream("failed to list orders", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, models.Upstream("failed to read order row", err)
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// GetOrderByID fetches one order scoped to its business.
func (s *OrdersService) GetOrderByID(ctx context.Context, businessID, oid string) (*models.Order, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	if oid == "" {
		return nil, models.MissingField("order id")
	}
	o, err := scanOrder(s.db.QueryRow(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE business_id = $1 AND oid = $2", businessID, oid))
	if err == pgx.ErrNoRows {
		return nil, models.NotFound("order")
	}
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Str("oid", oid).Msg("failed to fetch order")
		return nil, models.Upstream("failed to fetch order", err)
	}
	return o, nil
}

// CreateOrder inserts a new order; the order date defaults to now.
func (s *OrdersService) CreateOrder(ctx context.Context, businessID string, req models.CreateOrderRequest) (*models.Order, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	odate := time.Now()
	if req.Odate != nil {
		odate = *req.Odate
	}
	o := models.Order{
		Oid:        uuid.NewString(),
		BusinessID: businessID,
		CustID:     req.CustID,
		Odate:      odate,
		Services:   req.Services,
		Products:   req.Products,
	}
	if o.Services == nil {
		o.Services = []models.LineItem{}
	}
	if o.Products == nil {
		o.Products = []models.LineItem{}
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO orders (oid, business_id, cust_id, odate, services, products)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, o.Oid, o.BusinessID, o.CustID, o.Odate, o.Services, o.Products)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("failed to create order")
		return nil, models.Upstream("failed to create order", err)
	}
	return &o, nil
}

// UpdateOrder replaces the line-item lists of an order. Nil lists keep the
// stored value.
func (s *OrdersService) UpdateOrder(ctx context.Context, businessID, oid string, req models.UpdateOrderRequest) (*models.Order, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	if oid == "" {
		return nil, models.MissingField("order id")
	}
	existing, err := s.GetOrderByID(ctx, businessID, oid)
	if err != nil {
		return nil, err
	}
	if req.Services != nil {
		existing.Services = req.Services
	}
	if req.Products != nil {
		existing.Products = req.Products
	}
	_, err = s.db.Exec(ctx, `
		UPDATE orders SET services = $3, products = $4
		WHERE business_id = $1 AND oid = $2
	`, businessID, oid, existing.Services, existing.Products)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Str("oid", oid).Msg("failed to update order")
		return nil, models.Upstream("failed to update order", err)
	}
	return existing, nil
}

// DeleteOrder removes one order of a business.
func (s *OrdersService) DeleteOrder(ctx context.Context, businessID, oid string) error {
	if businessID == "" {
		return models.MissingField("business id")
	}
	if oid == "" {
		return models.MissingField("order id")
	}
	tag, err := s.db.Exec(ctx, "DELETE FROM orders WHERE business_id = $1 AND oid = $2", businessID, oid)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Str("oid", oid).Msg("failed to delete order")
		return models.Upstream("failed to delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFound("order")
	}
	return nil
}
