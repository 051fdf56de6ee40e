package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"sklyit/database"
	"sklyit/models"
)

// CustomersService manages the customers of a business.
type CustomersService struct {
	db  database.Querier
	log zerolog.Logger
}

func NewCustomersService(db database.Querier, log zerolog.Logger) *CustomersService {
	return &CustomersService{db: db, log: log}
}

// GetAllCustomers lists every customer of a business.
func (s *CustomersService) GetAllCustomers(ctx context.Context, businessID string) ([]models.Customer, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	rows, err := s.db.Query(ctx, `
		SELECT cust_id, business_id, name, email, mobile_no, created_at
		FROM customers
		WHERE business_id = $1
		ORDER BY name ASC
	`, businessID)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("failed to list customers")
		return nil, models.Upstream("failed to list customers", err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.CustID, &c.BusinessID, &c.Name, &c.Email, &c.MobileNo, &c.CreatedAt); err != nil {
			return nil, models.Upstream("failed to read customer row", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// GetCustomerByID fetches one customer scoped to its business.
func (s *CustomersService) GetCustomerByID(ctx context.Context, businessID, custID string) (*models.Customer, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	if custID == "" {
		return nil, models.MissingField("customer id")
	}
	var c models.Customer
	err := s.db.QueryRow(ctx, `
		SELECT cust_id, business_id, name, email, mobile_no, created_at
		FROM customers
		WHERE business_id = $1 AND cust_id = $2
	`, businessID, custID).Scan(&c.CustID, &c.BusinessID, &c.Name, &c.Email, &c.MobileNo, &c.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, models.NotFound("customer")
	}
	if err != nil {
		return nil, models.Upstream("failed to fetch customer", err)
	}
	return &c, nil
}

// CreateCustomer registers a new customer under a business.
func (s *CustomersService) CreateCustomer(ctx context.Context, businessID string, req models.CreateCustomerRequest) (*models.Customer, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	c := models.Customer{
		CustID:     uuid.NewString(),
		BusinessID: businessID,
		Name:       req.Name,
		Email:      req.Email,
		MobileNo:   req.MobileNo,
	}
	err := s.db.QueryRow(ctx, `
		INSERT INTO customers (cust_id, business_id, name, email, mobile_no, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`, c.CustID, c.BusinessID, c.Name, c.Email, c.MobileNo).Scan(&c.CreatedAt)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("failed to create customer")
		return nil, models.Upstream("failed to create customer", err)
	}
	return &c, nil
}

// DeleteCustomer removes one customer of a business.
func (s *CustomersService) DeleteCustomer(ctx context.Context, businessID, custID string) error {
	if businessID == "" {
		return models.MissingField("business id")
	}
	if custID == "" {
		return models.MissingField("customer id")
	}
	tag, err := s.db.Exec(ctx, "DELETE FROM customers WHERE business_id = $1 AND cust_id = $2", businessID, custID)
	if err != nil {
		return models.Upstream("failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFound("customer")
	}
	return nil
}
