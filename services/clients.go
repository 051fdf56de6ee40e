package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"sklyit/database"
	"sklyit/models"
)

const clientColumns = `business_id, client_name, shop_name, domain_name, shop_desc,
	COALESCE(shop_locations, '{}'), COALESCE(addresses, '[]'::jsonb), created_at`

// ClientsService manages business clients (tenants) and implements the
// read model the search service queries.
type ClientsService struct {
	db  database.Querier
	log zerolog.Logger
}

func NewClientsService(db database.Querier, log zerolog.Logger) *ClientsService {
	return &ClientsService{db: db, log: log}
}

// SearchClients runs the filtered, paginated query over business clients
// and returns the page plus the pre-pagination total. Filter groups combine
// with AND; sub-conditions within a group combine with OR. All matching is
// case-insensitive substring matching.
func (s *ClientsService) SearchClients(ctx context.Context, filters models.SearchFilters) ([]models.BusinessClient, int, error) {
	filters.Normalize()

	var conds []string
	var args []any

	if filters.Location != "" {
		args = append(args, "%"+filters.Location+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(`(
			EXISTS (SELECT 1 FROM unnest(COALESCE(shop_locations, '{}')) loc WHERE loc ILIKE $%d)
			OR EXISTS (
				SELECT 1 FROM jsonb_array_elements(COALESCE(addresses, '[]'::jsonb)) addr
				WHERE addr->>'street' ILIKE $%d
				   OR addr->>'city' ILIKE $%d
				   OR addr->>'district' ILIKE $%d
				   OR addr->>'state' ILIKE $%d
				   OR addr->>'pincode' ILIKE $%d
			)
		)`, n, n, n, n, n, n))
	}

	if filters.QueryString != "" {
		args = append(args, "%"+filters.QueryString+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(`(
			client_name ILIKE $%d
			OR shop_name ILIKE $%d
			OR domain_name ILIKE $%d
			OR shop_desc ILIKE $%d
		)`, n, n, n, n))
	}

	whereSQL := ""
	if len(conds) > 0 {
		whereSQL = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM business_clients"+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageSQL := fmt.Sprintf(
		"SELECT %s FROM business_clients%s ORDER BY client_name ASC, business_id ASC LIMIT $%d OFFSET $%d",
		clientColumns, whereSQL, len(args)+1, len(args)+2)
	args = append(args, filters.Limit, (filters.Page-1)*filters.Limit)

	rows, err := s.db.Query(ctx, pageSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	clients := []models.BusinessClient{}
	for rows.Next() {
		var c models.BusinessClient
		if err := rows.Scan(&c.BusinessID, &c.ClientName, &c.ShopName, &c.DomainName,
			&c.ShopDesc, &c.ShopLocations, &c.Addresses, &c.CreatedAt); err != nil {
			return nil, 0, err
		}
		clients = append(clients, c)
	}
	return clients, total, rows.Err()
}

// GetClientByID fetches one business client.
func (s *ClientsService) GetClientByID(ctx context.Context, businessID string) (*models.BusinessClient, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	var c models.BusinessClient
	err := s.db.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM business_clients WHERE business_id = $1", clientColumns),
		businessID,
	).Scan(&c.BusinessID, &c.ClientName, &c.ShopName, &c.DomainName,
		&c.ShopDesc, &c.ShopLocations, &c.Addresses, &c.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, models.NotFound("business client")
	}
	if err != nil {
		return nil, models.Upstream("failed to fetch business client", err)
	}
	return &c, nil
}

// CreateClient registers a new business client.
func (s *ClientsService) CreateClient(ctx context.Context, req models.CreateClientRequest) (*models.BusinessClient, error) {
	c := models.BusinessClient{
		BusinessID:    uuid.NewString(),
		ClientName:    req.ClientName,
		ShopName:      req.ShopName,
		DomainName:    req.DomainName,
		ShopDesc:      req.ShopDesc,
		ShopLocations: req.ShopLocations,
		Addresses:     req.Addresses,
	}
	if c.ShopLocations == nil {
		c.ShopLocations = []string{}
	}
	if c.Addresses == nil {
		c.Addresses = []models.Address{}
	}
	err := s.db.QueryRow(ctx, `
		INSERT INTO business_clients (business_id, client_name, shop_name, domain_name, shop_desc, shop_locations, addresses, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`, c.BusinessID, c.ClientName, c.ShopName, c.DomainName, c.ShopDesc, c.ShopLocations, c.Addresses).Scan(&c.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, models.Conflict("a business client with this domain name already exists")
		}
		return nil, models.Upstream("failed to create business client", err)
	}
	return &c, nil
}

// UpdateClient replaces the mutable fields of a business client.
func (s *ClientsService) UpdateClient(ctx context.Context, businessID string, req models.CreateClientRequest) (*models.BusinessClient, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE business_clients
		SET client_name = $2, shop_name = $3, domain_name = $4, shop_desc = $5,
		    shop_locations = $6, addresses = $7
		WHERE business_id = $1
	`, businessID, req.ClientName, req.ShopName, req.DomainName, req.ShopDesc, req.ShopLocations, req.Addresses)
	if err != nil {
		return nil, models.Upstream("failed to update business client", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, models.NotFound("business client")
	}
	return s.GetClientByID(ctx, businessID)
}

// DeleteClient removes a business client.
func (s *ClientsService) DeleteClient(ctx context.Context, businessID string) error {
	if businessID == "" {
		return models.MissingField("business id")
	}
	tag, err := s.db.Exec(ctx, "DELETE FROM business_clients WHERE business_id = $1", businessID)
	if err != nil {
		return models.Upstream("failed to delete business client", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFound("business client")
	}
	return nil
}
