package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"sklyit/database"
	"sklyit/models"
	"sklyit/storage"
)

// CatalogService manages the offered services and stocked products of a
// business, including their uploaded images.
type CatalogService struct {
	db   database.Querier
	blob storage.BlobStore
	log  zerolog.Logger
}

func NewCatalogService(db database.Querier, blob storage.BlobStore, log zerolog.Logger) *CatalogService {
	return &CatalogService{db: db, blob: blob, log: log}
}

// uploadImage stores an optional image and returns its URL; a nil blob
// store means uploads are disabled.
func (s *CatalogService) uploadImage(ctx context.Context, filename string, data []byte) (*string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if s.blob == nil {
		return nil, models.Upstream("image uploads are not configured", nil)
	}
	url, err := s.blob.Upload(ctx, filename, data)
	if err != nil {
		s.log.Error().Err(err).Msg("image upload failed")
		return nil, models.Upstream("failed to upload image", err)
	}
	return &url, nil
}

// --- Services catalog ---

// GetServices lists the services of a business. activeOnly restricts the
// list to flag 0 entries.
func (s *CatalogService) GetServices(ctx context.Context, businessID string, activeOnly bool) ([]models.CatalogService, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	query := `
		SELECT sid, business_id, name, descr, image_url, price, flag, created_at
		FROM catalog_services
		WHERE business_id = $1
	`
	if activeOnly {
		query += " AND flag = 0"
	}
	query += " ORDER BY name ASC"

	rows, err := s.db.Query(ctx, query, businessID)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("failed to list services")
		return nil, models.Upstream("failed to list services", err)
	}
	defer rows.Close()

	out := []models.CatalogService{}
	for rows.Next() {
		var cs models.CatalogService
		if err := rows.Scan(&cs.Sid, &cs.BusinessID, &cs.Name, &cs.Desc, &cs.ImageURL, &cs.Price, &cs.Flag, &cs.CreatedAt); err != nil {
			return nil, models.Upstream("failed to read service row", err)
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}

// GetServiceByID fetches one catalog service.
func (s *CatalogService) GetServiceByID(ctx context.Context, businessID, sid string) (*models.CatalogService, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	if sid == "" {
		return nil, models.MissingField("service id")
	}
	var cs models.CatalogService
	err := s.db.QueryRow(ctx, `
		SELECT sid, business_id, name, descr, image_url, price, flag, created_at
		FROM catalog_services
		WHERE business_id = $1 AND sid = $2
	`, businessID, sid).Scan(&cs.Sid, &cs.BusinessID, &cs.Name, &cs.Desc, &cs.ImageURL, &cs.Price, &cs.Flag, &cs.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, models.NotFound("service")
	}
	if err != nil {
		return nil, models.Upstream("failed to fetch service", err)
	}
	return &cs, nil
}

// CreateService adds a service to the catalog, optionally with an image.
func (s *CatalogService) CreateService(ctx context.Context, businessID string, req models.CreateCatalogServiceRequest, imageName string, imageData []byte) (*models.CatalogService, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	imageURL, err := s.uploadImage(ctx, imageName, imageData)
	if err != nil {
		return nil, err
	}
	cs := models.CatalogService{
		Sid:        uuid.NewString(),
		BusinessID: businessID,
		Name:       req.Name,
		Desc:       req.Desc,
		ImageURL:   imageURL,
		Price:      req.Price,
	}
	err = s.db.QueryRow(ctx, `
		INSERT INTO catalog_services (sid, business_id, name, descr, image_url, price, flag, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, NOW())
		RETURNING created_at
	`, cs.Sid, cs.BusinessID, cs.Name, cs.Desc, cs.ImageURL, cs.Price).Scan(&cs.CreatedAt)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("failed to create service")
		return nil, models.Upstream("failed to create service", err)
	}
	return &cs, nil
}

// UpdateService replaces the mutable fields of a catalog service.
func (s *CatalogService) UpdateService(ctx context.Context, businessID, sid string, req models.CreateCatalogServiceRequest) (*models.CatalogService, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	if sid == "" {
		return nil, models.MissingField("service id")
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE catalog_services SET name = $3, descr = $4, price = $5
		WHERE business_id = $1 AND sid = $2
	`, businessID, sid, req.Name, req.Desc, req.Price)
	if err != nil {
		return nil, models.Upstream("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, models.NotFound("service")
	}
	return s.GetServiceByID(ctx, businessID, sid)
}

// FlagService bumps the archive flag of a service.
func (s *CatalogService) FlagService(ctx context.Context, businessID, sid string) error {
	if businessID == "" {
		return models.MissingField("business id")
	}
	if sid == "" {
		return models.MissingField("service id")
	}
	tag, err := s.db.Exec(ctx,
		"UPDATE catalog_services SET flag = flag + 1 WHERE business_id = $1 AND sid = $2", businessID, sid)
	if err != nil {
		return models.Upstream("failed to flag service", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFound("service")
	}
	return nil
}

// DeleteService removes a service from the catalog.
func (s *CatalogService) DeleteService(ctx context.Context, businessID, sid string) error {
	if businessID == "" {
		return models.MissingField("business id")
	}
	if sid == "" {
		return models.MissingField("service id")
	}
	tag, err := s.db.Exec(ctx, "DELETE FROM catalog_services WHERE business_id = $1 AND sid = $2", businessID, sid)
	if err != nil {
		return models.Upstream("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFound("service")
	}
	return nil
}

// --- Products catalog ---

// GetProducts lists the products of a business. activeOnly restricts the
// list to flag 0 entries.
func (s *CatalogService) GetProducts(ctx context.Context, businessID string, activeOnly bool) ([]models.CatalogProduct, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	query := `
		SELECT pid, business_id, name, descr, image_url, price, qty, units, flag, created_at
		FROM catalog_products
		WHERE business_id = $1
	`
	if activeOnly {
		query += " AND flag = 0"
	}
	query += " ORDER BY name ASC"

	rows, err := s.db.Query(ctx, query, businessID)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("failed to list products")
		return nil, models.Upstream("failed to list products", err)
	}
	defer rows.Close()

	out := []models.CatalogProduct{}
	for rows.Next() {
		var cp models.CatalogProduct
		if err := rows.Scan(&cp.Pid, &cp.BusinessID, &cp.Name, &cp.Desc, &cp.ImageURL, &cp.Price, &cp.Qty, &cp.Units, &cp.Flag, &cp.CreatedAt); err != nil {
			return nil, models.Upstream("failed to read product row", err)
		}
		out = append(out, cp)
	}
	return out, rows.Err()
}

// CreateProduct adds a product to the catalog, optionally with an image.
func (s *CatalogService) CreateProduct(ctx context.Context, businessID string, req models.CreateCatalogProductRequest, imageName string, imageData []byte) (*models.CatalogProduct, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	imageURL, err := s.uploadImage(ctx, imageName, imageData)
	if err != nil {
		return nil, err
	}
	cp := models.CatalogProduct{
		Pid:        uuid.NewString(),
		BusinessID: businessID,
		Name:       req.Name,
		Desc:       req.Desc,
		ImageURL:   imageURL,
		Price:      req.Price,
		Qty:        req.Qty,
		Units:      req.Units,
	}
	err = s.db.QueryRow(ctx, `
		INSERT INTO catalog_products (pid, business_id, name, descr, image_url, price, qty, units, flag, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, NOW())
		RETURNING created_at
	`, cp.Pid, cp.BusinessID, cp.Name, cp.Desc, cp.ImageURL, cp.Price, cp.Qty, cp.Units).Scan(&cp.CreatedAt)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("failed to create product")
		return nil, models.Upstream("failed to create product", err)
	}
	return &cp, nil
}

// UpdateProduct replaces the mutable fields of a catalog product.
func (s *CatalogService) UpdateProduct(ctx context.Context, businessID, pid string, req models.CreateCatalogProductRequest) (*models.CatalogProduct, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	if pid == "" {
		return nil, models.MissingField("product id")
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE catalog_products SET name = $3, descr = $4, price = $5, qty = $6, units = $7
		WHERE business_id = $1 AND pid = $2
	`, businessID, pid, req.Name, req.Desc, req.Price, req.Qty, req.Units)
	if err != nil {
		return nil, models.Upstream("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, models.NotFound("product")
	}
	var cp models.CatalogProduct
	err = s.db.QueryRow(ctx, `
		SELECT pid, business_id, name, descr, image_url, price, qty, units, flag, created_at
		FROM catalog_products
		WHERE business_id = $1 AND pid = $2
	`, businessID, pid).Scan(&cp.Pid, &cp.BusinessID, &cp.Name, &cp.Desc, &cp.ImageURL, &cp.Price, &cp.Qty, &cp.Units, &cp.Flag, &cp.CreatedAt)
	if err != nil {
		return nil, models.Upstream("failed to fetch product", err)
	}
	return &cp, nil
}

// FlagProduct bumps the archive flag of a product.
func (s *CatalogService) FlagProduct(ctx context.Context, businessID, pid string) error {
	if businessID == "" {
		return models.MissingField("business id")
	}
	if pid == "" {
		return models.MissingField("product id")
	}
	tag, err := s.db.Exec(ctx,
		"UPDATE catalog_products SET flag = flag + 1 WHERE business_id = $1 AND pid = $2", businessID, pid)
	if err != nil {
		return models.Upstream("failed to flag product", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFound("product")
	}
	return nil
}

// DeleteProduct removes a product from the catalog.
func (s *CatalogService) DeleteProduct(ctx context.Context, businessID, pid string) error {
	if businessID == "" {
		return models.MissingField("business id")
	}
	if pid == "" {
		return models.MissingField("product id")
	}
	tag, err := s.db.Exec(ctx, "DELETE FROM catalog_products WHERE business_id = $1 AND pid = $2", businessID, pid)
	if err != nil {
		return models.Upstream("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return models.NotFound("product")
	}
	return nil
}
