package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// --- Core Models ---

// LineItem is an embedded record of a named service or product attached to
// an order. Cost is the unit cost.
type LineItem struct {
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Quantity float64 `json:"quantity"`
}

// Order is a single ledger entry owned by one business and one customer.
// Line items are stored as embedded jsonb, not normalized rows.
type Order struct {
	Oid        string     `json:"oid"`
	BusinessID string     `json:"business_id"`
	CustID     string     `json:"cust_id"`
	Odate      time.Time  `json:"odate"`
	Services   []LineItem `json:"services"`
	Products   []LineItem `json:"products"`
}

// Customer belongs to exactly one business. CreatedAt classifies the
// customer as "new" or "old" relative to a 30-day threshold.
type Customer struct {
	CustID     string    `json:"cust_id"`
	BusinessID string    `json:"business_id"`
	Name       string    `json:"name"`
	Email      *string   `json:"email,omitempty"`
	MobileNo   *string   `json:"mobile_no,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Address is a structured shop address; search matches every field.
type Address struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	District string `json:"district"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// BusinessClient is a tenant: the owning entity for orders, services,
// products and posts.
type BusinessClient struct {
	BusinessID    string    `json:"business_id"`
	ClientName    string    `json:"client_name"`
	ShopName      string    `json:"shop_name"`
	DomainName    string    `json:"domain_name"`
	ShopDesc      string    `json:"shop_desc"`
	ShopLocations []string  `json:"shop_locations"`
	Addresses     []Address `json:"addresses"`
	CreatedAt     time.Time `json:"created_at"`
}

// CatalogService is an offered service of a business. Flag 0 means active;
// each flag bump archives it one step further.
type CatalogService struct {
	Sid        string    `json:"sid"`
	BusinessID string    `json:"business_id"`
	Name       string    `json:"name"`
	Desc       *string   `json:"desc,omitempty"`
	ImageURL   *string   `json:"image_url,omitempty"`
	Price      float64   `json:"price"`
	Flag       int       `json:"flag"`
	CreatedAt  time.Time `json:"created_at"`
}

// CatalogProduct is a stocked product of a business.
type CatalogProduct struct {
	Pid        string    `json:"pid"`
	BusinessID string    `json:"business_id"`
	Name       string    `json:"name"`
	Desc       *string   `json:"desc,omitempty"`
	ImageURL   *string   `json:"image_url,omitempty"`
	Price      float64   `json:"price"`
	Qty        float64   `json:"qty"`
	Units      string    `json:"units"`
	Flag       int       `json:"flag"`
	CreatedAt  time.Time `json:"created_at"`
}

// --- Search ---

// SearchFilters is the transient search input; it is never persisted and is
// used only to derive a cache key and a query shape.
type SearchFilters struct {
	QueryString string `json:"queryString" query:"queryString"`
	Location    string `json:"location" query:"location"`
	Page        int    `json:"page" query:"page"`
	Limit       int    `json:"limit" query:"limit"`
}

// Normalize clamps page and limit to their defaults (1, 10).
func (f *SearchFilters) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
}

// CacheKey serializes the filters in a fixed field order so that identical
// filters always map to the same key regardless of call origin.
func (f SearchFilters) CacheKey() string {
	return fmt.Sprintf("searchBusinesses:q=%s|loc=%s|page=%d|limit=%d",
		f.QueryString, f.Location, f.Page, f.Limit)
}

// SearchHistoryEntry is one recorded search of a user.
type SearchHistoryEntry struct {
	QueryText  string    `json:"query_text"`
	Location   string    `json:"location"`
	SearchedAt time.Time `json:"searched_at"`
}

// SearchResult is one page of matching business clients. Data is never nil
// in well-formed output.
type SearchResult struct {
	Data  []BusinessClient `json:"data"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}
