package models

import "time"

// Report shapes returned by the order analytics endpoints.

type ServiceCount struct {
	Service string `json:"service"`
	Count   int    `json:"count"`
}

type ServiceRevenue struct {
	Service string  `json:"service"`
	Cost    float64 `json:"cost"`
}

type CustomerSpend struct {
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customername"`
	TotalCost    float64 `json:"totalCost"`
}

type CustomerVisits struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customername"`
	TotalCount   int    `json:"totalcount"`
}

type WeeklyCustomers struct {
	WeekStart     time.Time `json:"weekStart"`
	CustomerCount int       `json:"customerCount"`
}

type MonthlyCustomers struct {
	MonthStart    time.Time `json:"monthStart"`
	CustomerCount int       `json:"customerCount"`
}

// MonthlyComparison is a best-effort report: each field independently
// defaults to zero when its underlying query fails.
type MonthlyComparison struct {
	TotalCustomers int     `json:"totalCustomers"`
	NewCustomers   int     `json:"newCustomers"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

type RetentionReport struct {
	RetentionRate float64 `json:"retentionRate"`
	ChurnRate     float64 `json:"churnRate"`
}

// CustomerTypeRevenue splits revenue between customers created within the
// trailing 30 days ("new") and everyone else ("old").
type CustomerTypeRevenue struct {
	NewCustomerRevenue           float64 `json:"newCustomerRevenue"`
	OldCustomerRevenue           float64 `json:"oldCustomerRevenue"`
	NewCustomerRevenuePercentage float64 `json:"newCustomerRevenuePercentage"`
	OldCustomerRevenuePercentage float64 `json:"oldCustomerRevenuePercentage"`
}

type PastService struct {
	Service string    `json:"service"`
	Date    time.Time `json:"date"`
}

// ItemSold is one service or product line sold during a day, stamped with
// the order time it belongs to.
type ItemSold struct {
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

type HourlyOrders struct {
	Hour   int `json:"hour"`
	Orders int `json:"orders"`
}

// DailyPerformance is the day-in-review report: what sold, who came, what
// it earned and when the counter was busiest. Like MonthlyComparison each
// section defaults to empty/zero when its underlying query fails.
type DailyPerformance struct {
	ServicesSold   []ItemSold     `json:"servicesSold"`
	ProductsSold   []ItemSold     `json:"productsSold"`
	TotalCustomers int            `json:"totalCustomers"`
	NewCustomers   int            `json:"newCustomers"`
	TotalRevenue   float64        `json:"totalRevenue"`
	BusyHours      []HourlyOrders `json:"busyHours"`
}

// BusinessTotals is the whole-ledger headline: distinct customers served
// and revenue earned since the first order.
type BusinessTotals struct {
	CustomerCount int     `json:"customerCount"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// BusinessInsights is the AI-generated commentary over the monthly series.
type BusinessInsights struct {
	GeneratedAt     time.Time `json:"generated_at"`
	Summary         string    `json:"summary"`
	PositiveFactors []string  `json:"positive_factors"`
	NegativeFactors []string  `json:"negative_factors"`
}
