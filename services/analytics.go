package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"sklyit/database"
	"sklyit/models"
)

// Window selects the trailing time range of a service-ranking query.
type Window string

const (
	WindowWeek  Window = "week"  // trailing 7 days
	WindowMonth Window = "month" // trailing 30 days
	WindowYear  Window = "year"  // current calendar year
)

// ParseWindow maps a query-parameter value to a Window, defaulting to the
// trailing 30 days.
func ParseWindow(s string) Window {
	switch Window(s) {
	case WindowWeek, WindowYear:
		return Window(s)
	default:
		return WindowMonth
	}
}

func (w Window) sqlExpr() string {
	switch w {
	case WindowWeek:
		return "NOW() - INTERVAL '7 days'"
	case WindowYear:
		return "date_trunc('year', NOW())"
	default:
		return "NOW() - INTERVAL '30 days'"
	}
}

// lineItemsRevenueExpr computes the monetary value of one jsonb line-item
// list: sum of unit cost times quantity, missing values treated as zero.
func lineItemsRevenueExpr(column string) string {
	return fmt.Sprintf(`(
		SELECT COALESCE(SUM(COALESCE((e->>'cost')::NUMERIC, 0) * COALESCE((e->>'quantity')::NUMERIC, 0)), 0)
		FROM jsonb_array_elements(COALESCE(o.%s, '[]'::jsonb)) e
	)`, column)
}

// orderRevenueExpr is the common cost formula: service line items plus
// product line items of one order. Every aggregation uses this expression.
func orderRevenueExpr() string {
	return "(" + lineItemsRevenueExpr("services") + " + " + lineItemsRevenueExpr("products") + ")"
}

// AnalyticsService runs the read-only aggregation queries over the order
// ledger of one business.
type AnalyticsService struct {
	db  database.Querier
	log zerolog.Logger
}

func NewAnalyticsService(db database.Querier, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{db: db, log: log}
}

// TopServicesByCount ranks service names by how often they appear as order
// line items inside the window. Ties break on name ascending. asc=true
// returns the least-booked services instead.
func (s *AnalyticsService) TopServicesByCount(ctx context.Context, businessID string, window Window, asc bool) ([]models.ServiceCount, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	dir := "DESC"
	if asc {
		dir = "ASC"
	}
	query := fmt.Sprintf(`
		SELECT service, COUNT(*) AS service_count
		FROM (
			SELECT jsonb_array_elements(COALESCE(o.services, '[]'::jsonb))->>'name' AS service
			FROM orders o
			WHERE o.business_id = $1 AND o.odate >= %s
		) sub
		GROUP BY service
		ORDER BY service_count %s, service ASC
		LIMIT 3
	`, window.sqlExpr(), dir)

	rows, err := s.db.Query(ctx, query, businessID)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("service frequency query failed")
		return nil, models.Upstream("failed to rank services by frequency", err)
	}
	defer rows.Close()

	out := []models.ServiceCount{}
	for rows.Next() {
		var sc models.ServiceCount
		if err := rows.Scan(&sc.Service, &sc.Count); err != nil {
			return nil, models.Upstream("failed to read service frequency row", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// TopServicesByRevenue ranks service names by summed cost*quantity inside
// the window, highest first. Ties break on name ascending.
func (s *AnalyticsService) TopServicesByRevenue(ctx context.Context, businessID string, window Window) ([]models.ServiceRevenue, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	query := fmt.Sprintf(`
		SELECT service, SUM(cost * quantity) AS total_cost
		FROM (
			SELECT elem->>'name' AS service,
			       COALESCE((elem->>'cost')::NUMERIC, 0) AS cost,
			       COALESCE((elem->>'quantity')::NUMERIC, 0) AS quantity
			FROM orders o, jsonb_array_elements(COALESCE(o.services, '[]'::jsonb)) elem
			WHERE o.business_id = $1 AND o.odate >= %s
		) sub
		GROUP BY service
		ORDER BY total_cost DESC, service ASC
		LIMIT 3
	`, window.sqlExpr())

	rows, err := s.db.Query(ctx, query, businessID)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("service revenue query failed")
		return nil, models.Upstream("failed to rank services by revenue", err)
	}
	defer rows.Close()

	out := []models.ServiceRevenue{}
	for rows.Next() {
		var sr models.ServiceRevenue
		if err := rows.Scan(&sr.Service, &sr.Cost); err != nil {
			return nil, models.Upstream("failed to read service revenue row", err)
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

// CustomersBySpending ranks customers by their total spend over the
// trailing month using the common cost formula. limit controls how many
// rows return (top 6 / bottom 3 in the dashboards).
func (s *AnalyticsService) CustomersBySpending(ctx context.Context, businessID string, limit int, asc bool) ([]models.CustomerSpend, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	dir := "DESC"
	if asc {
		dir = "ASC"
	}
	query := fmt.Sprintf(`
		SELECT o.cust_id, c.name, SUM(%s) AS total
		FROM orders o
		JOIN customers c ON o.cust_id = c.cust_id
		WHERE o.business_id = $1 AND o.odate >= NOW() - INTERVAL '1 month'
		GROUP BY o.cust_id, c.name
		ORDER BY total %s, c.name ASC
		LIMIT $2
	`, orderRevenueExpr(), dir)

	rows, err := s.db.Query(ctx, query, businessID, limit)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("customer spending query failed")
		return nil, models.Upstream("failed to rank customers by spending", err)
	}
	defer rows.Close()

	out := []models.CustomerSpend{}
	for rows.Next() {
		var cs models.CustomerSpend
		if err := rows.Scan(&cs.CustomerID, &cs.CustomerName, &cs.TotalCost); err != nil {
			return nil, models.Upstream("failed to read customer spending row", err)
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}

// CustomersByVisits ranks customers by order count over the trailing month.
func (s *AnalyticsService) CustomersByVisits(ctx context.Context, businessID string, asc bool) ([]models.CustomerVisits, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	dir := "DESC"
	if asc {
		dir = "ASC"
	}
	query := fmt.Sprintf(`
		SELECT o.cust_id, c.name, COUNT(*) AS total_count
		FROM orders o
		JOIN customers c ON o.cust_id = c.cust_id
		WHERE o.business_id = $1 AND o.odate >= NOW() - INTERVAL '1 month'
		GROUP BY o.cust_id, c.name
		ORDER BY total_count %s, c.name ASC
		LIMIT 3
	`, dir)

	rows, err := s.db.Query(ctx, query, businessID)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("customer visits query failed")
		return nil, models.Upstream("failed to rank customers by visits", err)
	}
	defer rows.Close()

	out := []models.CustomerVisits{}
	for rows.Next() {
		var cv models.CustomerVisits
		if err := rows.Scan(&cv.CustomerID, &cv.CustomerName, &cv.TotalCount); err != nil {
			return nil, models.Upstream("failed to read customer visits row", err)
		}
		out = append(out, cv)
	}
	return out, rows.Err()
}

// WeeklyCustomerCounts buckets distinct customers by week start over the
// trailing 7 days.
func (s *AnalyticsService) WeeklyCustomerCounts(ctx context.Context, businessID string) ([]models.WeeklyCustomers, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	rows, err := s.db.Query(ctx, `
		SELECT date_trunc('week', odate) AS week_start, COUNT(DISTINCT cust_id) AS customer_count
		FROM orders
		WHERE business_id = $1 AND odate >= NOW() - INTERVAL '7 days'
		GROUP BY week_start
		ORDER BY week_start
	`, businessID)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("weekly analytics query failed")
		return nil, models.Upstream("failed to compute weekly customer counts", err)
	}
	defer rows.Close()

	out := []models.WeeklyCustomers{}
	for rows.Next() {
		var w models.WeeklyCustomers
		if err := rows.Scan(&w.WeekStart, &w.CustomerCount); err != nil {
			return nil, models.Upstream("failed to read weekly analytics row", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// MonthlyCustomerCounts buckets distinct customers by month start over the
// whole ledger.
func (s *AnalyticsService) MonthlyCustomerCounts(ctx context.Context, businessID string) ([]models.MonthlyCustomers, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	rows, err := s.db.Query(ctx, `
		SELECT date_trunc('month', odate) AS month_start, COUNT(DISTINCT cust_id) AS customer_count
		FROM orders
		WHERE business_id = $1
		GROUP BY month_start
		ORDER BY month_start
	`, businessID)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("monthly analytics query failed")
		return nil, models.Upstream("failed to compute monthly customer counts", err)
	}
	defer rows.Close()

	out := []models.MonthlyCustomers{}
	for rows.Next() {
		var m models.MonthlyCustomers
		if err := rows.Scan(&m.MonthStart, &m.CustomerCount); err != nil {
			return nil, models.Upstream("failed to read monthly analytics row", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// monthRange returns the inclusive start and end instants of a calendar
// month in UTC.
func monthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// MonthlyComparison reports distinct customers, customers both created and
// ordering within the month, and total revenue for one calendar month.
// Each sub-query fails independently: on error the metric stays zero and
// the rest of the report is still returned.
func (s *AnalyticsService) MonthlyComparison(ctx context.Context, businessID string, year int, month time.Month) (models.MonthlyComparison, error) {
	var report models.MonthlyComparison
	if businessID == "" {
		return report, models.MissingField("business id")
	}
	start, end := monthRange(year, month)

	err := s.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT cust_id)
		FROM orders
		WHERE business_id = $1 AND odate BETWEEN $2 AND $3
	`, businessID, start, end).Scan(&report.TotalCustomers)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("total customers query failed")
		report.TotalCustomers = 0
	}

	err = s.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT c.cust_id)
		FROM customers c
		JOIN orders o ON c.cust_id = o.cust_id
		WHERE c.business_id = $1
		  AND c.created_at BETWEEN $2 AND $3
		  AND o.odate BETWEEN $2 AND $3
	`, businessID, start, end).Scan(&report.NewCustomers)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("new customers query failed")
		report.NewCustomers = 0
	}

	// Service revenue and product revenue are computed independently and
	// summed; each row of the union carries one of the two parts.
	rows, err := s.db.Query(ctx, `
		SELECT COALESCE(SUM(COALESCE((e->>'cost')::NUMERIC, 0) * COALESCE((e->>'quantity')::NUMERIC, 0)), 0) AS part
		FROM (
			SELECT jsonb_array_elements(COALESCE(services, '[]'::jsonb)) AS e
			FROM orders
			WHERE business_id = $1 AND odate BETWEEN $2 AND $3
		) svc
		UNION ALL
		SELECT COALESCE(SUM(COALESCE((e->>'cost')::NUMERIC, 0) * COALESCE((e->>'quantity')::NUMERIC, 0)), 0) AS part
		FROM (
			SELECT jsonb_array_elements(COALESCE(products, '[]'::jsonb)) AS e
			FROM orders
			WHERE business_id = $1 AND odate BETWEEN $2 AND $3
		) prod
	`, businessID, start, end)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("monthly revenue query failed")
		return report, nil
	}
	defer rows.Close()
	for rows.Next() {
		var part float64
		if err := rows.Scan(&part); err != nil {
			s.log.Error().Err(err).Msg("failed to read monthly revenue row")
			report.TotalRevenue = 0
			return report, nil
		}
		report.TotalRevenue += part
	}
	if err := rows.Err(); err != nil {
		s.log.Error().Err(err).Msg("failed to read monthly revenue rows")
		report.TotalRevenue = 0
	}
	return report, nil
}

// RetentionAndChurnRate compares the target month against the prior
// calendar month. With no active customers in the previous period the
// retention rate is zero and churn is 100, never a division by zero.
func (s *AnalyticsService) RetentionAndChurnRate(ctx context.Context, businessID string, year int, month time.Month) (models.RetentionReport, error) {
	if businessID == "" {
		return models.RetentionReport{}, models.MissingField("business id")
	}
	currentStart, currentEnd := monthRange(year, month)
	previousStart, previousEnd := monthRange(currentStart.AddDate(0, -1, 0).Year(), currentStart.AddDate(0, -1, 0).Month())

	var activePrevious, retained int

	err := s.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT cust_id)
		FROM orders
		WHERE business_id = $1 AND odate BETWEEN $2 AND $3
	`, businessID, previousStart, previousEnd).Scan(&activePrevious)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("active previous customers query failed")
		activePrevious = 0
	}

	err = s.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT o1.cust_id)
		FROM orders o1
		JOIN orders o2 ON o1.cust_id = o2.cust_id
		WHERE o1.business_id = $1 AND o2.business_id = $1
		  AND o1.odate BETWEEN $2 AND $3
		  AND o2.odate BETWEEN $4 AND $5
	`, businessID, previousStart, previousEnd, currentStart, currentEnd).Scan(&retained)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("retained customers query failed")
		retained = 0
	}

	retentionRate := 0.0
	if activePrevious > 0 {
		retentionRate = float64(retained) / float64(activePrevious) * 100
	}
	churnRate := 100 - retentionRate

	return models.RetentionReport{
		RetentionRate: round2(retentionRate),
		ChurnRate:     round2(churnRate),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NewOldCustomerRevenue splits revenue between customers created within
// the trailing 30 days and older ones. Percentages default to zero when
// the total is zero.
func (s *AnalyticsService) NewOldCustomerRevenue(ctx context.Context, businessID string) (models.CustomerTypeRevenue, error) {
	var split models.CustomerTypeRevenue
	if businessID == "" {
		return split, models.MissingField("business id")
	}
	query := fmt.Sprintf(`
		WITH customer_status AS (
			SELECT cust_id,
			       CASE WHEN created_at >= NOW() - INTERVAL '30 days' THEN 'new' ELSE 'old' END AS customer_type
			FROM customers
			WHERE business_id = $1
		),
		order_revenue AS (
			SELECT o.cust_id, %s AS total
			FROM orders o
			WHERE o.business_id = $1
		)
		SELECT cs.customer_type, COALESCE(SUM(r.total), 0)
		FROM order_revenue r
		JOIN customer_status cs ON r.cust_id = cs.cust_id
		GROUP BY cs.customer_type
	`, orderRevenueExpr())

	rows, err := s.db.Query(ctx, query, businessID)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("customer type revenue query failed")
		return split, models.Upstream("failed to split revenue by customer type", err)
	}
	defer rows.Close()

	for rows.Next() {
		var customerType string
		var revenue float64
		if err := rows.Scan(&customerType, &revenue); err != nil {
			return split, models.Upstream("failed to read customer type revenue row", err)
		}
		if customerType == "new" {
			split.NewCustomerRevenue = revenue
		} else {
			split.OldCustomerRevenue = revenue
		}
	}
	if err := rows.Err(); err != nil {
		return split, models.Upstream("failed to read customer type revenue rows", err)
	}

	total := split.NewCustomerRevenue + split.OldCustomerRevenue
	if total > 0 {
		split.NewCustomerRevenuePercentage = round2(split.NewCustomerRevenue / total * 100)
		split.OldCustomerRevenuePercentage = round2(split.OldCustomerRevenue / total * 100)
	}
	return split, nil
}

// TopCustomersByDateRange ranks customers by their spend between two
// instants, highest first, capped at 10. Ties break on name ascending.
func (s *AnalyticsService) TopCustomersByDateRange(ctx context.Context, businessID string, from, to time.Time) ([]models.CustomerSpend, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	query := fmt.Sprintf(`
		SELECT o.cust_id, c.name, SUM(%s) AS total_spent
		FROM orders o
		JOIN customers c ON o.cust_id = c.cust_id
		WHERE o.business_id = $1 AND o.odate BETWEEN $2 AND $3
		GROUP BY o.cust_id, c.name
		ORDER BY total_spent DESC, c.name ASC
		LIMIT 10
	`, orderRevenueExpr())

	rows, err := s.db.Query(ctx, query, businessID, from, to)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("top customers by range query failed")
		return nil, models.Upstream("failed to rank customers by date range", err)
	}
	defer rows.Close()

	out := []models.CustomerSpend{}
	for rows.Next() {
		var cs models.CustomerSpend
		if err := rows.Scan(&cs.CustomerID, &cs.CustomerName, &cs.TotalCost); err != nil {
			return nil, models.Upstream("failed to read top customers row", err)
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}

// TotalRevenue sums the common cost formula over every order between two
// instants.
func (s *AnalyticsService) TotalRevenue(ctx context.Context, businessID string, from, to time.Time) (float64, error) {
	if businessID == "" {
		return 0, models.MissingField("business id")
	}
	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(%s), 0) AS total_revenue
		FROM orders o
		WHERE o.business_id = $1 AND o.odate BETWEEN $2 AND $3
	`, orderRevenueExpr())

	var total float64
	if err := s.db.QueryRow(ctx, query, businessID, from, to).Scan(&total); err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("total revenue query failed")
		return 0, models.Upstream("failed to compute total revenue", err)
	}
	return total, nil
}

// BusinessTotals reports distinct customers served and total revenue over
// the whole ledger of one business.
func (s *AnalyticsService) BusinessTotals(ctx context.Context, businessID string) (models.BusinessTotals, error) {
	var totals models.BusinessTotals
	if businessID == "" {
		return totals, models.MissingField("business id")
	}
	query := fmt.Sprintf(`
		SELECT COUNT(DISTINCT o.cust_id) AS customer_count, COALESCE(SUM(%s), 0) AS total_revenue
		FROM orders o
		WHERE o.business_id = $1
	`, orderRevenueExpr())

	if err := s.db.QueryRow(ctx, query, businessID).Scan(&totals.CustomerCount, &totals.TotalRevenue); err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("business totals query failed")
		return totals, models.Upstream("failed to compute business totals", err)
	}
	return totals, nil
}

// DailyPerformance builds the day-in-review report for one calendar date.
// Sections fail independently, like MonthlyComparison.
func (s *AnalyticsService) DailyPerformance(ctx context.Context, businessID string, date time.Time) (models.DailyPerformance, error) {
	report := models.DailyPerformance{
		ServicesSold: []models.ItemSold{},
		ProductsSold: []models.ItemSold{},
		BusyHours:    []models.HourlyOrders{},
	}
	if businessID == "" {
		return report, models.MissingField("business id")
	}
	day := date.UTC().Format("2006-01-02")

	report.ServicesSold = s.itemsSoldOn(ctx, businessID, day, "services")
	report.ProductsSold = s.itemsSoldOn(ctx, businessID, day, "products")

	// New customers are those whose first-ever order falls on this date.
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT o.cust_id) AS total_customers,
		       COUNT(DISTINCT CASE WHEN first_order.first_odate = o.odate THEN o.cust_id END) AS new_customers
		FROM orders o
		LEFT JOIN (
			SELECT cust_id, MIN(odate) AS first_odate
			FROM orders
			WHERE business_id = $1
			GROUP BY cust_id
		) first_order ON o.cust_id = first_order.cust_id
		WHERE o.business_id = $1 AND DATE(o.odate) = $2
	`, businessID, day).Scan(&report.TotalCustomers, &report.NewCustomers)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("daily customer stats query failed")
		report.TotalCustomers, report.NewCustomers = 0, 0
	}

	revenueQuery := fmt.Sprintf(`
		SELECT COALESCE(SUM(%s), 0) AS total_revenue
		FROM orders o
		WHERE o.business_id = $1 AND DATE(o.odate) = $2
	`, orderRevenueExpr())
	if err := s.db.QueryRow(ctx, revenueQuery, businessID, day).Scan(&report.TotalRevenue); err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("daily revenue query failed")
		report.TotalRevenue = 0
	}

	rows, err := s.db.Query(ctx, `
		SELECT EXTRACT(HOUR FROM odate)::INT AS order_hour, COUNT(*) AS order_count
		FROM orders
		WHERE business_id = $1 AND DATE(odate) = $2
		GROUP BY order_hour
		ORDER BY order_hour
	`, businessID, day)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("busy hours query failed")
		return report, nil
	}
	defer rows.Close()
	for rows.Next() {
		var h models.HourlyOrders
		if err := rows.Scan(&h.Hour, &h.Orders); err != nil {
			s.log.Error().Err(err).Msg("failed to read busy hours row")
			return report, nil
		}
		report.BusyHours = append(report.BusyHours, h)
	}
	if err := rows.Err(); err != nil {
		s.log.Error().Err(err).Msg("failed to read busy hours rows")
		report.BusyHours = []models.HourlyOrders{}
	}
	return report, nil
}

// itemsSoldOn lists one jsonb line-item column's (name, quantity, order
// time) rows for a calendar date. Failures return an empty list.
func (s *AnalyticsService) itemsSoldOn(ctx context.Context, businessID, day, column string) []models.ItemSold {
	query := fmt.Sprintf(`
		SELECT e->>'name' AS name, COALESCE((e->>'quantity')::NUMERIC, 0) AS quantity, o.odate
		FROM orders o, jsonb_array_elements(COALESCE(o.%s, '[]'::jsonb)) e
		WHERE o.business_id = $1 AND DATE(o.odate) = $2
		ORDER BY o.odate, name
	`, column)

	rows, err := s.db.Query(ctx, query, businessID, day)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Str("items", column).Msg("daily items query failed")
		return []models.ItemSold{}
	}
	defer rows.Close()

	out := []models.ItemSold{}
	for rows.Next() {
		var item models.ItemSold
		if err := rows.Scan(&item.Name, &item.Quantity, &item.Timestamp); err != nil {
			s.log.Error().Err(err).Str("items", column).Msg("failed to read daily items row")
			return []models.ItemSold{}
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		s.log.Error().Err(err).Str("items", column).Msg("failed to read daily items rows")
		return []models.ItemSold{}
	}
	return out
}

// PastServices lists every (service name, order date) pair of one customer
// under one business, unfiltered by date.
func (s *AnalyticsService) PastServices(ctx context.Context, businessID, custID string) ([]models.PastService, error) {
	if businessID == "" {
		return nil, models.MissingField("business id")
	}
	if custID == "" {
		return nil, models.MissingField("customer id")
	}
	rows, err := s.db.Query(ctx, `
		SELECT jsonb_array_elements(COALESCE(services, '[]'::jsonb))->>'name' AS service, odate
		FROM orders
		WHERE business_id = $1 AND cust_id = $2
		ORDER BY odate
	`, businessID, custID)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", businessID).Msg("past services query failed")
		return nil, models.Upstream("failed to list past services", err)
	}
	defer rows.Close()

	out := []models.PastService{}
	for rows.Next() {
		var p models.PastService
		if err := rows.Scan(&p.Service, &p.Date); err != nil {
			return nil, models.Upstream("failed to read past services row", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
