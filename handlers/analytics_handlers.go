package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"sklyit/models"
	"sklyit/services"
)

// AnalyticsHandler serves order-book aggregations for one business.
type AnalyticsHandler struct {
	analytics *services.AnalyticsService
	insights  *services.InsightsService
}

func NewAnalyticsHandler(analytics *services.AnalyticsService, insights *services.InsightsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, insights: insights}
}

// yearMonth reads year/month query params, defaulting to the current month.
func yearMonth(c *fiber.Ctx) (int, time.Month) {
	now := time.Now().UTC()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	return year, time.Month(month)
}

func (h *AnalyticsHandler) HandleTopServices(c *fiber.Ctx) error {
	window := services.ParseWindow(c.Query("window"))
	asc := c.Query("order") == "asc"
	data, err := h.analytics.TopServicesByCount(c.Context(), c.Params("business_id"), window, asc)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, data)
}

func (h *AnalyticsHandler) HandleTopServicesByRevenue(c *fiber.Ctx) error {
	window := services.ParseWindow(c.Query("window"))
	data, err := h.analytics.TopServicesByRevenue(c.Context(), c.Params("business_id"), window)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, data)
}

// HandleCustomersBySpending returns the top 6 spenders by default, or the
// bottom 3 when order=asc.
func (h *AnalyticsHandler) HandleCustomersBySpending(c *fiber.Ctx) error {
	asc := c.Query("order") == "asc"
	defaultLimit := 6
	if asc {
		defaultLimit = 3
	}
	limit := c.QueryInt("limit", defaultLimit)
	data, err := h.analytics.CustomersBySpending(c.Context(), c.Params("business_id"), limit, asc)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, data)
}

func (h *AnalyticsHandler) HandleCustomersByVisits(c *fiber.Ctx) error {
	asc := c.Query("order") == "asc"
	data, err := h.analytics.CustomersByVisits(c.Context(), c.Params("business_id"), asc)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, data)
}

func (h *AnalyticsHandler) HandleWeeklyCustomers(c *fiber.Ctx) error {
	data, err := h.analytics.WeeklyCustomerCounts(c.Context(), c.Params("business_id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, data)
}

func (h *AnalyticsHandler) HandleMonthlyCustomers(c *fiber.Ctx) error {
	data, err := h.analytics.MonthlyCustomerCounts(c.Context(), c.Params("business_id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, data)
}

// HandleMonthlyComparison aggregates one calendar month. Individual metrics
// degrade to zero on query failure instead of failing the whole response.
func (h *AnalyticsHandler) HandleMonthlyComparison(c *fiber.Ctx) error {
	year, month := yearMonth(c)
	data, err := h.analytics.MonthlyComparison(c.Context(), c.Params("business_id"), year, month)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, data)
}

func (h *AnalyticsHandler) HandleRetention(c *fiber.Ctx) error {
	year, month := yearMonth(c)
	data, err := h.analytics.RetentionAndChurnRate(c.Context(), c.Params("business_id"), year, month)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, data)
}

func (h *AnalyticsHandler) HandleNewOldRevenue(c *fiber.Ctx) error {
	data, err := h.analytics.NewOldCustomerRevenue(c.Context(), c.Params("business_id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, data)
}

// dateRange reads the from/to query params as YYYY-MM-DD dates; the "to"
// bound is extended to the end of its day.
func dateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, models.MissingField("from date (YYYY-MM-DD)")
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, models.MissingField("to date (YYYY-MM-DD)")
	}
	return from, to.AddDate(0, 0, 1).Add(-time.Second), nil
}

func (h *AnalyticsHandler) HandleTopCustomersByRange(c *fiber.Ctx) error {
	from, to, err := dateRange(c)
	if err != nil {
		return respondError(c, err)
	}
	data, err := h.analytics.TopCustomersByDateRange(c.Context(), c.Params("business_id"), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, data)
}

func (h *AnalyticsHandler) HandleTotalRevenue(c *fiber.Ctx) error {
	from, to, err := dateRange(c)
	if err != nil {
		return respondError(c, err)
	}
	total, err := h.analytics.TotalRevenue(c.Context(), c.Params("business_id"), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.Map{"totalRevenue": total})
}

// HandleDailyPerformance reports one calendar date, defaulting to today.
func (h *AnalyticsHandler) HandleDailyPerformance(c *fiber.Ctx) error {
	date := time.Now().UTC()
	if q := c.Query("date"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			return respondError(c, models.MissingField("date (YYYY-MM-DD)"))
		}
		date = parsed
	}
	data, err := h.analytics.DailyPerformance(c.Context(), c.Params("business_id"), date)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, data)
}

func (h *AnalyticsHandler) HandleBusinessTotals(c *fiber.Ctx) error {
	data, err := h.analytics.BusinessTotals(c.Context(), c.Params("business_id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, data)
}

func (h *AnalyticsHandler) HandlePastServices(c *fiber.Ctx) error {
	data, err := h.analytics.PastServices(c.Context(), c.Params("business_id"), c.Params("cust_id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, data)
}

// HandleBusinessInsights asks the language model for a short narrative over
// the monthly customer series and revenue split.
func (h *AnalyticsHandler) HandleBusinessInsights(c *fiber.Ctx) error {
	data, err := h.insights.BusinessInsights(c.Context(), c.Params("business_id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, data)
}
