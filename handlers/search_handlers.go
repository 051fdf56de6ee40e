package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sklyit/models"
	"sklyit/services"
	"sklyit/utils"
)

// SearchHandler serves the public business search.
type SearchHandler struct {
	search *services.SearchService
	prefs  *services.PreferencesService
}

func NewSearchHandler(search *services.SearchService, prefs *services.PreferencesService) *SearchHandler {
	return &SearchHandler{search: search, prefs: prefs}
}

// HandleSearchBusinesses looks up business clients matching the query and
// location filters. Results are paginated and served from cache when a
// matching page was fetched within the TTL.
func (h *SearchHandler) HandleSearchBusinesses(c *fiber.Ctx) error {
	var filters models.SearchFilters
	if err := c.QueryParser(&filters); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid query parameters"})
	}
	userID, _ := c.Locals("userID").(string)

	result, err := h.search.SearchBusinessClients(c.Context(), filters, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       result.Data,
		"total":      result.Total,
		"page":       result.Page,
		"limit":      result.Limit,
		"pagination": utils.CreatePagination(result.Total, result.Page, result.Limit),
	})
}

// HandleClearSearchCache drops every cached search page.
func (h *SearchHandler) HandleClearSearchCache(c *fiber.Ctx) error {
	if err := h.search.ClearCache(c.Context()); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Search cache cleared")
}

// HandleGetSearchHistory returns the caller's recent searches.
func (h *SearchHandler) HandleGetSearchHistory(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)
	if userID == "" {
		return respondError(c, models.MissingField("user id"))
	}
	limit := c.QueryInt("limit", 20)
	entries, err := h.prefs.GetSearchHistory(c.Context(), userID, limit)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, entries)
}
