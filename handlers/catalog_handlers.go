package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sklyit/models"
	"sklyit/services"
)

// CatalogHandler serves the service and product catalog of one business.
type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// --- Services ---

func (h *CatalogHandler) HandleGetServices(c *fiber.Ctx) error {
	activeOnly := c.QueryBool("active", false)
	items, err := h.catalog.GetServices(c.Context(), c.Params("business_id"), activeOnly)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, items)
}

func (h *CatalogHandler) HandleGetService(c *fiber.Ctx) error {
	item, err := h.catalog.GetServiceByID(c.Context(), c.Params("business_id"), c.Params("sid"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, item)
}

func (h *CatalogHandler) HandleCreateService(c *fiber.Ctx) error {
	var req models.CreateCatalogServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	name, data, err := readImageFile(c, "image")
	if err != nil {
		return respondError(c, models.Upstream("failed to read uploaded image", err))
	}
	item, err := h.catalog.CreateService(c.Context(), c.Params("business_id"), req, name, data)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, item)
}

func (h *CatalogHandler) HandleUpdateService(c *fiber.Ctx) error {
	var req models.CreateCatalogServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	item, err := h.catalog.UpdateService(c.Context(), c.Params("business_id"), c.Params("sid"), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, item)
}

func (h *CatalogHandler) HandleFlagService(c *fiber.Ctx) error {
	if err := h.catalog.FlagService(c.Context(), c.Params("business_id"), c.Params("sid")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Service flagged")
}

func (h *CatalogHandler) HandleDeleteService(c *fiber.Ctx) error {
	if err := h.catalog.DeleteService(c.Context(), c.Params("business_id"), c.Params("sid")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Service deleted")
}

// --- Products ---

func (h *CatalogHandler) HandleGetProducts(c *fiber.Ctx) error {
	activeOnly := c.QueryBool("active", false)
	items, err := h.catalog.GetProducts(c.Context(), c.Params("business_id"), activeOnly)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, items)
}

func (h *CatalogHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req models.CreateCatalogProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	name, data, err := readImageFile(c, "image")
	if err != nil {
		return respondError(c, models.Upstream("failed to read uploaded image", err))
	}
	item, err := h.catalog.CreateProduct(c.Context(), c.Params("business_id"), req, name, data)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, item)
}

func (h *CatalogHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req models.CreateCatalogProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	item, err := h.catalog.UpdateProduct(c.Context(), c.Params("business_id"), c.Params("pid"), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, item)
}

func (h *CatalogHandler) HandleFlagProduct(c *fiber.Ctx) error {
	if err := h.catalog.FlagProduct(c.Context(), c.Params("business_id"), c.Params("pid")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Product flagged")
}

func (h *CatalogHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.catalog.DeleteProduct(c.Context(), c.Params("business_id"), c.Params("pid")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Product deleted")
}
