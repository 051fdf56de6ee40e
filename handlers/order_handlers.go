package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sklyit/models"
	"sklyit/services"
)

// OrderHandler serves the order book of one business.
type OrderHandler struct {
	orders *services.OrdersService
}

func NewOrderHandler(orders *services.OrdersService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.orders.GetAllOrders(c.Context(), c.Params("business_id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, orders)
}

func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	order, err := h.orders.GetOrderByID(c.Context(), c.Params("business_id"), c.Params("oid"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, order)
}

func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req models.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	order, err := h.orders.CreateOrder(c.Context(), c.Params("business_id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, order)
}

func (h *OrderHandler) HandleUpdateOrder(c *fiber.Ctx) error {
	var req models.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	order, err := h.orders.UpdateOrder(c.Context(), c.Params("business_id"), c.Params("oid"), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, order)
}

func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	if err := h.orders.DeleteOrder(c.Context(), c.Params("business_id"), c.Params("oid")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Order deleted")
}
