package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sklyit/models"
	"sklyit/services"
)

// CustomerHandler serves the customer roster of one business.
type CustomerHandler struct {
	customers *services.CustomersService
}

func NewCustomerHandler(customers *services.CustomersService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) HandleGetCustomers(c *fiber.Ctx) error {
	customers, err := h.customers.GetAllCustomers(c.Context(), c.Params("business_id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, customers)
}

func (h *CustomerHandler) HandleGetCustomer(c *fiber.Ctx) error {
	customer, err := h.customers.GetCustomerByID(c.Context(), c.Params("business_id"), c.Params("cust_id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, customer)
}

func (h *CustomerHandler) HandleCreateCustomer(c *fiber.Ctx) error {
	var req models.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	customer, err := h.customers.CreateCustomer(c.Context(), c.Params("business_id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, customer)
}

func (h *CustomerHandler) HandleDeleteCustomer(c *fiber.Ctx) error {
	if err := h.customers.DeleteCustomer(c.Context(), c.Params("business_id"), c.Params("cust_id")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Customer deleted")
}
