package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sklyit/models"
	"sklyit/services"
)

// ClientHandler manages business client profiles.
type ClientHandler struct {
	clients *services.ClientsService
}

func NewClientHandler(clients *services.ClientsService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

func (h *ClientHandler) HandleGetClient(c *fiber.Ctx) error {
	client, err := h.clients.GetClientByID(c.Context(), c.Params("business_id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, client)
}

func (h *ClientHandler) HandleCreateClient(c *fiber.Ctx) error {
	var req models.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	client, err := h.clients.CreateClient(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, client)
}

func (h *ClientHandler) HandleUpdateClient(c *fiber.Ctx) error {
	var req models.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	client, err := h.clients.UpdateClient(c.Context(), c.Params("business_id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, client)
}

func (h *ClientHandler) HandleDeleteClient(c *fiber.Ctx) error {
	if err := h.clients.DeleteClient(c.Context(), c.Params("business_id")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Client deleted")
}
