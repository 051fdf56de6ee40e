package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sklyit/models"
	"sklyit/services"
)

// UserHandler manages platform accounts.
type UserHandler struct {
	users *services.UsersService
}

func NewUserHandler(users *services.UsersService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) HandleRegisterUser(c *fiber.Ctx) error {
	var req models.RegisterUserRequest
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
	user, err := h.users.RegisterUser(c.Context(), req, name, data)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, user)
}

// HandleGetMe returns the authenticated user's own profile.
func (h *UserHandler) HandleGetMe(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)
	user, err := h.users.GetUserByID(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, user)
}

func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	user, err := h.users.GetUserByID(c.Context(), c.Params("user_id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, user)
}

func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)
	var req models.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	name, data, err := readImageFile(c, "image")
	if err != nil {
		return respondError(c, models.Upstream("failed to read uploaded image", err))
	}
	user, err := h.users.UpdateUser(c.Context(), userID, req, name, data)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, user)
}

func (h *UserHandler) HandleUpdateFcmToken(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)
	var body struct {
		Token string `json:"fcm_token"`
	}
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c)
	}
	if body.Token == "" {
		return respondError(c, models.MissingField("fcm_token"))
	}
	if err := h.users.UpdateFcmToken(c.Context(), userID, body.Token); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Token updated")
}
