package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sklyit/models"
	"sklyit/services"
)

// AuthHandler serves login, token refresh and the password-reset flow.
type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	tokens, user, err := h.auth.Login(c.Context(), req.UserID, req.Password)
	if err != nil {
		if models.KindOf(err) == models.ErrKindNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
		}
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"user":          user,
	})
}

func (h *AuthHandler) HandleRefresh(c *fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c)
	}
	if body.RefreshToken == "" {
		return respondError(c, models.MissingField("refresh_token"))
	}
	tokens, err := h.auth.Refresh(body.RefreshToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid refresh token"})
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

func (h *AuthHandler) HandleForgotPassword(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c)
	}
	if body.Email == "" {
		return respondError(c, models.MissingField("email"))
	}
	if err := h.auth.ForgotPassword(c.Context(), body.Email); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "Reset code sent")
}

func (h *AuthHandler) HandleVerifyResetCode(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := c.BodyParser(&body); err != nil {
		return respondBadBody(c)
	}
	if !h.auth.VerifyResetCode(body.Email, body.Code) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid or expired code"})
	}
	return respondMessage(c, "Code verified")
}

func (h *AuthHandler) HandleResetPassword(c *fiber.Ctx) error {
	var req models.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	if err := h.auth.ResetPassword(c.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		if models.KindOf(err) == models.ErrKindNotFound {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid or expired code"})
		}
		return respondError(c, err)
	}
	return respondMessage(c, "Password updated")
}
