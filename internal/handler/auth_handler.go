package handler

import (
	"go-store-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service service.AuthService
	legacy  bool
}

func NewAuthHandler(s service.AuthService, legacy bool) *AuthHandler {
	return &AuthHandler{service: s, legacy: legacy}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	user, err := h.service.Register(req)
	if err != nil {
		return respondError(c, h.legacy, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "User registered", "user": user.ToResponse()})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email and password are required"})
	}

	resp, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, h.legacy, err)
	}

	return c.JSON(resp)
}
