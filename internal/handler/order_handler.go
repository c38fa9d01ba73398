package handler

import (
	"go-store-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
	legacy  bool
}

func NewOrderHandler(s service.OrderService, legacy bool) *OrderHandler {
	return &OrderHandler{service: s, legacy: legacy}
}

// callerID reads the user id the auth middleware stored in locals
func callerID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("user_id").(uint); ok {
		return id
	}
	return 0
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req service.CreateOrderInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.Create(callerID(c), req)
	if err != nil {
		return respondError(c, h.legacy, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Order created", "order": order})
}

func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	orders, err := h.service.ListByUser(callerID(c))
	if err != nil {
		return respondError(c, h.legacy, err)
	}
	return c.JSON(orders)
}

func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := h.service.GetByID(id, callerID(c))
	if err != nil {
		return respondError(c, h.legacy, err)
	}
	return c.JSON(order)
}

func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.UpdateStatus(id, req.Status)
	if err != nil {
		return respondError(c, h.legacy, err)
	}

	return c.JSON(fiber.Map{"message": "Order status updated", "order": order})
}

// ListAll is admin-only; RequireAdmin gates the route
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	orders, err := h.service.ListAll()
	if err != nil {
		return respondError(c, h.legacy, err)
	}
	return c.JSON(orders)
}
