package handler

import (
	"go-store-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	service service.StockService
	legacy  bool
}

// NewStockHandler wires the ledger endpoints. legacy selects the flat
// error-to-500 status mapping of the original API.
func NewStockHandler(s service.StockService, legacy bool) *StockHandler {
	return &StockHandler{service: s, legacy: legacy}
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *StockHandler) Create(c *fiber.Ctx) error {
	var req service.CreateStockInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	stock, err := h.service.Create(req)
	if err != nil {
		return respondError(c, h.legacy, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Stock created", "stock": stock})
}

func (h *StockHandler) List(c *fiber.Ctx) error {
	stocks, err := h.service.List()
	if err != nil {
		return respondError(c, h.legacy, err)
	}
	return c.JSON(stocks)
}

func (h *StockHandler) GetByProduct(c *fiber.Ctx) error {
	productID, err := parseID(c.Params("productId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	stock, err := h.service.GetByProduct(productID)
	if err != nil {
		return respondError(c, h.legacy, err)
	}
	return c.JSON(stock)
}

func (h *StockHandler) Update(c *fiber.Ctx) error {
	productID, err := parseID(c.Params("productId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req service.UpdateStockInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	stock, err := h.service.Update(productID, req)
	if err != nil {
		return respondError(c, h.legacy, err)
	}

	return c.JSON(fiber.Map{"message": "Stock updated", "stock": stock})
}

func (h *StockHandler) AddQuantity(c *fiber.Ctx) error {
	productID, err := parseID(c.Params("productId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req quantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	// Boundary validation stays a 400 in both error modes
	if req.Quantity <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Quantity must be a positive number"})
	}

	stock, err := h.service.AddQuantity(productID, req.Quantity)
	if err != nil {
		return respondError(c, h.legacy, err)
	}

	return c.JSON(fiber.Map{"message": "Quantity added", "stock": stock})
}

func (h *StockHandler) RemoveQuantity(c *fiber.Ctx) error {
	productID, err := parseID(c.Params("productId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req quantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Quantity <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Quantity must be a positive number"})
	}

	stock, err := h.service.RemoveQuantity(productID, req.Quantity)
	if err != nil {
		return respondError(c, h.legacy, err)
	}

	return c.JSON(fiber.Map{"message": "Quantity removed", "stock": stock})
}

func (h *StockHandler) Delete(c *fiber.Ctx) error {
	productID, err := parseID(c.Params("productId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.Delete(productID); err != nil {
		return respondError(c, h.legacy, err)
	}

	return c.JSON(fiber.Map{"message": "Stock deleted"})
}
