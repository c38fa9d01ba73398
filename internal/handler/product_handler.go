package handler

import (
	"go-store-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
	legacy  bool
}

func NewProductHandler(s service.ProductService, legacy bool) *ProductHandler {
	return &ProductHandler{service: s, legacy: legacy}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req service.CreateProductInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.Create(req)
	if err != nil {
		return respondError(c, h.legacy, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "product": product})
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.service.List()
	if err != nil {
		return respondError(c, h.legacy, err)
	}
	return c.JSON(products)
}

func (h *ProductHandler) GetByName(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required"})
	}

	product, err := h.service.GetByName(req.Name)
	if err != nil {
		return respondError(c, h.legacy, err)
	}
	return c.JSON(product)
}

// UpdatePartial handles PATCH: only the provided fields change
func (h *ProductHandler) UpdatePartial(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req service.UpdateProductInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.UpdatePartial(id, req)
	if err != nil {
		return respondError(c, h.legacy, err)
	}

	return c.JSON(fiber.Map{"message": "Product updated", "product": product})
}

// UpdateFull handles PUT: the whole record is replaced and required
// fields are re-validated
func (h *ProductHandler) UpdateFull(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req service.CreateProductInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.UpdateFull(id, req)
	if err != nil {
		return respondError(c, h.legacy, err)
	}

	return c.JSON(fiber.Map{"message": "Product fully updated", "product": product})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.Delete(id); err != nil {
		return respondError(c, h.legacy, err)
	}

	return c.JSON(fiber.Map{"message": "Product deleted"})
}
