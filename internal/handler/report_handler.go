package handler

import (
	"go-store-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
	legacy  bool
}

func NewReportHandler(s service.ReportService, legacy bool) *ReportHandler {
	return &ReportHandler{service: s, legacy: legacy}
}

func (h *ReportHandler) StockReport(c *fiber.Ctx) error {
	report, err := h.service.StockReport()
	if err != nil {
		return respondError(c, h.legacy, err)
	}
	return c.JSON(report)
}
