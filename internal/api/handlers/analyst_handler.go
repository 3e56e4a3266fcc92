package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postpilot/internal/service"
	"github.com/maheshrc27/postpilot/internal/transfer"
)

type AnalystHandler struct {
	s service.AnalystService
}

func NewAnalystHandler(service service.AnalystService) *AnalystHandler {
	return &AnalystHandler{s: service}
}

func (h *AnalystHandler) AnalyzeAccount(c *fiber.Ctx) error {
	var req transfer.AnalyzeAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	analyses, err := h.s.AnalyzeAccount(c.Context(), req.URL)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(analyses)
}
