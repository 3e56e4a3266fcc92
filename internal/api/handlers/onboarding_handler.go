package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postpilot/internal/service"
	"github.com/maheshrc27/postpilot/internal/transfer"
)

type OnboardingHandler struct {
	s service.OnboardingService
}

func NewOnboardingHandler(service service.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{s: service}
}

func (h *OnboardingHandler) AnalyzeContent(c *fiber.Ctx) error {
	var req transfer.AnalyzeContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	analysis, err := h.s.AnalyzeContent(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(analysis)
}

func (h *OnboardingHandler) SaveBrandProfile(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var req transfer.SaveBrandProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	profile, err := h.s.SaveBrandProfile(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"profile": profile,
	})
}
