package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/maheshrc27/postpilot/internal/queue"
	"github.com/maheshrc27/postpilot/internal/service"
	"github.com/maheshrc27/postpilot/internal/transfer"
)

type SchedulingHandler struct {
	s           service.SchedulingService
	AsynqClient *asynq.Client
}

func NewSchedulingHandler(service service.SchedulingService, asynqClient *asynq.Client) *SchedulingHandler {
	return &SchedulingHandler{s: service, AsynqClient: asynqClient}
}

func (h *SchedulingHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var sc transfer.ScheduledPostCreation
	if err := c.BodyParser(&sc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	scheduledPost, delay, err := h.s.Create(c.Context(), userID, &sc)
	if err != nil {
		return respondError(c, err)
	}

	err = queue.EnqueuePublish(h.AsynqClient, queue.PublishPostPayload{ScheduledPostID: scheduledPost.ID}, delay)
	if err != nil {
		// The pair is committed; the sweep job picks the post up later.
		slog.Info("error enqueueing publish task", "scheduled_post_id", scheduledPost.ID, "err", err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(scheduledPost)
}

func (h *SchedulingHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)

	posts, err := h.s.List(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *SchedulingHandler) Get(c *fiber.Ctx) error {
	userID := GetUserID(c)
	scheduledPostID := c.Params("id")

	scheduledPost, err := h.s.Get(c.Context(), userID, scheduledPostID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(scheduledPost)
}

func (h *SchedulingHandler) Update(c *fiber.Ctx) error {
	userID := GetUserID(c)
	scheduledPostID := c.Params("id")

	var su transfer.ScheduledPostUpdate
	if err := c.BodyParser(&su); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	scheduledPost, err := h.s.Update(c.Context(), userID, scheduledPostID, &su)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(scheduledPost)
}

func (h *SchedulingHandler) Delete(c *fiber.Ctx) error {
	userID := GetUserID(c)
	scheduledPostID := c.Params("id")

	post, err := h.s.Delete(c.Context(), userID, scheduledPostID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}
