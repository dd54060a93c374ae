package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/zenithfest/zenith/internal/models"
	"github.com/zenithfest/zenith/internal/services"
)

func (handler *Handler) ListEvents(c *fiber.Ctx) error {
	events, err := handler.eventService.ListEvents()
	if err != nil {
		log.Printf("list events failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}

	payload := make([]fiber.Map, 0, len(events))
	for index := range events {
		payload = append(payload, eventPayload(&events[index]))
	}
	return c.JSON(fiber.Map{"events": payload})
}

func (handler *Handler) GetEvent(c *fiber.Ctx) error {
	event, err := handler.eventService.FindBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return apiError(c, fiber.StatusNotFound, "event not found")
		}
		log.Printf("get event failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(fiber.Map{"event": eventPayload(&event)})
}

func eventPayload(event *models.Event) fiber.Map {
	return fiber.Map{
		"id":          event.ID,
		"name":        event.Name,
		"slug":        event.Slug,
		"category":    event.Category,
		"description": event.Description,
		"venue":       event.Venue,
		"starts_at":   event.StartsAt,
		"team_size":   event.TeamSize,
		"prize_pool":  event.PrizePool,
	}
}
