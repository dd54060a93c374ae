package api

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/zenithfest/zenith/internal/models"
	"github.com/zenithfest/zenith/internal/services"
)

func (handler *Handler) CreateTeam(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := createTeamInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	team, err := handler.teamService.CreateTeam(user.ID, input.Name, time.Now())
	if err != nil {
		return respondTeamError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":   true,
		"team": teamPayload(&team, true),
	})
}

func (handler *Handler) JoinTeam(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := joinTeamInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	team, err := handler.teamService.JoinTeam(user.ID, input.InviteCode, time.Now())
	if err != nil {
		return respondTeamError(c, err)
	}

	return c.JSON(fiber.Map{
		"ok":   true,
		"team": teamPayload(&team, false),
	})
}

func (handler *Handler) MyTeam(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	team, roster, err := handler.teamService.TeamForUser(user.ID)
	if err != nil {
		return respondTeamError(c, err)
	}

	// The invite code is only shown to the leader.
	payload := teamPayload(&team, team.LeaderID == user.ID)
	payload["members"] = roster
	return c.JSON(fiber.Map{"team": payload})
}

func respondTeamError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrTeamNameInvalid):
		return apiError(c, fiber.StatusBadRequest, "team name is required")
	case errors.Is(err, services.ErrTeamNameTaken):
		return apiError(c, fiber.StatusConflict, "team name already taken")
	case errors.Is(err, services.ErrAlreadyInTeam):
		return apiError(c, fiber.StatusBadRequest, "already in a team")
	case errors.Is(err, services.ErrInviteCodeInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid invite code")
	case errors.Is(err, services.ErrTeamFull):
		return apiError(c, fiber.StatusBadRequest, "team is full")
	case errors.Is(err, services.ErrTeamNotFound):
		return apiError(c, fiber.StatusNotFound, "team not found")
	default:
		log.Printf("team operation failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}

func teamPayload(team *models.Team, includeInviteCode bool) fiber.Map {
	payload := fiber.Map{
		"id":         team.ID,
		"name":       team.Name,
		"leader_id":  team.LeaderID,
		"created_at": team.CreatedAt,
	}
	if includeInviteCode {
		payload["invite_code"] = team.InviteCode
	}
	return payload
}
