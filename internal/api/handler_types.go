package api

import (
	"github.com/zenithfest/zenith/internal/db"
	"github.com/zenithfest/zenith/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool
	phoneRegion  string

	repositories   *db.Repositories
	accountService *services.AccountService
	teamService    *services.TeamService
	eventService   *services.EventService

	resendLimiter *attemptLimiter
	resetLimiter  *attemptLimiter
}
