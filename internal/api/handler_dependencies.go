package api

import (
	"github.com/zenithfest/zenith/internal/db"
	"github.com/zenithfest/zenith/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secretKey string, cookieSecure bool, phoneRegion string, mailer services.Mailer) *Handler {
	repositories := db.NewRepositories(database)

	return &Handler{
		db:             database,
		secretKey:      []byte(secretKey),
		cookieSecure:   cookieSecure,
		phoneRegion:    phoneRegion,
		repositories:   repositories,
		accountService: services.NewAccountService(repositories.Users, mailer),
		teamService:    services.NewTeamService(repositories.Teams),
		eventService:   services.NewEventService(repositories.Events),
		resendLimiter:  newAttemptLimiter(),
		resetLimiter:   newAttemptLimiter(),
	}
}

// EventService is exposed so cmd can seed the builtin catalog at startup.
func (handler *Handler) EventService() *services.EventService {
	return handler.eventService
}
