package db

import "gorm.io/gorm"

type Repositories struct {
	Users  *UserRepository
	Teams  *TeamRepository
	Events *EventRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:  NewUserRepository(database),
		Teams:  NewTeamRepository(database),
		Events: NewEventRepository(database),
	}
}
