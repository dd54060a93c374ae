package db

import (
	"github.com/zenithfest/zenith/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	database *gorm.DB
}

func NewEventRepository(database *gorm.DB) *EventRepository {
	return &EventRepository{database: database}
}

func (repo *EventRepository) ListOrderedByStart() ([]models.Event, error) {
	events := make([]models.Event, 0)
	if err := repo.database.Order("starts_at ASC, id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *EventRepository) FindBySlug(slugValue string) (models.Event, error) {
	var event models.Event
	if err := repo.database.Where("slug = ?", slugValue).First(&event).Error; err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (repo *EventRepository) ExistsBySlug(slugValue string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Event{}).
		Where("slug = ?", slugValue).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *EventRepository) Create(event *models.Event) error {
	return repo.database.Create(event).Error
}
