package services

import (
	"errors"
	"strings"

	"github.com/gosimple/slug"
	"github.com/zenithfest/zenith/internal/models"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	ListOrderedByStart() ([]models.Event, error)
	FindBySlug(slugValue string) (models.Event, error)
	ExistsBySlug(slugValue string) (bool, error)
	Create(event *models.Event) error
}

type EventService struct {
	events EventRepository
}

func NewEventService(events EventRepository) *EventService {
	return &EventService{events: events}
}

func (service *EventService) ListEvents() ([]models.Event, error) {
	return service.events.ListOrderedByStart()
}

func (service *EventService) FindBySlug(raw string) (models.Event, error) {
	normalized := slug.Make(strings.TrimSpace(raw))
	if normalized == "" {
		return models.Event{}, ErrEventNotFound
	}

	event, err := service.events.FindBySlug(normalized)
	if err != nil {
		return models.Event{}, ErrEventNotFound
	}
	return event, nil
}

// EnsureBuiltinEvents seeds the festival catalog once; reruns only create
// entries that are still missing.
func (service *EventService) EnsureBuiltinEvents() error {
	for _, builtin := range builtinEvents {
		entry := builtin
		entry.Slug = slug.Make(entry.Name)

		exists, err := service.events.ExistsBySlug(entry.Slug)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := service.events.Create(&entry); err != nil {
			return err
		}
	}
	return nil
}
