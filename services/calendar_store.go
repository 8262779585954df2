package services

import (
	"errors"

	"daybook-backend/calendar"
	"daybook-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarStore is the GORM-backed persistence service behind the
// scheduling coordinator, scoped to one user's data.
type CalendarStore struct {
	db     *gorm.DB
	userID uuid.UUID
}

func NewCalendarStore(db *gorm.DB, userID uuid.UUID) *CalendarStore {
	return &CalendarStore{db: db, userID: userID}
}

func (s *CalendarStore) ListClients() ([]calendar.Client, error) {
	var clients []models.Client
	if err := s.db.Where("user_id = ?", s.userID).Order("name").Find(&clients).Error; err != nil {
		return nil, err
	}

	views := make([]calendar.Client, len(clients))
	for i, cl := range clients {
		views[i] = calendar.Client{ID: cl.ID.String(), Name: cl.Name, Color: cl.Color}
	}
	return views, nil
}

func (s *CalendarStore) ListEvents() ([]calendar.Event, error) {
	var events []models.Event
	if err := s.db.Preload("Client").Where("user_id = ?", s.userID).
		Order("start_date").Find(&events).Error; err != nil {
		return nil, err
	}

	views := make([]calendar.Event, len(events))
	for i := range events {
		views[i] = events[i].View()
	}
	return views, nil
}

func (s *CalendarStore) InsertEvent(in calendar.EventInput) error {
	clientUUID, err := uuid.Parse(in.ClientID)
	if err != nil {
		return err
	}

	event := models.Event{
		ID:        uuid.New(),
		UserID:    s.userID,
		ClientID:  clientUUID,
		Title:     in.Title,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		EventType: string(in.Type),
	}
	return s.db.Create(&event).Error
}

func (s *CalendarStore) UpdateEvent(id string, in calendar.EventInput) error {
	eventUUID, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	clientUUID, err := uuid.Parse(in.ClientID)
	if err != nil {
		return err
	}

	var event models.Event
	if err := s.db.Where("user_id = ? AND id = ?", s.userID, eventUUID).
		First(&event).Error; err != nil {
		return err
	}

	event.ClientID = clientUUID
	event.Title = in.Title
	event.StartDate = in.StartDate
	event.EndDate = in.EndDate
	event.EventType = string(in.Type)
	return s.db.Save(&event).Error
}

func (s *CalendarStore) DeleteEvent(id string) error {
	eventUUID, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	result := s.db.Where("user_id = ? AND id = ?", s.userID, eventUUID).
		Delete(&models.Event{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("event not found")
	}
	return nil
}
