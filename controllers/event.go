package controllers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"daybook-backend/calendar"
	"daybook-backend/config"
	"daybook-backend/models"
	"daybook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventInput defines the expected JSON structure for creating or updating
// an event. Dates is the selected span; it is sorted server-side and only
// its first and last days are persisted, so start_date <= end_date always
// holds regardless of drag direction.
type EventInput struct {
	ClientID  string   `json:"client_id" binding:"required"`
	Title     string   `json:"title"`
	Dates     []string `json:"dates" binding:"required,min=1"`
	EventType string   `json:"event_type" binding:"required"`
}

func parseEventInput(input EventInput) (start, end string, clientUUID uuid.UUID, err error) {
	clientUUID, err = uuid.Parse(input.ClientID)
	if err != nil {
		return "", "", uuid.Nil, errors.New("invalid client ID format")
	}

	if !calendar.ValidEventType(calendar.EventType(input.EventType)) {
		return "", "", uuid.Nil, errors.New("event type must be hold, book or paid")
	}

	dates := make([]time.Time, 0, len(input.Dates))
	for _, s := range input.Dates {
		d, perr := calendar.ParseDate(s)
		if perr != nil {
			return "", "", uuid.Nil, errors.New("dates must be YYYY-MM-DD")
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	return calendar.FormatDate(dates[0]), calendar.FormatDate(dates[len(dates)-1]), clientUUID, nil
}

// CreateEvent creates a booking from a selected date span
func CreateEvent(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	startDate, endDate, clientUUID, err := parseEventInput(input)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	// The client must exist at creation time; it may be deleted later
	var client models.Client
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, clientUUID).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	event := models.Event{
		ID:        uuid.New(),
		UserID:    userUUID,
		ClientID:  clientUUID,
		Title:     input.Title,
		StartDate: startDate,
		EndDate:   endDate,
		EventType: input.EventType,
	}

	if err := config.DB.Create(&event).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create event")
		return
	}

	event.Client = &client
	c.JSON(http.StatusCreated, event)
}

// GetEvents retrieves all events joined with their clients, ordered by
// start date
func GetEvents(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var events []models.Event
	if err := config.DB.Preload("Client").Where("user_id = ?", userUUID).
		Order("start_date").Find(&events).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve events")
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetEvent retrieves a specific event by ID
func GetEvent(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	eventUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid event ID format")
		return
	}

	var event models.Event
	if err := config.DB.Preload("Client").Where("user_id = ? AND id = ?", userUUID, eventUUID).
		First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Event not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEvent replaces an event's client, title, type and date span
func UpdateEvent(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	eventUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid event ID format")
		return
	}

	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	startDate, endDate, clientUUID, err := parseEventInput(input)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var event models.Event
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, eventUUID).
		First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Event not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	event.ClientID = clientUUID
	event.Title = input.Title
	event.StartDate = startDate
	event.EndDate = endDate
	event.EventType = input.EventType

	if err := config.DB.Save(&event).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update event")
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent removes an event by ID
func DeleteEvent(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	eventUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid event ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userUUID, eventUUID).
		Delete(&models.Event{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Event not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
