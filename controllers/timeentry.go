package controllers

import (
	"errors"
	"net/http"
	"time"

	"daybook-backend/calendar"
	"daybook-backend/config"
	"daybook-backend/models"
	"daybook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateTimeEntryInput struct {
	ClientID        *string    `json:"client_id"`
	TaskName        string     `json:"task_name" binding:"required"`
	StartTime       time.Time  `json:"start_time" binding:"required"`
	EndTime         *time.Time `json:"end_time"`
	DurationMinutes int        `json:"duration_minutes"`
}

// StartTimerInput starts a running entry for the given task
type StartTimerInput struct {
	ClientID *string `json:"client_id"`
	TaskName string  `json:"task_name" binding:"required"`
}

// CreateTimeEntry records a finished time entry
func CreateTimeEntry(c *gin.Context) {
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

	var input CreateTimeEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	duration := input.DurationMinutes
	if duration == 0 && input.EndTime != nil {
		duration = int(input.EndTime.Sub(input.StartTime).Minutes())
	}
	if duration < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "End time cannot precede start time")
		return
	}

	entry := models.TimeEntry{
		ID:              uuid.New(),
		UserID:          userUUID,
		TaskName:        input.TaskName,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		DurationMinutes: duration,
		Date:            calendar.FormatDate(input.StartTime),
	}

	if input.ClientID != nil && *input.ClientID != "" {
		clientUUID, err := uuid.Parse(*input.ClientID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
			return
		}
		entry.ClientID = &clientUUID
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create time entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetTimeEntries retrieves all time entries joined with their clients,
// newest first. An optional client query parameter narrows the list.
func GetTimeEntries(c *gin.Context) {
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

	query := config.DB.Preload("Client").Where("user_id = ?", userUUID)
	if clientFilter := c.Query("client"); clientFilter != "" && clientFilter != calendar.FilterAll {
		clientUUID, err := uuid.Parse(clientFilter)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
			return
		}
		query = query.Where("client_id = ?", clientUUID)
	}

	var entries []models.TimeEntry
	if err := query.Order("start_time DESC").Find(&entries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve time entries")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// StartTimer begins a running time entry. Only one timer may run at a time.
func StartTimer(c *gin.Context) {
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

	var input StartTimerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var running models.TimeEntry
	if err := config.DB.Where("user_id = ? AND is_running = ?", userUUID, true).
		First(&running).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "A timer is already running")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	now := time.Now()
	entry := models.TimeEntry{
		ID:        uuid.New(),
		UserID:    userUUID,
		TaskName:  input.TaskName,
		StartTime: now,
		IsRunning: true,
		Date:      calendar.FormatDate(now),
	}

	if input.ClientID != nil && *input.ClientID != "" {
		clientUUID, err := uuid.Parse(*input.ClientID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
			return
		}
		entry.ClientID = &clientUUID
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to start timer")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// StopTimer finishes a running time entry and fixes its duration
func StopTimer(c *gin.Context) {
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

	entryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time entry ID format")
		return
	}

	var entry models.TimeEntry
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, entryUUID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Time entry not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !entry.IsRunning {
		utils.RespondWithError(c, http.StatusConflict, "Time entry is not running")
		return
	}

	now := time.Now()
	entry.EndTime = &now
	entry.DurationMinutes = int(now.Sub(entry.StartTime).Minutes())
	entry.IsRunning = false

	if err := config.DB.Save(&entry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to stop timer")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteTimeEntry removes a time entry by ID
func DeleteTimeEntry(c *gin.Context) {
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

	entryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time entry ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userUUID, entryUUID).
		Delete(&models.TimeEntry{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete time entry")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Time entry not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Time entry deleted successfully"})
}
