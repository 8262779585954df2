package controllers

import (
	"errors"
	"net/http"

	"daybook-backend/config"
	"daybook-backend/models"
	"daybook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateNoteInput struct {
	Content  string `json:"content" binding:"required"`
	Color    string `json:"color"`
	Position int    `json:"position"`
}

type UpdateNoteInput struct {
	Content  *string `json:"content"`
	Color    *string `json:"color"`
	Position *int    `json:"position"`
}

// CreateNote adds a post-it note to the home screen
func CreateNote(c *gin.Context) {
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

	var input CreateNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	note := models.Note{
		ID:       uuid.New(),
		UserID:   userUUID,
		Content:  input.Content,
		Position: input.Position,
	}
	if input.Color != "" {
		note.Color = input.Color
	}

	if err := config.DB.Create(&note).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create note")
		return
	}

	c.JSON(http.StatusCreated, note)
}

// GetNotes retrieves notes in board order
func GetNotes(c *gin.Context) {
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

	var notes []models.Note
	if err := config.DB.Where("user_id = ?", userUUID).Order("position").
		Find(&notes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve notes")
		return
	}

	c.JSON(http.StatusOK, notes)
}

// UpdateNote updates a note's content, color or position
func UpdateNote(c *gin.Context) {
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

	noteUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid note ID format")
		return
	}

	var input UpdateNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var note models.Note
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, noteUUID).
		First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Note not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.Color != nil {
		note.Color = *input.Color
	}
	if input.Position != nil {
		note.Position = *input.Position
	}

	if err := config.DB.Save(&note).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update note")
		return
	}

	c.JSON(http.StatusOK, note)
}

// DeleteNote removes a note by ID
func DeleteNote(c *gin.Context) {
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

	noteUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid note ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userUUID, noteUUID).
		Delete(&models.Note{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete note")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Note not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
