package controllers

import (
	"net/http"

	"daybook-backend/config"
	"daybook-backend/models"
	"daybook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func validDocumentCategory(category string) bool {
	switch category {
	case "invoice", "proposal", "storyboard", "resume", "other":
		return true
	}
	return false
}

// CreateDocumentInput registers file metadata; the file itself lives in
// external storage and only its URL is kept here.
type CreateDocumentInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	FileURL     string `json:"file_url" binding:"required"`
	FileName    string `json:"file_name" binding:"required"`
	FileSize    int64  `json:"file_size"`
	FileType    string `json:"file_type"`
	Category    string `json:"category"`
}

// CreateDocument registers a document record
func CreateDocument(c *gin.Context) {
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

	var input CreateDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Category == "" {
		input.Category = "other"
	}
	if !validDocumentCategory(input.Category) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown document category")
		return
	}

	document := models.Document{
		ID:          uuid.New(),
		UserID:      userUUID,
		Name:        input.Name,
		Description: input.Description,
		FileURL:     input.FileURL,
		FileName:    input.FileName,
		FileSize:    input.FileSize,
		FileType:    input.FileType,
		Category:    input.Category,
	}

	if err := config.DB.Create(&document).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create document")
		return
	}

	c.JSON(http.StatusCreated, document)
}

// GetDocuments retrieves document records, optionally narrowed by category
func GetDocuments(c *gin.Context) {
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

	query := config.DB.Where("user_id = ?", userUUID)
	if category := c.Query("category"); category != "" && category != "all" {
		if !validDocumentCategory(category) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown document category")
			return
		}
		query = query.Where("category = ?", category)
	}

	var documents []models.Document
	if err := query.Order("created_at DESC").Find(&documents).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve documents")
		return
	}

	c.JSON(http.StatusOK, documents)
}

// DeleteDocument removes a document record by ID
func DeleteDocument(c *gin.Context) {
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

	documentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid document ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userUUID, documentUUID).
		Delete(&models.Document{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete document")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Document not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
