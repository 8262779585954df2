package controllers

import (
	"errors"
	"net/http"

	"daybook-backend/calendar"
	"daybook-backend/config"
	"daybook-backend/models"
	"daybook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func validTaskStatus(s string) bool {
	return s == "todo" || s == "in_progress" || s == "done"
}

func validTaskPriority(p string) bool {
	return p == "low" || p == "med" || p == "high"
}

type CreateTaskInput struct {
	ClientID    *string `json:"client_id"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     string  `json:"due_date"`
	Position    int     `json:"position"`
}

type UpdateTaskInput struct {
	ClientID    *string `json:"client_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
	Position    *int    `json:"position"`
}

// MoveTaskInput moves a task to a kanban column slot
type MoveTaskInput struct {
	Status   string `json:"status" binding:"required"`
	Position int    `json:"position"`
}

// CreateTask creates a new kanban task
func CreateTask(c *gin.Context) {
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

	var input CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Status == "" {
		input.Status = "todo"
	}
	if input.Priority == "" {
		input.Priority = "med"
	}
	if !validTaskStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Status must be todo, in_progress or done")
		return
	}
	if !validTaskPriority(input.Priority) {
		utils.RespondWithError(c, http.StatusBadRequest, "Priority must be low, med or high")
		return
	}
	if input.DueDate != "" {
		if _, err := calendar.ParseDate(input.DueDate); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Due date must be YYYY-MM-DD")
			return
		}
	}

	task := models.Task{
		ID:          uuid.New(),
		UserID:      userUUID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		Position:    input.Position,
	}

	if input.ClientID != nil && *input.ClientID != "" {
		clientUUID, err := uuid.Parse(*input.ClientID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
			return
		}
		task.ClientID = &clientUUID
	}

	if err := config.DB.Create(&task).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTasks retrieves all tasks joined with their clients, ordered for the
// kanban board
func GetTasks(c *gin.Context) {
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

	var tasks []models.Task
	if err := config.DB.Preload("Client").Where("user_id = ?", userUUID).
		Order("status").Order("position").Find(&tasks).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateTask updates an existing task
func UpdateTask(c *gin.Context) {
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

	taskUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	var input UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var task models.Task
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, taskUUID).
		First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Task not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !validTaskStatus(*input.Status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Status must be todo, in_progress or done")
			return
		}
		task.Status = *input.Status
	}
	if input.Priority != nil {
		if !validTaskPriority(*input.Priority) {
			utils.RespondWithError(c, http.StatusBadRequest, "Priority must be low, med or high")
			return
		}
		task.Priority = *input.Priority
	}
	if input.DueDate != nil {
		if *input.DueDate != "" {
			if _, err := calendar.ParseDate(*input.DueDate); err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "Due date must be YYYY-MM-DD")
				return
			}
		}
		task.DueDate = *input.DueDate
	}
	if input.Position != nil {
		task.Position = *input.Position
	}
	if input.ClientID != nil {
		if *input.ClientID == "" {
			task.ClientID = nil
		} else {
			clientUUID, err := uuid.Parse(*input.ClientID)
			if err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
				return
			}
			task.ClientID = &clientUUID
		}
	}

	if err := config.DB.Save(&task).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// MoveTask moves a task between kanban columns
func MoveTask(c *gin.Context) {
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

	taskUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	var input MoveTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !validTaskStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Status must be todo, in_progress or done")
		return
	}

	var task models.Task
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, taskUUID).
		First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Task not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	task.Status = input.Status
	task.Position = input.Position

	if err := config.DB.Save(&task).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to move task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task by ID
func DeleteTask(c *gin.Context) {
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

	taskUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userUUID, taskUUID).
		Delete(&models.Task{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete task")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Task not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
