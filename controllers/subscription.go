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

type CreateSubscriptionInput struct {
	Name         string   `json:"name" binding:"required"`
	Purpose      string   `json:"purpose"`
	LoginEmail   string   `json:"login_email"`
	Cost         *float64 `json:"cost"`
	BillingCycle string   `json:"billing_cycle"`
	Notes        string   `json:"notes"`
}

type UpdateSubscriptionInput struct {
	Name         *string  `json:"name"`
	Purpose      *string  `json:"purpose"`
	LoginEmail   *string  `json:"login_email"`
	Cost         *float64 `json:"cost"`
	BillingCycle *string  `json:"billing_cycle"`
	Notes        *string  `json:"notes"`
}

func validBillingCycle(cycle string) bool {
	return cycle == "monthly" || cycle == "yearly"
}

// CreateSubscription records a recurring service
func CreateSubscription(c *gin.Context) {
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

	var input CreateSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.BillingCycle == "" {
		input.BillingCycle = "monthly"
	}
	if !validBillingCycle(input.BillingCycle) {
		utils.RespondWithError(c, http.StatusBadRequest, "Billing cycle must be monthly or yearly")
		return
	}
	if input.Cost != nil && *input.Cost < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Cost cannot be negative")
		return
	}

	subscription := models.Subscription{
		ID:           uuid.New(),
		UserID:       userUUID,
		Name:         input.Name,
		Purpose:      input.Purpose,
		LoginEmail:   input.LoginEmail,
		Cost:         input.Cost,
		BillingCycle: input.BillingCycle,
		IsActive:     true,
		Notes:        input.Notes,
	}

	if err := config.DB.Create(&subscription).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create subscription")
		return
	}

	c.JSON(http.StatusCreated, subscription)
}

// GetSubscriptions retrieves all subscriptions plus a monthly cost summary
// over the active ones
func GetSubscriptions(c *gin.Context) {
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

	var subscriptions []models.Subscription
	if err := config.DB.Where("user_id = ?", userUUID).Order("name").
		Find(&subscriptions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve subscriptions")
		return
	}

	var monthlyCost float64
	activeCount := 0
	for i := range subscriptions {
		if subscriptions[i].IsActive {
			activeCount++
			monthlyCost += subscriptions[i].MonthlyCost()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"subscriptions": subscriptions,
		"active_count":  activeCount,
		"monthly_cost":  monthlyCost,
	})
}

// UpdateSubscription updates an existing subscription
func UpdateSubscription(c *gin.Context) {
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

	subscriptionUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid subscription ID format")
		return
	}

	var input UpdateSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var subscription models.Subscription
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, subscriptionUUID).
		First(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Subscription not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		subscription.Name = *input.Name
	}
	if input.Purpose != nil {
		subscription.Purpose = *input.Purpose
	}
	if input.LoginEmail != nil {
		subscription.LoginEmail = *input.LoginEmail
	}
	if input.Cost != nil {
		if *input.Cost < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Cost cannot be negative")
			return
		}
		subscription.Cost = input.Cost
	}
	if input.BillingCycle != nil {
		if !validBillingCycle(*input.BillingCycle) {
			utils.RespondWithError(c, http.StatusBadRequest, "Billing cycle must be monthly or yearly")
			return
		}
		subscription.BillingCycle = *input.BillingCycle
	}
	if input.Notes != nil {
		subscription.Notes = *input.Notes
	}

	if err := config.DB.Save(&subscription).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update subscription")
		return
	}

	c.JSON(http.StatusOK, subscription)
}

// ToggleSubscription flips a subscription between active and cancelled
func ToggleSubscription(c *gin.Context) {
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

	subscriptionUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid subscription ID format")
		return
	}

	var subscription models.Subscription
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, subscriptionUUID).
		First(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Subscription not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	subscription.IsActive = !subscription.IsActive
	if err := config.DB.Save(&subscription).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to toggle subscription")
		return
	}

	c.JSON(http.StatusOK, subscription)
}

// DeleteSubscription removes a subscription by ID
func DeleteSubscription(c *gin.Context) {
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

	subscriptionUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid subscription ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userUUID, subscriptionUUID).
		Delete(&models.Subscription{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete subscription")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Subscription not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription deleted successfully"})
}
