package controllers

import (
	"fmt"
	"net/http"
	"time"

	"daybook-backend/calendar"
	"daybook-backend/config"
	"daybook-backend/models"
	"daybook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DashboardOverview struct {
	TotalClients      int               `json:"totalClients"`
	OpenTasks         int               `json:"openTasks"`
	EventsThisMonth   int               `json:"eventsThisMonth"`
	MinutesThisWeek   int               `json:"minutesThisWeek"`
	MonthlyCost       float64           `json:"monthlyCost"`
	RunningTimer      *models.TimeEntry `json:"runningTimer"`
	UpcomingReminders []DueReminder     `json:"upcomingReminders"`
}

type DueReminder struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Due   string `json:"due"` // e.g. "Today", "Tomorrow", "3 days"
}

func dueLabel(today, date time.Time) string {
	switch days := calendar.DaysBetween(today, date); {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// GetDashboardOverview assembles the home-screen summary
func GetDashboardOverview(c *gin.Context) {
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

	overview := DashboardOverview{UpcomingReminders: []DueReminder{}}

	// Total clients
	var totalClients int64
	config.DB.Model(&models.Client{}).Where("user_id = ?", userUUID).Count(&totalClients)
	overview.TotalClients = int(totalClients)

	// Open kanban tasks
	var openTasks int64
	config.DB.Model(&models.Task{}).
		Where("user_id = ? AND status <> ?", userUUID, "done").Count(&openTasks)
	overview.OpenTasks = int(openTasks)

	// Events overlapping the current month
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
	var eventsThisMonth int64
	config.DB.Model(&models.Event{}).
		Where("user_id = ? AND start_date <= ? AND end_date >= ?",
			userUUID, calendar.FormatDate(lastOfMonth), calendar.FormatDate(firstOfMonth)).
		Count(&eventsThisMonth)
	overview.EventsThisMonth = int(eventsThisMonth)

	// Minutes tracked in the last 7 days
	var minutes int64
	config.DB.Model(&models.TimeEntry{}).
		Where("user_id = ? AND date >= ?", userUUID, calendar.FormatDate(now.AddDate(0, 0, -6))).
		Select("COALESCE(SUM(duration_minutes), 0)").Scan(&minutes)
	overview.MinutesThisWeek = int(minutes)

	// Active subscriptions, normalized to a monthly figure
	var subscriptions []models.Subscription
	config.DB.Where("user_id = ? AND is_active = ?", userUUID, true).Find(&subscriptions)
	for i := range subscriptions {
		overview.MonthlyCost += subscriptions[i].MonthlyCost()
	}

	// Currently running timer, if any
	var running models.TimeEntry
	if err := config.DB.Preload("Client").
		Where("user_id = ? AND is_running = ?", userUUID, true).
		First(&running).Error; err == nil {
		overview.RunningTimer = &running
	}

	// Reminders due within the next 7 days
	today := calendar.BeginningOfDay(now)
	var reminders []models.Reminder
	config.DB.Where("user_id = ? AND is_completed = ? AND date >= ? AND date <= ?",
		userUUID, false, calendar.FormatDate(today), calendar.FormatDate(today.AddDate(0, 0, 7))).
		Order("date").Limit(7).Find(&reminders)
	for _, r := range reminders {
		date, err := calendar.ParseDate(r.Date)
		if err != nil {
			continue
		}
		overview.UpcomingReminders = append(overview.UpcomingReminders, DueReminder{
			ID:    r.ID.String(),
			Title: r.Title,
			Date:  r.Date,
			Due:   dueLabel(today, date),
		})
	}

	c.JSON(http.StatusOK, overview)
}
