// controllers/calendar.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"daybook-backend/calendar"
	"daybook-backend/config"
	"daybook-backend/services"
	"daybook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientStyle is a client plus the chip colors derived from its base color.
type ClientStyle struct {
	calendar.Client
	EventColors map[string]string `json:"event_colors"`
	BorderColor string            `json:"border_color"`
}

// CalendarView is the full month view: the day-cell grid plus the
// statistics panel data.
type CalendarView struct {
	Year         int                        `json:"year"`
	Month        int                        `json:"month"`
	MonthName    string                     `json:"month_name"`
	WeekDays     []string                   `json:"week_days"`
	Cells        []calendar.DayCell         `json:"cells"`
	TypeTotals   calendar.Totals            `json:"type_totals"`
	ClientTotals map[string]calendar.Totals `json:"client_totals"`
	Clients      []ClientStyle              `json:"clients"`
}

// GetCalendarMonth serves the month grid and statistics, filtered by the
// optional client and type query parameters.
func GetCalendarMonth(c *gin.Context) {
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

	now := time.Now()
	year := now.Year()
	month := int(now.Month())
	if q := c.Query("year"); q != "" {
		if year, err = strconv.Atoi(q); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid year")
			return
		}
	}
	if q := c.Query("month"); q != "" {
		if month, err = strconv.Atoi(q); err != nil || month < 1 || month > 12 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid month")
			return
		}
	}

	store := services.NewCalendarStore(config.DB, userUUID)
	co := calendar.NewCoordinator(store, time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local))
	if err := co.Refresh(); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load calendar data")
		return
	}

	if q := c.Query("client"); q != "" {
		co.SetClientFilter(q)
	}
	if q := c.Query("type"); q != "" {
		co.SetTypeFilter(q)
	}

	clients := co.Clients()
	styles := make([]ClientStyle, len(clients))
	for i, cl := range clients {
		styles[i] = ClientStyle{
			Client: cl,
			EventColors: map[string]string{
				"hold": calendar.EventColor(cl.Color, calendar.EventHold),
				"book": calendar.EventColor(cl.Color, calendar.EventBook),
				"paid": calendar.EventColor(cl.Color, calendar.EventPaid),
			},
			BorderColor: calendar.EventBorderColor(cl.Color, calendar.EventBook),
		}
	}

	view := CalendarView{
		Year:         co.Year(),
		Month:        int(co.Month()),
		MonthName:    co.Month().String(),
		WeekDays:     []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Cells:        co.Cells(now),
		TypeTotals:   co.TypeTotals(),
		ClientTotals: co.ClientTotals(),
		Clients:      styles,
	}

	c.JSON(http.StatusOK, view)
}

// GetCalendarStats serves just the statistics panel for the current
// filter selection.
func GetCalendarStats(c *gin.Context) {
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

	store := services.NewCalendarStore(config.DB, userUUID)
	co := calendar.NewCoordinator(store, time.Now())
	if err := co.Refresh(); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load calendar data")
		return
	}

	if q := c.Query("client"); q != "" {
		co.SetClientFilter(q)
	}
	if q := c.Query("type"); q != "" {
		co.SetTypeFilter(q)
	}

	c.JSON(http.StatusOK, gin.H{
		"type_totals":   co.TypeTotals(),
		"client_totals": co.ClientTotals(),
	})
}
