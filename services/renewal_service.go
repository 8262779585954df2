// services/renewal_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"daybook-backend/calendar"
	"daybook-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// RenewalService scans for reminders coming due and active subscriptions,
// logs a daily digest per user and optionally sends it by SMS when Twilio
// credentials are configured.
type RenewalService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewRenewalService(db *gorm.DB) *RenewalService {
	// Initialize Twilio client; harmless when credentials are empty,
	// sending is skipped in that case.
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &RenewalService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *RenewalService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyDigests)

	c.Start()
	log.Println("Renewal scheduler started")
}

func (s *RenewalService) SendDailyDigests() {
	log.Println("Starting daily digest processing...")

	var users []models.User
	if err := s.db.Find(&users, "is_active = ?", true).Error; err != nil {
		log.Printf("Failed to fetch users: %v", err)
		return
	}

	for _, user := range users {
		s.ProcessUserDigest(user)
	}

	log.Println("Daily digest processing completed")
}

func (s *RenewalService) ProcessUserDigest(user models.User) {
	reminders, err := s.upcomingReminders(user)
	if err != nil {
		log.Printf("User %s: failed to get upcoming reminders: %v", user.ID, err)
		return
	}

	var monthlyCost float64
	var subscriptions []models.Subscription
	if err := s.db.Where("user_id = ? AND is_active = ?", user.ID, true).
		Find(&subscriptions).Error; err != nil {
		log.Printf("User %s: failed to get subscriptions: %v", user.ID, err)
		return
	}
	for i := range subscriptions {
		monthlyCost += subscriptions[i].MonthlyCost()
	}

	if len(reminders) == 0 {
		return
	}

	message := fmt.Sprintf("Daybook: %d reminder(s) in the next 7 days.", len(reminders))
	for _, r := range reminders {
		message += fmt.Sprintf("\n- %s on %s", r.Title, r.Date)
	}
	message += fmt.Sprintf("\nActive subscriptions: %d (%.2f/month)", len(subscriptions), monthlyCost)

	log.Printf("User %s digest: %d reminders, %d subscriptions", user.ID, len(reminders), len(subscriptions))
	s.sendSMS(user, message)
}

func (s *RenewalService) upcomingReminders(user models.User) ([]models.Reminder, error) {
	today := calendar.FormatDate(time.Now())
	cutoff := calendar.FormatDate(time.Now().AddDate(0, 0, 7))

	var reminders []models.Reminder
	err := s.db.Where("user_id = ? AND is_completed = ? AND date >= ? AND date <= ?",
		user.ID, false, today, cutoff).
		Order("date").Find(&reminders).Error
	return reminders, err
}

func (s *RenewalService) sendSMS(user models.User, body string) {
	from := os.Getenv("TWILIO_FROM_NUMBER")
	to := os.Getenv("DIGEST_PHONE_NUMBER")
	if os.Getenv("TWILIO_ACCOUNT_SID") == "" || from == "" || to == "" {
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("User %s: failed to send digest SMS: %v", user.ID, err)
	}
}
