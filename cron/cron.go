package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dineopen/reservation-app/db"
	"github.com/dineopen/reservation-app/models"
	"github.com/dineopen/reservation-app/utils"
)

// StartCronJobs initializes and starts the scheduler for reservation
// reminders and end-of-day bookkeeping
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for reservations in the next hour
	if _, err := c.AddFunc("* * * * *", sendReservationReminders); err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	// Mark yesterday's confirmed reservations completed overnight
	if _, err := c.AddFunc("30 3 * * *", completePastReservations); err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started")
}

// sendReservationReminders checks for upcoming reservations and emails guests
func sendReservationReminders() {
	var reservations []models.Reservation
	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.
		Where("status = ? AND reservation_time BETWEEN ? AND ?", models.StatusConfirmed, startWindow, endWindow).
		Find(&reservations).Error
	if err != nil {
		log.Printf("Error fetching reservations for reminders: %v", err)
		return
	}

	for _, reservation := range reservations {
		if err := sendReminderEmail(&reservation); err != nil {
			log.Printf("Failed to send reminder for reservation %d: %v", reservation.ID, err)
			continue
		}
		log.Printf("Sent reminder for reservation %d to %s", reservation.ID, reservation.CustomerEmail)
	}
}

// completePastReservations transitions stale confirmed reservations so they
// stop counting toward conflicts
func completePastReservations() {
	cutoff := time.Now().Add(-24 * time.Hour)
	var reservations []models.Reservation
	err := db.DB.
		Where("status = ? AND reservation_time < ?", models.StatusConfirmed, cutoff).
		Find(&reservations).Error
	if err != nil {
		log.Printf("Error fetching stale reservations: %v", err)
		return
	}

	for i := range reservations {
		if err := reservations[i].UpdateStatus(db.DB, models.StatusCompleted); err != nil {
			log.Printf("Failed to complete reservation %d: %v", reservations[i].ID, err)
		}
	}
	if len(reservations) > 0 {
		log.Printf("Completed %d past reservations", len(reservations))
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(reservation *models.Reservation) error {
	subject := "Reminder: your table is booked for tonight"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your reservation in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Party size:</strong> %d</li>
			<li><strong>Confirmation code:</strong> %s</li>
		</ul>
		<p>If you need to cancel, please use your confirmation code as soon as possible.</p>
	`, reservation.CustomerName,
		reservation.ReservationTime.In(utils.AppLocation()).Format("2006-01-02 15:04"),
		reservation.PartySize,
		reservation.Code)

	return utils.SendEmail(reservation.CustomerEmail, subject, body)
}
