package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strconv"

	"github.com/joy095/rental/config"
	"github.com/joy095/rental/logger"
	gomail "gopkg.in/gomail.v2"
)

const bookingConfirmedTemplate = "templates/email/booking_confirmed.html"

func init() {
	config.LoadEnv()
}

// BookingConfirmationData feeds the confirmation email template.
type BookingConfirmationData struct {
	UserName    string
	VehicleName string
	StartDate   string
	EndDate     string
	TotalDays   int
	TotalAmount string
}

func sendEmail(toEmail, subject, templatePath string, data interface{}) error {
	mailer := gomail.NewMessage()
	mailer.SetHeader("From", os.Getenv("FROM_EMAIL"))
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)

	t, err := template.ParseFiles(templatePath)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to parse email template %s: %v", templatePath, err)
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		logger.ErrorLogger.Errorf("Failed to execute email template %s: %v", templatePath, err)
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	mailer.SetBody("text/html", body.String())

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASS"),
	)

	if err := dialer.DialAndSend(mailer); err != nil {
		logger.ErrorLogger.Errorf("Failed to send email to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.InfoLogger.Infof("Email sent to %s: %s", toEmail, subject)
	return nil
}

// SendBookingConfirmation emails the requester when an admin confirms their
// booking. Best effort: callers log and continue on failure.
func SendBookingConfirmation(toEmail string, data BookingConfirmationData) error {
	if os.Getenv("SMTP_HOST") == "" {
		logger.WarnLogger.Warn("SMTP_HOST not set, skipping booking confirmation email")
		return nil
	}
	return sendEmail(toEmail, "Your booking is confirmed", bookingConfirmedTemplate, data)
}
