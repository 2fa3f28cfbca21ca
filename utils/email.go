// utils/email.go
package utils

import (
	"fmt"

	"github.com/keighl/postmark"

	"food-delivery-api/models"
)

// Mailer delivers order-lifecycle notification mail.
type Mailer interface {
	SendEmail(toEmail, subject, htmlContent string) error
}

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance.
// Returns nil when no API token is configured; order processing works
// without mail.
func NewEmailService(apiToken, sender string) *EmailService {
	if apiToken == "" {
		return nil
	}
	client := postmark.NewClient(apiToken, "")
	return &EmailService{
		client: client,
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// PaymentConfirmedEmail builds the mail sent once an order's payment is
// verified.
func PaymentConfirmedEmail(user *models.User, order *models.Order) (subject, body string) {
	subject = "Payment Successful - Food Delivery"
	body = fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>We have received your payment for order <strong>%s</strong>.<br><br>Total Amount: <strong>$%.2f</strong><br>Status: <strong>%s</strong><br><br>Thank you for ordering with us!",
		user.Name,
		order.ID.Hex(),
		order.Amount,
		order.Status,
	)
	return subject, body
}

// StatusUpdatedEmail builds the mail sent when an admin changes an order's
// status.
func StatusUpdatedEmail(user *models.User, order *models.Order) (subject, body string) {
	subject = "Order Status Updated - Food Delivery"
	body = fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Your order (ID: %s) status has been updated to '<strong>%s</strong>'.<br><br>Thank you for ordering with us!",
		user.Name,
		order.ID.Hex(),
		order.Status,
	)
	return subject, body
}
