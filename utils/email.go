package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"bakeshop/models"
)

// EmailService sends transactional mail through SendGrid.
type EmailService struct {
	client  *sendgrid.Client
	sender  string
	baseURL string
}

// NewEmailService builds an email service. Returns nil when no API key
// is configured; callers treat a nil service as "email disabled".
func NewEmailService(apiKey, sender, baseURL string) *EmailService {
	if apiKey == "" {
		return nil
	}
	return &EmailService{
		client:  sendgrid.NewSendClient(apiKey),
		sender:  sender,
		baseURL: baseURL,
	}
}

// SendEmail sends a single HTML email to the recipient.
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	from := mail.NewEmail("Bakeshop", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	response, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: status %d", response.StatusCode)
	}
	return nil
}

// SendVerificationEmail sends an email verification link to the user.
func (es *EmailService) SendVerificationEmail(toEmail, token string) error {
	subject := "Verify Your Email"
	verificationLink := fmt.Sprintf("%s/verify?token=%s", es.baseURL, token)
	htmlContent := fmt.Sprintf(
		"<strong>Please verify your email by clicking on the following link:</strong> <a href=\"%s\">Verify Email</a>",
		verificationLink,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}

// SendOrderConfirmationEmail sends an order confirmation to the user.
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order *models.Order) error {
	subject := "Order Confirmation - Bakeshop"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your order! Your order (ID: %s) has been placed and is pending confirmation.<br><br>Subtotal: <strong>₹%.2f</strong><br>Tax: <strong>₹%.2f</strong><br>Discount: <strong>₹%.2f</strong><br>Total: <strong>₹%.2f</strong><br><br>Thank you for shopping with us!",
		order.UserProfile.Name,
		order.ID.Hex(),
		order.Subtotal,
		order.Tax,
		order.DiscountAmount,
		order.Total,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
