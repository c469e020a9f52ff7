package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"church-inventory-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridEmailSender struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailSender(apiKey, fromEmail, fromName string) EmailSender {
	return &sendgridEmailSender{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendgridEmailSender) SendVerificationCode(ctx context.Context, email, code string, ttl time.Duration) error {
	body := fmt.Sprintf(
		"Your email verification code is: %s\n\nThis code expires in %d minutes.\n\nIf you didn't request this code, please ignore this email.",
		code, int(ttl.Minutes()))
	return s.send(email, "Email Verification Code", body)
}

func (s *sendgridEmailSender) SendOverdueSummary(ctx context.Context, email string, overdue []domain.Checkout) error {
	var b strings.Builder
	fmt.Fprintf(&b, "The following equipment is overdue for return:\n\n")
	now := time.Now().UTC()
	for _, co := range overdue {
		fmt.Fprintf(&b, "- %s, checked out by %s on %s (out %d days, expected back %s)\n",
			co.EquipmentName,
			co.CheckedOutBy,
			co.CheckedOutAt.Format("2006-01-02"),
			co.DurationDays(now),
			co.ExpectedReturnDate.Format("2006-01-02"))
	}
	return s.send(email, "Overdue Equipment Summary", b.String())
}

func (s *sendgridEmailSender) send(to, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
