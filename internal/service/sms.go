package service

import (
	"context"
	"fmt"
	"time"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type twilioSMSSender struct {
	client *twilio.RestClient
	from   string
}

func NewSMSSender(accountSID, authToken, from string) SMSSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &twilioSMSSender{client: client, from: from}
}

func (s *twilioSMSSender) SendVerificationCode(ctx context.Context, phone, code string, ttl time.Duration) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.from)
	params.SetBody(fmt.Sprintf("Your verification code is: %s. This code expires in %d minutes.",
		code, int(ttl.Minutes())))

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}
