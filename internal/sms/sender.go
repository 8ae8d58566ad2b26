// Package sms delivers password-recovery messages. The concrete channel
// is Twilio; callers only see the Sender interface so tests and
// credential-less deployments swap in a stub.
package sms

import (
	"fmt"

	"github.com/arpandhara/mini-banking-system/internal/config"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Sender delivers a short text message to a 10-digit local phone number.
type Sender interface {
	Send(phone, body string) error
	Enabled() bool
}

// TwilioSender sends through the Twilio REST API.
type TwilioSender struct {
	client      *twilio.RestClient
	from        string
	countryCode string
}

// NewFromConfig builds a Sender from the sms config section. Missing
// credentials yield a disabled sender rather than an error, mirroring how
// the recovery flow degrades when no SMS channel is configured.
func NewFromConfig(cfg config.SMSConfig) Sender {
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		return Disabled{}
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioSender{
		client:      client,
		from:        cfg.From,
		countryCode: cfg.CountryCode,
	}
}

func (s *TwilioSender) Enabled() bool { return true }

func (s *TwilioSender) Send(phone, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(s.countryCode + phone)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	return nil
}

// Disabled is the no-channel fallback.
type Disabled struct{}

func (Disabled) Enabled() bool { return false }

func (Disabled) Send(string, string) error {
	return fmt.Errorf("sms channel not configured")
}
