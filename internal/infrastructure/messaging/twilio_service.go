package messaging

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	twilioLookups "github.com/twilio/twilio-go/rest/lookups/v2"

	"github.com/you/remindersvc/domain"
)

// TwilioGateway implements domain.MessagingGateway over Twilio's messaging
// API. WhatsApp delivery uses the whatsapp: channel address form; number
// verification goes through Lookups; contact cards are rendered as vCard
// message bodies.
type TwilioGateway struct {
	client      *twilio.RestClient
	fromNumber  string
	countryCode string
}

// NewTwilioGateway creates a new Twilio-backed messaging gateway
func NewTwilioGateway(accountSID, authToken, fromNumber, countryCode string) domain.MessagingGateway {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioGateway{
		client:      client,
		fromNumber:  fromNumber,
		countryCode: countryCode,
	}
}

// SendText implements domain.MessagingGateway
func (g *TwilioGateway) SendText(ctx context.Context, phone, message string, delayMs int) error {
	to := NormalizePhone(phone, g.countryCode)

	// credentials not configured: log instead of sending
	if g.fromNumber == "" {
		log.Printf("[MOCK WHATSAPP] To: %s, Message: %s", to, message)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:+" + to)
	params.SetFrom("whatsapp:" + g.fromNumber)
	params.SetBody(message)
	if delayMs > 0 {
		params.SetScheduleType("fixed")
		params.SetSendAt(time.Now().Add(time.Duration(delayMs) * time.Millisecond))
	}

	if _, err := g.client.Api.CreateMessage(params); err != nil {
		return &domain.GatewayError{Detail: "failed to send message", Err: err}
	}
	return nil
}

// VerifyNumbers implements domain.MessagingGateway
func (g *TwilioGateway) VerifyNumbers(ctx context.Context, numbers []string) ([]domain.NumberCheck, error) {
	checks := make([]domain.NumberCheck, 0, len(numbers))
	for _, raw := range numbers {
		number := NormalizePhone(raw, g.countryCode)

		if g.fromNumber == "" {
			log.Printf("[MOCK LOOKUP] Number: %s", number)
			checks = append(checks, domain.NumberCheck{Number: number, Exists: true, JID: jid(number)})
			continue
		}

		result, err := g.client.LookupsV2.FetchPhoneNumber("+"+number, &twilioLookups.FetchPhoneNumberParams{})
		if err != nil {
			return nil, &domain.GatewayError{Detail: fmt.Sprintf("lookup failed for %s", number), Err: err}
		}
		exists := result.Valid != nil && *result.Valid
		check := domain.NumberCheck{Number: number, Exists: exists}
		if exists {
			check.JID = jid(number)
		}
		checks = append(checks, check)
	}
	return checks, nil
}

// SendContact implements domain.MessagingGateway
func (g *TwilioGateway) SendContact(ctx context.Context, phone string, card domain.ContactCard) error {
	to := NormalizePhone(phone, g.countryCode)
	body := vCard(card)

	if g.fromNumber == "" {
		log.Printf("[MOCK CONTACT] To: %s, Card: %s (%s)", to, card.Name, card.Number)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:+" + to)
	params.SetFrom("whatsapp:" + g.fromNumber)
	params.SetBody(body)

	if _, err := g.client.Api.CreateMessage(params); err != nil {
		return &domain.GatewayError{Detail: "failed to send contact card", Err: err}
	}
	return nil
}

func jid(number string) string {
	return number + "@s.whatsapp.net"
}

func vCard(card domain.ContactCard) string {
	return fmt.Sprintf(
		"BEGIN:VCARD\nVERSION:3.0\nFN:%s\nTEL;type=CELL:+%s\nEND:VCARD",
		card.Name, card.Number,
	)
}
