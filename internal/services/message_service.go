package services

import (
	"context"

	"github.com/you/remindersvc/domain"
)

// MessageServiceImpl implements domain.MessageService over the messaging
// gateway. Calls are synchronous; a gateway failure surfaces immediately.
type MessageServiceImpl struct {
	gateway domain.MessagingGateway
}

// NewMessageService creates a new message service
func NewMessageService(gateway domain.MessagingGateway) domain.MessageService {
	return &MessageServiceImpl{gateway: gateway}
}

// SendWhatsApp implements domain.MessageService
func (s *MessageServiceImpl) SendWhatsApp(ctx context.Context, phone, message string, delayMs int) error {
	if phone == "" {
		return domain.NewValidationError("telefone", "is required")
	}
	if message == "" {
		return domain.NewValidationError("mensagem", "is required")
	}
	return s.gateway.SendText(ctx, phone, message, delayMs)
}

// VerifyNumbers implements domain.MessageService
func (s *MessageServiceImpl) VerifyNumbers(ctx context.Context, numbers []string) ([]domain.NumberCheck, error) {
	if len(numbers) == 0 {
		return nil, domain.NewValidationError("numeros", "is required")
	}
	return s.gateway.VerifyNumbers(ctx, numbers)
}

// SendContact implements domain.MessageService
func (s *MessageServiceImpl) SendContact(ctx context.Context, phone string, card domain.ContactCard) error {
	if phone == "" {
		return domain.NewValidationError("telefone", "is required")
	}
	if card.Name == "" {
		return domain.NewValidationError("nome", "is required")
	}
	if card.Number == "" {
		return domain.NewValidationError("numero", "is required")
	}
	return s.gateway.SendContact(ctx, phone, card)
}
