package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

type Service interface {
	HandlePaymentVerified(ctx context.Context, paymentReference string) error
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

type PaymentVerifiedEvent struct {
	PaymentReference string `json:"payment_reference"`
	Amount           string `json:"amount"`
	Provider         string `json:"provider"`
}

// OnPaymentVerified moves the matching candidate registration from pending
// payment verification to verified. Unknown references are logged and
// dropped so the consumer keeps moving.
func (h *EventHandler) OnPaymentVerified(ctx context.Context, msg kafka.Message) error {
	var event PaymentVerifiedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.PaymentReference == "" {
		return nil
	}

	err = h.s.HandlePaymentVerified(ctx, event.PaymentReference)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(ctx, "payment reference does not match a pending registration",
				"payment_reference", event.PaymentReference)
			return nil
		}

		return fmt.Errorf("handle verified payment: %w", err)
	}

	return nil
}
