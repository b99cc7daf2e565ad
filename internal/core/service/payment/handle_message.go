package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
)

// HandleMessage reconciles one confirmation from the payment processor:
// update the payment row the correlation id points at, then fan the change
// out to the paying user and the admin dashboard.
func (p *paymentEventService) HandleMessage(ctx context.Context, data []byte) error {
	var confirmation domain.PaymentConfirmation
	if err := json.Unmarshal(data, &confirmation); err != nil {
		return fmt.Errorf("could not unmarshal payment confirmation: %w", err)
	}
	if confirmation.CorrelationID == "" {
		return fmt.Errorf("payment confirmation without correlation id")
	}

	status := domain.PaymentStatusFailed
	if confirmation.Status == "succeeded" {
		status = domain.PaymentStatusConfirmed
	}

	if err := p.payments.UpdateStatusByCorrelationID(ctx, confirmation.CorrelationID, status); err != nil {
		return err
	}

	p.logger.Info("payment confirmation handled",
		"correlationID", confirmation.CorrelationID, "status", status)

	event := domain.Event{
		Type:    domain.EventTypePaymentUpdated,
		Payload: confirmation,
	}
	p.bus.EmitToUser(confirmation.UserID, event)
	p.bus.EmitToAdmins(event)

	return nil
}
