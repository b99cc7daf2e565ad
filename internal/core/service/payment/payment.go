package payment

import (
	"log/slog"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/port"
)

type paymentEventService struct {
	payments port.PaymentRepository
	bus      port.EventBus
	logger   *slog.Logger
}

// NewPaymentEventService creates the handler for payment processor
// confirmation messages arriving over the event broker
func NewPaymentEventService(payments port.PaymentRepository, bus port.EventBus, logger *slog.Logger) port.MessageService {
	return &paymentEventService{
		payments: payments,
		bus:      bus,
		logger:   logger,
	}
}
