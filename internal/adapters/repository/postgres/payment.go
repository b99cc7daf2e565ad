package postgres

import (
	"context"
	"fmt"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/port"
)

type sqlPaymentRepository struct {
	db SQLQuerier
}

// NewSqlPaymentRepository creates sqlPaymentRepository that implements port.PaymentRepository
func NewSqlPaymentRepository(db SQLQuerier) port.PaymentRepository {
	return &sqlPaymentRepository{
		db: db,
	}
}

// UpdateStatusByCorrelationID updates the payment row the processor's
// confirmation message points at
func (s *sqlPaymentRepository) UpdateStatusByCorrelationID(ctx context.Context, correlationID string, status domain.PaymentStatus) error {
	query := `UPDATE payments
              SET status = $1, updated_at = now()
              WHERE correlation_id = $2`

	result, err := s.db.ExecContext(ctx, query, status, correlationID)
	if err != nil {
		return fmt.Errorf("%w: error updating payment: %w", domain.ErrPersistence, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: error checking rows affected: %w", domain.ErrPersistence, err)
	}

	if rowsAffected == 0 {
		return domain.ErrPaymentNotFound
	}

	return nil
}
