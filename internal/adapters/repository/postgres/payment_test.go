package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
)

func TestSqlPaymentRepository_UpdateStatusByCorrelationID(t *testing.T) {
	db, cleanup, truncateAll := NewTestDB(t)
	defer cleanup()

	repo := NewSqlPaymentRepository(db)
	ctx := context.Background()

	t.Run("updates the row the correlation id points at", func(t *testing.T) {
		truncateAll()
		_, err := db.ExecContext(ctx,
			`INSERT INTO payments (correlation_id, user_id, status) VALUES ($1, $2, $3)`,
			"corr-1", 42, domain.PaymentStatusPending)
		require.NoError(t, err)

		err = repo.UpdateStatusByCorrelationID(ctx, "corr-1", domain.PaymentStatusConfirmed)
		require.NoError(t, err)

		var status string
		require.NoError(t, db.QueryRowContext(ctx,
			`SELECT status FROM payments WHERE correlation_id = $1`, "corr-1").Scan(&status))
		assert.Equal(t, string(domain.PaymentStatusConfirmed), status)
	})

	t.Run("unknown correlation id returns ErrPaymentNotFound", func(t *testing.T) {
		truncateAll()

		err := repo.UpdateStatusByCorrelationID(ctx, "missing", domain.PaymentStatusConfirmed)
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})
}
