package payment_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/realtime"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/repository"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/service/payment"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPaymentEventService_HandleMessage_Succeeded(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockPaymentRepository()
	mockBus := realtime.NewMockEventBus()
	service := payment.NewPaymentEventService(mockRepo, mockBus, newTestLogger())

	mockRepo.On("UpdateStatusByCorrelationID", ctx, "corr-1", domain.PaymentStatusConfirmed).Return(nil)
	mockBus.On("EmitToUser", int64(42), mock.MatchedBy(func(ev domain.Event) bool {
		return ev.Type == domain.EventTypePaymentUpdated
	})).Return()
	mockBus.On("EmitToAdmins", mock.MatchedBy(func(ev domain.Event) bool {
		return ev.Type == domain.EventTypePaymentUpdated
	})).Return()

	// Act
	err := service.HandleMessage(ctx, []byte(`{"correlationId":"corr-1","status":"succeeded","userId":42}`))

	// Assert
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockBus.AssertExpectations(t)
}

func TestPaymentEventService_HandleMessage_FailedStatus(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockPaymentRepository()
	mockBus := realtime.NewMockEventBus()
	service := payment.NewPaymentEventService(mockRepo, mockBus, newTestLogger())

	mockRepo.On("UpdateStatusByCorrelationID", ctx, "corr-2", domain.PaymentStatusFailed).Return(nil)
	mockBus.On("EmitToUser", int64(7), mock.Anything).Return()
	mockBus.On("EmitToAdmins", mock.Anything).Return()

	// Act
	err := service.HandleMessage(ctx, []byte(`{"correlationId":"corr-2","status":"card_declined","userId":7}`))

	// Assert
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestPaymentEventService_HandleMessage_MalformedPayload(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockPaymentRepository()
	mockBus := realtime.NewMockEventBus()
	service := payment.NewPaymentEventService(mockRepo, mockBus, newTestLogger())

	// Act
	err := service.HandleMessage(ctx, []byte(`not json`))

	// Assert: rejected before any write or emit, so the broker redelivers
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "UpdateStatusByCorrelationID", mock.Anything, mock.Anything, mock.Anything)
	mockBus.AssertNotCalled(t, "EmitToUser", mock.Anything, mock.Anything)
}

func TestPaymentEventService_HandleMessage_MissingCorrelationID(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockPaymentRepository()
	mockBus := realtime.NewMockEventBus()
	service := payment.NewPaymentEventService(mockRepo, mockBus, newTestLogger())

	// Act
	err := service.HandleMessage(ctx, []byte(`{"status":"succeeded","userId":42}`))

	// Assert
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "UpdateStatusByCorrelationID", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentEventService_HandleMessage_RepositoryError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockPaymentRepository()
	mockBus := realtime.NewMockEventBus()
	service := payment.NewPaymentEventService(mockRepo, mockBus, newTestLogger())

	mockRepo.On("UpdateStatusByCorrelationID", ctx, "corr-3", domain.PaymentStatusConfirmed).
		Return(domain.ErrPaymentNotFound)

	// Act
	err := service.HandleMessage(ctx, []byte(`{"correlationId":"corr-3","status":"succeeded","userId":42}`))

	// Assert: no fan-out for a write that did not land
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	mockBus.AssertNotCalled(t, "EmitToUser", mock.Anything, mock.Anything)
	mockBus.AssertNotCalled(t, "EmitToAdmins", mock.Anything)
}
