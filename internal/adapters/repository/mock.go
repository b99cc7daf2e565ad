package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
)

// MockListingRepository is a mock implementation of port.ListingRepository
type MockListingRepository struct {
	mock.Mock
}

// NewMockListingRepository creates a new MockListingRepository
func NewMockListingRepository() *MockListingRepository {
	return &MockListingRepository{}
}

func (m *MockListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingRepository) UpdateBannerURL(ctx context.Context, id string, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

func (m *MockListingRepository) UpdateAssetFile(ctx context.Context, id string, remoteID string) error {
	args := m.Called(ctx, id, remoteID)
	return args.Error(0)
}

func (m *MockListingRepository) AppendShowcaseURL(ctx context.Context, id string, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

// MockPaymentRepository is a mock implementation of port.PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

// NewMockPaymentRepository creates a new MockPaymentRepository
func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{}
}

func (m *MockPaymentRepository) UpdateStatusByCorrelationID(ctx context.Context, correlationID string, status domain.PaymentStatus) error {
	args := m.Called(ctx, correlationID, status)
	return args.Error(0)
}
