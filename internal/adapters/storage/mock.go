package storage

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
)

// MockStorage is a mock implementation of port.ObjectStorage
type MockStorage struct {
	mock.Mock
}

// NewMockStorage creates a new MockStorage
func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) Upload(ctx context.Context, localPath, displayName, mimeType string, isPublic bool) (*domain.UploadResult, error) {
	args := m.Called(ctx, localPath, displayName, mimeType, isPublic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadResult), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, remoteID string) error {
	args := m.Called(ctx, remoteID)
	return args.Error(0)
}

func (m *MockStorage) FetchStream(ctx context.Context, remoteID string) (io.ReadCloser, error) {
	args := m.Called(ctx, remoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
