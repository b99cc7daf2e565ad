package queue

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/port"
)

// MockJobQueue is a mock implementation of port.JobQueue
type MockJobQueue struct {
	mock.Mock
}

// NewMockJobQueue creates a new MockJobQueue
func NewMockJobQueue() *MockJobQueue {
	return &MockJobQueue{}
}

func (m *MockJobQueue) Submit(job domain.UploadJob) {
	m.Called(job)
}

func (m *MockJobQueue) Drain(handler port.JobHandler, concurrency int) {
	m.Called(handler, concurrency)
}

func (m *MockJobQueue) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
