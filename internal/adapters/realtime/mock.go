package realtime

import (
	"github.com/stretchr/testify/mock"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
)

// MockEventBus is a mock implementation of port.EventBus
type MockEventBus struct {
	mock.Mock
}

// NewMockEventBus creates a new MockEventBus
func NewMockEventBus() *MockEventBus {
	return &MockEventBus{}
}

func (m *MockEventBus) EmitToAll(event domain.Event) {
	m.Called(event)
}

func (m *MockEventBus) EmitToUser(userID int64, event domain.Event) {
	m.Called(userID, event)
}

func (m *MockEventBus) EmitToAdmins(event domain.Event) {
	m.Called(event)
}
