package mocks

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockMailer records verification emails instead of sending them
type MockMailer struct {
	mu   sync.Mutex
	Sent []SentEmail
}

type SentEmail struct {
	To   string
	Code string
}

func (m *MockMailer) SendVerificationEmail(email, code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentEmail{To: email, Code: code})
}

// Emails returns a copy of everything sent so far
func (m *MockMailer) Emails() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentEmail(nil), m.Sent...)
}

// MockPublisher is a testify mock of events.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, payload interface{}) error {
	return m.Called(ctx, topic, payload).Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}
