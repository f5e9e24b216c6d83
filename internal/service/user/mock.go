package user

import (
	"context"
	"sync"
	"time"
)

// MockUserService implements Service in memory. cmd/server uses it as the
// default store; tests use it directly.
type MockUserService struct {
	mu       sync.RWMutex
	profiles map[string]Profile
	now      func() time.Time
}

// NewMockUserService creates a new in-memory service.
func NewMockUserService() *MockUserService {
	return &MockUserService{
		profiles: make(map[string]Profile),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (m *MockUserService) Get(_ context.Context, userID string) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, exists := m.profiles[userID]
	if !exists {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *MockUserService) Put(_ context.Context, userID string, params ReplaceParams) (*Profile, error) {
	n := params.Normalize()

	m.mu.Lock()
	defer m.mu.Unlock()

	p := Profile{
		ID:        userID,
		Name:      n.Name,
		Email:     n.Email,
		Phone:     n.Phone,
		UpdatedAt: m.now(),
	}
	m.profiles[userID] = p
	return &p, nil
}

// Clear removes all profiles (useful for test cleanup).
func (m *MockUserService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = make(map[string]Profile)
}

// Compile-time interface check
var _ Service = (*MockUserService)(nil)
