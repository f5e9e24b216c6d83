package profilesync

import (
	"context"
	"sync"
)

// MockRemote implements Remote for unit tests.
//
// A non-nil GetGate or PutGate holds the matching call until the channel is
// closed or the call's context is done. A nil PutResult echoes the request.
type MockRemote struct {
	GetResult Profile
	GetErr    error
	GetGate   chan struct{}

	PutResult *Profile
	PutErr    error
	PutGate   chan struct{}

	mu   sync.Mutex
	gets int
	puts []Profile
}

func (m *MockRemote) GetProfile(ctx context.Context) (Profile, error) {
	m.mu.Lock()
	m.gets++
	m.mu.Unlock()

	if err := wait(ctx, m.GetGate); err != nil {
		return Profile{}, err
	}
	if m.GetErr != nil {
		return Profile{}, m.GetErr
	}
	return m.GetResult, nil
}

func (m *MockRemote) PutProfile(ctx context.Context, p Profile) (Profile, error) {
	m.mu.Lock()
	m.puts = append(m.puts, p)
	m.mu.Unlock()

	if err := wait(ctx, m.PutGate); err != nil {
		return Profile{}, err
	}
	if m.PutErr != nil {
		return Profile{}, m.PutErr
	}
	if m.PutResult != nil {
		return *m.PutResult, nil
	}
	return p, nil
}

// Gets returns how many times GetProfile was called.
func (m *MockRemote) Gets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gets
}

// Puts returns the profiles sent to PutProfile, in call order.
func (m *MockRemote) Puts() []Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Profile(nil), m.puts...)
}

func wait(ctx context.Context, gate chan struct{}) error {
	if gate == nil {
		return nil
	}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Compile-time interface check
var _ Remote = (*MockRemote)(nil)
