// Package store persists the auth token and cached user profile across app
// restarts. It is a mirror of the in-memory session, never the owner: login,
// logout and restore are the only writers.
package store

import (
	"context"
	"sync"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
)

// SessionStore is the persistent key-value slot for session state. All
// operations are last-writer-wins; a missing entry is reported as a zero
// value, never as an error.
type SessionStore interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	GetUserData(ctx context.Context) (*models.User, error)
	SetUserData(ctx context.Context, user *models.User) error
	Clear(ctx context.Context) error
}

// MemoryStore is an in-process SessionStore used by tests and by the CLI when
// no state directory is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	user  *models.User
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// GetToken returns the stored token, or "" when none is set.
func (m *MemoryStore) GetToken(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

// SetToken stores the token.
func (m *MemoryStore) SetToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

// GetUserData returns the cached profile, or nil when none is set.
func (m *MemoryStore) GetUserData(context.Context) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil, nil
	}
	clone := *m.user
	return &clone, nil
}

// SetUserData caches the profile.
func (m *MemoryStore) SetUserData(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user == nil {
		m.user = nil
		return nil
	}
	clone := *user
	m.user = &clone
	return nil
}

// Clear removes the token and cached profile.
func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.user = nil
	return nil
}
