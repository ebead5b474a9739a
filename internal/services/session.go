package services

import (
	"errors"
	"sync"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
)

// ErrPartialSession is returned when a caller tries to install a session
// missing one of token, user id or role. A session is either fully populated
// or absent, never halfway.
var ErrPartialSession = errors.New("session requires token, user id and role")

// Session is the authenticated identity held for the lifetime of an app run.
type Session struct {
	Token     string
	UserID    string
	Username  string
	FullName  string
	Role      models.Role
	Position  string
	User      *models.User
	RawClaims *models.TokenClaims
}

// Authenticated reports whether the session satisfies the all-or-nothing
// invariant.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.UserID != "" && s.Role != ""
}

// SessionCell is the single authoritative session slot for a running app
// instance: readable by many consumers, writable only by the login, logout
// and restore operations. It replaces the ambient global the mobile client
// carried.
type SessionCell struct {
	mu      sync.RWMutex
	current *Session
	nextSub int
	subs    map[int]func(*Session)
}

// NewSessionCell creates an empty, unauthenticated cell.
func NewSessionCell() *SessionCell {
	return &SessionCell{subs: make(map[int]func(*Session))}
}

// Get returns the current session and whether one is installed.
func (c *SessionCell) Get() (Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return Session{}, false
	}
	return *c.current, true
}

// Set installs a session. Partial sessions are rejected to uphold the
// all-or-nothing invariant.
func (c *SessionCell) Set(s Session) error {
	if !s.Authenticated() {
		return ErrPartialSession
	}
	c.mu.Lock()
	clone := s
	c.current = &clone
	subs := c.snapshotSubsLocked()
	c.mu.Unlock()

	for _, fn := range subs {
		fn(&clone)
	}
	return nil
}

// Clear resets the cell to unauthenticated and notifies subscribers with nil.
func (c *SessionCell) Clear() {
	c.mu.Lock()
	c.current = nil
	subs := c.snapshotSubsLocked()
	c.mu.Unlock()

	for _, fn := range subs {
		fn(nil)
	}
}

// Subscribe registers fn to run on every session change. The returned func
// cancels the subscription. Callbacks run outside the cell's lock.
func (c *SessionCell) Subscribe(fn func(*Session)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *SessionCell) snapshotSubsLocked() []func(*Session) {
	out := make([]func(*Session), 0, len(c.subs))
	for _, fn := range c.subs {
		out = append(out, fn)
	}
	return out
}
