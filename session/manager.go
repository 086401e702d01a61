package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/cart"
)

// Session is one shopper's state: identity fields from the (simulated)
// login, plus the cart ledger the session owns. It is created when the
// shopper arrives and discarded when the session ends or expires; nothing
// about it is ambient or global.
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`

	Cart *cart.Ledger `json:"-"`
}

// Manager owns the live sessions. Lookups from request handlers and the
// expiry sweeper run concurrently, so the registry is mutex-guarded.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	ttl    time.Duration
	policy cart.Policy
}

func NewManager(ttl time.Duration, policy cart.Policy) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		policy:   policy,
	}
}

// Create starts a session with a fresh cart.
func (m *Manager) Create(name, email string) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
		Cart:      cart.NewLedger(m.policy),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get resolves a session by ID. Expired sessions are gone even if the
// sweeper has not collected them yet.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok || time.Now().After(s.ExpiresAt) {
		return nil, false
	}
	return s, true
}

// End discards a session and its cart. Ending an unknown session is a
// no-op.
func (m *Manager) End(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len reports how many sessions are registered, expired ones included
// until the sweeper runs.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// StartSweeper drops expired sessions on a fixed interval until stop is
// closed.
func (m *Manager) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := m.sweep(); n > 0 {
				log.Printf("🗑️ Removed %d expired sessions", n)
			}
		case <-stop:
			return
		}
	}
}

func (m *Manager) sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, s := range m.sessions {
		if now.After(s.ExpiresAt) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
