package session

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bakery-service/internal/store"
	"bakery-service/internal/util"
)

// Session binds a dispatcher to a browser session. It also owns the
// confirmation countdown, so navigating away can cancel it.
type Session struct {
	ID         string
	Dispatcher *Dispatcher

	mu        sync.Mutex
	countdown *Countdown
}

// SetCountdown installs a countdown, stopping any previous one
func (s *Session) SetCountdown(c *Countdown) {
	s.mu.Lock()
	prev := s.countdown
	s.countdown = c
	s.mu.Unlock()

	if prev != nil {
		prev.Stop()
	}
}

// StopCountdown cancels the active countdown, if any
func (s *Session) StopCountdown() {
	s.SetCountdown(nil)
}

// Countdown returns the active countdown, if any
func (s *Session) Countdown() *Countdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countdown
}

// Manager keeps the in-memory session table. Sessions live until the process
// exits; there is deliberately no persistence.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	newState func() store.AppState
	logger   *zap.Logger
}

// NewManager creates a session manager. newState builds the initial state for
// each fresh session.
func NewManager(newState func() store.AppState) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		newState: newState,
		logger:   util.GetLogger(),
	}
}

// Create starts a new session with a fresh state
func (m *Manager) Create() *Session {
	sess := &Session{
		ID:         uuid.New().String(),
		Dispatcher: NewDispatcher(m.newState()),
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	util.SessionsCreatedTotal.Inc()
	m.logger.Info("Session created", zap.String("session_id", sess.ID))
	return sess
}

// Get returns the session with the given id, if it exists
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// GetOrCreate returns the session with the given id, or a new one when the id
// is unknown or empty
func (m *Manager) GetOrCreate(id string) *Session {
	if id != "" {
		if sess, ok := m.Get(id); ok {
			return sess
		}
	}
	return m.Create()
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
