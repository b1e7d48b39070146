package api

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/lookbusy1344/bigint/config"
	"github.com/lookbusy1344/bigint/repl"
)

var (
	// ErrSessionNotFound is returned when a session ID has no matching session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionAlreadyExists is returned on a session ID collision (should
	// not happen with random IDs, kept for the same reason the teacher
	// project keeps it: the ID generator is not formally proven unique).
	ErrSessionAlreadyExists = errors.New("session already exists")
)

// Session is one remote calculator session: a repl.Session plus the
// bookkeeping the API layer needs that the REPL itself doesn't care about.
type Session struct {
	ID        string
	Calc      *repl.Session
	CreatedAt time.Time
}

// SessionManager tracks every active remote calculator session.
type SessionManager struct {
	sessions    map[string]*Session
	broadcaster *Broadcaster
	cfg         *config.Config
	mu          sync.RWMutex
}

// NewSessionManager creates a session manager whose sessions broadcast
// trace events through broadcaster and inherit defaults from cfg.
func NewSessionManager(broadcaster *Broadcaster, cfg *config.Config) *SessionManager {
	return &SessionManager{
		sessions:    make(map[string]*Session),
		broadcaster: broadcaster,
		cfg:         cfg,
	}
}

// CreateSession starts a new calculator session with a fresh random ID.
func (sm *SessionManager) CreateSession() (*Session, error) {
	sessionID, err := generateSessionID()
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:        sessionID,
		Calc:      repl.NewSession(sm.cfg),
		CreatedAt: time.Now(),
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[sessionID]; exists {
		return nil, ErrSessionAlreadyExists
	}
	sm.sessions[sessionID] = session
	debugLog("session %s: created", sessionID)
	return session, nil
}

// GetSession retrieves a session by ID.
func (sm *SessionManager) GetSession(sessionID string) (*Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// DestroySession removes a session by ID.
func (sm *SessionManager) DestroySession(sessionID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[sessionID]; !exists {
		return ErrSessionNotFound
	}
	delete(sm.sessions, sessionID)
	debugLog("session %s: destroyed", sessionID)
	return nil
}

// ListSessions returns every active session ID.
func (sm *SessionManager) ListSessions() []string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	ids := make([]string, 0, len(sm.sessions))
	for id := range sm.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Count returns the number of active sessions.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

func generateSessionID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
