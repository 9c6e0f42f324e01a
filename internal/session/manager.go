package session

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/termsense/internal/config"
)

// EventPublisher publishes session lifecycle events.
type EventPublisher interface {
	Publish(eventType string, data map[string]any)
}

// ManagerConfig configures a session manager.
type ManagerConfig struct {
	// Config supplies defaults and feature gates (zero value: config.Default()).
	Config config.Config

	// EventBus for publishing session events.
	EventBus EventPublisher
}

// Manager manages multiple sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	cfg      config.Config
	eventBus EventPublisher

	closed atomic.Bool
}

// NewManager creates a new session manager.
func NewManager(cfg ManagerConfig) *Manager {
	conf := cfg.Config
	if conf == (config.Config{}) {
		conf = config.Default()
	}

	return &Manager{
		sessions: make(map[string]*Session),
		cfg:      conf,
		eventBus: cfg.EventBus,
	}
}

// Create creates and tracks a new session.
func (m *Manager) Create(opts Options) (*Session, error) {
	if m.closed.Load() {
		return nil, ErrManagerClosed
	}

	if opts.Cols <= 0 {
		opts.Cols = m.cfg.Sessions.DefaultCols
	}

	sess, err := newSession(opts, m.cfg)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[sess.id] = sess
	m.mu.Unlock()

	// Remove from tracking when the session closes.
	originalOnClose := sess.onClose
	sess.onClose = func() {
		m.mu.Lock()
		delete(m.sessions, sess.id)
		m.mu.Unlock()

		m.publishEvent("session.closed", map[string]any{
			"id":   sess.id,
			"name": sess.name,
		})

		if originalOnClose != nil {
			originalOnClose()
		}
	}

	m.publishEvent("session.created", map[string]any{
		"id":   sess.id,
		"name": sess.name,
	})

	return sess, nil
}

// Get returns a session by id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// List returns all tracked sessions.
func (m *Manager) List() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		result = append(result, sess)
	}
	return result
}

// Count returns the number of tracked sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close closes a session by id.
func (m *Manager) Close(id string) error {
	sess, ok := m.Get(id)
	if !ok {
		return ErrSessionNotFound
	}
	return sess.Close()
}

// CloseAll closes every tracked session.
func (m *Manager) CloseAll() error {
	for _, sess := range m.List() {
		sess.Close()
	}
	return nil
}

// Shutdown closes the manager; no new sessions can be created afterwards.
func (m *Manager) Shutdown() {
	if m.closed.Swap(true) {
		return
	}
	m.CloseAll()
}

// publishEvent publishes an event if an event bus is configured.
func (m *Manager) publishEvent(eventType string, data map[string]any) {
	if m.eventBus != nil {
		if data == nil {
			data = make(map[string]any)
		}
		data["timestamp"] = time.Now().UnixMilli()
		m.eventBus.Publish(eventType, data)
	}
}
