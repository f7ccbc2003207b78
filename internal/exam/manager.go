package exam

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nepal-utilities/backend/internal/bank"
	"github.com/nepal-utilities/backend/internal/models"
)

// Manager owns the live exam sessions. Nothing is persisted; a session
// lives until it is exited or swept for inactivity.
type Manager struct {
	source       bank.Source
	cfg          models.ExamConfig
	newRand      func() *rand.Rand
	now          func() time.Time
	tickInterval time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(source bank.Source, cfg models.ExamConfig) *Manager {
	return &Manager{
		source:       source,
		cfg:          cfg,
		newRand:      func() *rand.Rand { return rand.New(rand.NewSource(time.Now().UnixNano())) },
		now:          time.Now,
		tickInterval: time.Second,
		sessions:     make(map[string]*Session),
	}
}

func (m *Manager) Config() models.ExamConfig { return m.cfg }

func (m *Manager) Create() *Session {
	s := NewSession(uuid.NewString(), m.cfg, m.newRand())
	s.tickInterval = m.tickInterval
	s.touch(m.now())

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()
	return s
}

// Get returns the session and marks it active.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(m.now())
	return s, nil
}

// SelectCategory loads the category's bank and draws the session's question
// set. A second call while a load is running fails with ErrLoadInFlight.
func (m *Manager) SelectCategory(ctx context.Context, id string, category models.Category) (*Session, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	gen, err := s.startLoad()
	if err != nil {
		return nil, err
	}

	data, err := m.source.Load(ctx, category)
	if err != nil {
		s.failLoad(gen)
		log.Printf("[exam] session %s: load %s failed: %v", id, category, err)
		return nil, err
	}
	if err := s.applyBank(gen, category, data); err != nil {
		return nil, err
	}
	return s, nil
}

// Exit stops the session's countdown and forgets it.
func (m *Manager) Exit(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.Exit()
	return nil
}

// Sweep exits sessions idle for longer than idle and returns how many went.
func (m *Manager) Sweep(idle time.Duration) int {
	cutoff := m.now().Add(-idle)

	m.mu.Lock()
	var stale []*Session
	for id, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			stale = append(stale, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		s.Exit()
	}
	if len(stale) > 0 {
		log.Printf("[exam] swept %d idle sessions", len(stale))
	}
	return len(stale)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
