package state

import (
	"sync"
	"time"

	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/solomat-bot/DemoProBot/core/logger"
	tghelpers "github.com/solomat-bot/DemoProBot/core/telegram/helpers"
)

type memoryManager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewMemoryManager constructs an in-memory Manager implementation.
func NewMemoryManager() Manager {
	return &memoryManager{
		sessions: make(map[int64]*Session),
	}
}

// Start creates a fresh session in the given state, replacing any existing one.
func (m *memoryManager) Start(userID int64, st State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = &Session{
		State:     st,
		Answers:   make(map[string]string),
		StartedAt: time.Now(),
	}
}

// Get returns a copy of the session for a user if it exists,
// otherwise a default idle session.
func (m *memoryManager) Get(userID int64) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if session, ok := m.sessions[userID]; ok {
		cp := &Session{
			State:     session.State,
			Answers:   make(map[string]string, len(session.Answers)),
			StartedAt: session.StartedAt,
		}
		for k, v := range session.Answers {
			cp.Answers[k] = v
		}
		return cp
	}

	return &Session{State: StateIdle, Answers: make(map[string]string)}
}

// Clear removes the entire session for a user.
func (m *memoryManager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
}

// SetState moves the FSM state for an existing session.
func (m *memoryManager) SetState(userID int64, st State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[userID]
	if !ok {
		return ErrNoActiveSession
	}
	sess.State = st
	return nil
}

// GetState returns the current FSM state of a user, or StateIdle if none exists.
func (m *memoryManager) GetState(userID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sess, ok := m.sessions[userID]; ok {
		return sess.State
	}
	return StateIdle
}

// HasState checks if a user has an active state other than idle.
func (m *memoryManager) HasState(userID int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[userID]
	return ok && sess.State != StateIdle
}

// SetAnswer stores a collected answer for the given user session.
func (m *memoryManager) SetAnswer(userID int64, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[userID]
	if !ok {
		return ErrNoActiveSession
	}
	if sess.Answers == nil {
		sess.Answers = make(map[string]string)
	}
	sess.Answers[key] = value
	return nil
}

// Answer retrieves a collected answer by key for the given user session.
func (m *memoryManager) Answer(userID int64, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[userID]
	if !ok {
		return "", false
	}
	val, ok := sess.Answers[key]
	return val, ok
}

// Answers returns a copy of all collected answers for the user.
func (m *memoryManager) Answers(userID int64) map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string)
	if sess, ok := m.sessions[userID]; ok {
		for k, v := range sess.Answers {
			out[k] = v
		}
	}
	return out
}

// InProgress reports whether the user currently has an active FSM state.
func (m *memoryManager) InProgress(userID int64) bool {
	return m.HasState(userID)
}

// ManagerHandler executes the handler function registered for the user's current state, if any.
func (m *memoryManager) ManagerHandler(c tele.Context) error {
	userID := c.Sender().ID
	current := m.GetState(userID)
	ctx := tghelpers.BuildContext(c)
	logger.Debug(ctx, "tg", "fsm.manager",
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.String("state", string(current)),
	)

	if handler, ok := fsmHandlers[current]; ok {
		return handler(c)
	}
	return nil
}
