package state

import (
	"errors"
	"time"

	tele "gopkg.in/telebot.v4"
)

// State identifies a finite-state-machine step used in conversations.
type State string

const (
	// StateIdle indicates there is no active conversation with the user.
	StateIdle State = "idle"
)

// ErrNoActiveSession is returned when an operation requires an active
// session but the user has none.
var ErrNoActiveSession = errors.New("state: no active session")

// Session stores conversation state and answers collected from a user.
type Session struct {
	State     State
	Answers   map[string]string
	StartedAt time.Time
}

// Manager orchestrates user sessions and FSM state transitions.
type Manager interface {
	// Start creates a fresh session in the given state, discarding any
	// previous session for the user.
	Start(userID int64, st State)
	Get(userID int64) *Session
	Clear(userID int64)

	// Dialog state
	SetState(userID int64, st State) error
	GetState(userID int64) State
	HasState(userID int64) bool

	// Answers
	SetAnswer(userID int64, key, value string) error
	Answer(userID int64, key string) (string, bool)
	Answers(userID int64) map[string]string

	InProgress(userID int64) bool
	ManagerHandler(c tele.Context) error
}
