package intake

import (
	"strings"

	"github.com/solomat-bot/DemoProBot/core/telegram/state"
)

// Machine drives a user through the fixed question sequence. All
// per-user ordering guarantees come from the session manager.
type Machine struct {
	sessions state.Manager
}

// NewMachine builds a form machine on top of the given session manager.
func NewMachine(sessions state.Manager) *Machine {
	return &Machine{sessions: sessions}
}

// Start opens a fresh session for the user, discarding any prior
// progress, and returns the opening step.
func (m *Machine) Start(userID int64) Step {
	first := First()
	m.sessions.Start(userID, first.State)
	return first
}

// Advance records the answer for the user's current step. When a
// successor exists it is returned with done=false; answering the last
// question returns done=true and keeps the session so the caller can
// submit (and retry on failure) before clearing.
func (m *Machine) Advance(userID int64, text string) (Step, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Step{}, false, ErrEmptyAnswer
	}

	current := m.sessions.GetState(userID)
	step, ok := ByState(current)
	if !ok {
		return Step{}, false, state.ErrNoActiveSession
	}

	if err := m.sessions.SetAnswer(userID, step.Key, text); err != nil {
		return Step{}, false, err
	}

	next, hasNext := Next(step.State)
	if !hasNext {
		return Step{}, true, nil
	}
	if err := m.sessions.SetState(userID, next.State); err != nil {
		return Step{}, false, err
	}
	return next, false, nil
}

// Answers returns a copy of everything collected so far.
func (m *Machine) Answers(userID int64) map[string]string {
	return m.sessions.Answers(userID)
}

// InProgress reports whether the user has an open form session.
func (m *Machine) InProgress(userID int64) bool {
	return m.sessions.InProgress(userID)
}

// Clear drops the user's session after a completed submission.
func (m *Machine) Clear(userID int64) {
	m.sessions.Clear(userID)
}
