package state

import (
	"errors"
	"testing"
)

func TestStartCreatesFreshSession(t *testing.T) {
	m := NewMemoryManager()
	m.Start(1, State("step_one"))
	if err := m.SetAnswer(1, "name", "Анна"); err != nil {
		t.Fatalf("SetAnswer: %v", err)
	}

	m.Start(1, State("step_one"))
	if _, ok := m.Answer(1, "name"); ok {
		t.Fatal("expected answers to be discarded on restart")
	}
	if got := m.GetState(1); got != State("step_one") {
		t.Fatalf("state = %s, want step_one", got)
	}
}

func TestSetStateRequiresSession(t *testing.T) {
	m := NewMemoryManager()
	if err := m.SetState(7, State("step_two")); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("SetState err = %v, want ErrNoActiveSession", err)
	}
	if err := m.SetAnswer(7, "city", "Минск"); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("SetAnswer err = %v, want ErrNoActiveSession", err)
	}
}

func TestAnswersReturnsCopy(t *testing.T) {
	m := NewMemoryManager()
	m.Start(3, State("step_one"))
	if err := m.SetAnswer(3, "goal", "Здоровье"); err != nil {
		t.Fatalf("SetAnswer: %v", err)
	}

	answers := m.Answers(3)
	answers["goal"] = "mutated"

	if got, _ := m.Answer(3, "goal"); got != "Здоровье" {
		t.Fatalf("stored answer mutated through copy: %s", got)
	}
}

func TestClearRemovesSession(t *testing.T) {
	m := NewMemoryManager()
	m.Start(5, State("step_one"))
	if !m.InProgress(5) {
		t.Fatal("expected session in progress")
	}
	m.Clear(5)
	if m.InProgress(5) {
		t.Fatal("expected no session after Clear")
	}
	if got := m.GetState(5); got != StateIdle {
		t.Fatalf("state after Clear = %s, want idle", got)
	}
}

func TestGetReturnsIdleDefault(t *testing.T) {
	m := NewMemoryManager()
	sess := m.Get(42)
	if sess.State != StateIdle {
		t.Fatalf("default state = %s, want idle", sess.State)
	}
	if sess.Answers == nil {
		t.Fatal("expected non-nil answers map")
	}
}
