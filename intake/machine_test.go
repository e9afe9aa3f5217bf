package intake

import (
	"errors"
	"testing"

	"github.com/solomat-bot/DemoProBot/core/telegram/state"
)

var exampleAnswers = []string{
	"Anna", "29", "Berlin", "Похудение ✨", "5 kg",
	"Нет опыта", "3️⃣", "3 раза/нед", "20–30 тыс",
}

func TestFullRunReachesTerminalAfterNineAnswers(t *testing.T) {
	m := NewMachine(state.NewMemoryManager())
	const userID = int64(100)

	first := m.Start(userID)
	if first.State != StateName {
		t.Fatalf("start step = %s, want %s", first.State, StateName)
	}

	for i, answer := range exampleAnswers {
		next, done, err := m.Advance(userID, answer)
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if i < len(exampleAnswers)-1 {
			if done {
				t.Fatalf("done after %d answers, want %d", i+1, len(exampleAnswers))
			}
			if next.Prompt == "" {
				t.Fatalf("answer %d: empty next prompt", i)
			}
		} else if !done {
			t.Fatal("expected terminal after final answer")
		}
	}

	answers := m.Answers(userID)
	if len(answers) != 9 {
		t.Fatalf("collected %d answers, want 9", len(answers))
	}
	if answers[KeyBudget] != "20–30 тыс" {
		t.Fatalf("budget = %q", answers[KeyBudget])
	}
}

func TestRestartDiscardsProgress(t *testing.T) {
	m := NewMachine(state.NewMemoryManager())
	const userID = int64(200)

	m.Start(userID)
	if _, _, err := m.Advance(userID, "Anna"); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if _, _, err := m.Advance(userID, "29"); err != nil {
		t.Fatalf("advance: %v", err)
	}

	first := m.Start(userID)
	if first.State != StateName {
		t.Fatalf("restart step = %s, want %s", first.State, StateName)
	}
	if len(m.Answers(userID)) != 0 {
		t.Fatal("expected answers discarded on restart")
	}
}

func TestAdvanceWithoutSession(t *testing.T) {
	m := NewMachine(state.NewMemoryManager())
	_, _, err := m.Advance(300, "hello")
	if !errors.Is(err, state.ErrNoActiveSession) {
		t.Fatalf("err = %v, want ErrNoActiveSession", err)
	}
}

func TestAdvanceRejectsEmptyAnswer(t *testing.T) {
	m := NewMachine(state.NewMemoryManager())
	m.Start(400)
	if _, _, err := m.Advance(400, "   "); !errors.Is(err, ErrEmptyAnswer) {
		t.Fatalf("err = %v, want ErrEmptyAnswer", err)
	}
	if len(m.Answers(400)) != 0 {
		t.Fatal("empty answer must not be stored")
	}
}

func TestTerminalRetryKeepsSession(t *testing.T) {
	m := NewMachine(state.NewMemoryManager())
	const userID = int64(500)

	m.Start(userID)
	for _, answer := range exampleAnswers {
		if _, _, err := m.Advance(userID, answer); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	// The session stays at the last question until cleared, so a retry
	// after a failed submission re-records the budget answer.
	if !m.InProgress(userID) {
		t.Fatal("session must survive terminal transition until Clear")
	}
	_, done, err := m.Advance(userID, "Гибкий бюджет")
	if err != nil || !done {
		t.Fatalf("retry advance: done=%v err=%v", done, err)
	}
	if got := m.Answers(userID)[KeyBudget]; got != "Гибкий бюджет" {
		t.Fatalf("budget after retry = %q", got)
	}

	m.Clear(userID)
	if m.InProgress(userID) {
		t.Fatal("expected session cleared")
	}
}
