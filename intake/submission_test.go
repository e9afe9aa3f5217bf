package intake

import (
	"strings"
	"testing"
)

func fullAnswers() map[string]string {
	return map[string]string{
		KeyName:       "Anna",
		KeyAge:        "29",
		KeyCity:       "Berlin",
		KeyGoal:       "Похудение ✨",
		KeyResult:     "5 kg",
		KeyExperience: "Нет опыта",
		KeyStress:     "3️⃣",
		KeyTime:       "3 раза/нед",
		KeyBudget:     "20–30 тыс",
	}
}

func TestNewSubmissionRequiresAllAnswers(t *testing.T) {
	answers := fullAnswers()
	delete(answers, KeyCity)
	if _, err := NewSubmission(answers, "@anna", 42); err == nil {
		t.Fatal("expected error for missing city")
	}

	if _, err := NewSubmission(fullAnswers(), "", 42); err == nil {
		t.Fatal("expected error for missing contact")
	}
}

func TestRowLayout(t *testing.T) {
	sub, err := NewSubmission(fullAnswers(), "@anna", 42)
	if err != nil {
		t.Fatalf("NewSubmission: %v", err)
	}

	row := sub.Row()
	if len(row) != 12 {
		t.Fatalf("row has %d cells, want 12", len(row))
	}

	ts, ok := row[0].(string)
	if !ok || len(ts) != len("2006-01-02 15:04") {
		t.Fatalf("timestamp cell = %v", row[0])
	}
	want := []interface{}{
		"Anna", "29", "Berlin", "Похудение ✨", "5 kg",
		"Нет опыта", "3️⃣", "3 раза/нед", "20–30 тыс", "@anna",
	}
	for i, v := range want {
		if row[i+1] != v {
			t.Fatalf("cell %d = %v, want %v", i+1, row[i+1], v)
		}
	}
	if row[11] != int64(42) {
		t.Fatalf("platform id cell = %v", row[11])
	}
}

func TestAdminSummaryContent(t *testing.T) {
	sub, err := NewSubmission(fullAnswers(), ContactSentinel, 42)
	if err != nil {
		t.Fatalf("NewSubmission: %v", err)
	}

	text := sub.AdminSummary()
	if !strings.HasPrefix(text, "📩 *Новая анкета!*") {
		t.Fatalf("summary header missing: %s", text)
	}
	for _, fragment := range []string{
		"Имя: Anna", "Возраст: 29", "Город: Berlin",
		"Стресс: 3️⃣", "Контакт: нет username", "ID: 42",
	} {
		if !strings.Contains(text, fragment) {
			t.Fatalf("summary missing %q:\n%s", fragment, text)
		}
	}
}

func TestAdminSummaryEscapesMarkdown(t *testing.T) {
	answers := fullAnswers()
	answers[KeyName] = "an_na*"
	sub, err := NewSubmission(answers, "@anna", 42)
	if err != nil {
		t.Fatalf("NewSubmission: %v", err)
	}
	text := sub.AdminSummary()
	if !strings.Contains(text, `an\_na\*`) {
		t.Fatalf("expected escaped name in summary:\n%s", text)
	}
}
