package intake

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/solomat-bot/DemoProBot/core/telegram/format"
)

// rowTimeFormat is the timestamp layout used in the spreadsheet.
const rowTimeFormat = "2006-01-02 15:04"

// Submission is a completed intake form ready for export.
type Submission struct {
	ID         uuid.UUID `db:"id"`
	CreatedAt  time.Time `db:"created_at"`
	Name       string    `db:"name"`
	Age        string    `db:"age"`
	City       string    `db:"city"`
	Goal       string    `db:"goal"`
	Result     string    `db:"result"`
	Experience string    `db:"experience"`
	Stress     string    `db:"stress"`
	TimeSlot   string    `db:"time_slot"`
	Budget     string    `db:"budget"`
	Contact    string    `db:"contact"`
	TelegramID int64     `db:"telegram_id"`
}

// NewSubmission assembles a Submission from collected answers. Every
// question must have been answered; contact is derived by the caller.
func NewSubmission(answers map[string]string, contact string, telegramID int64) (*Submission, error) {
	for _, key := range []string{
		KeyName, KeyAge, KeyCity, KeyGoal, KeyResult,
		KeyExperience, KeyStress, KeyTime, KeyBudget,
	} {
		if strings.TrimSpace(answers[key]) == "" {
			return nil, fmt.Errorf("intake: missing answer for %q", key)
		}
	}
	if strings.TrimSpace(contact) == "" {
		return nil, fmt.Errorf("intake: missing contact")
	}

	return &Submission{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		Name:       answers[KeyName],
		Age:        answers[KeyAge],
		City:       answers[KeyCity],
		Goal:       answers[KeyGoal],
		Result:     answers[KeyResult],
		Experience: answers[KeyExperience],
		Stress:     answers[KeyStress],
		TimeSlot:   answers[KeyTime],
		Budget:     answers[KeyBudget],
		Contact:    contact,
		TelegramID: telegramID,
	}, nil
}

// Row renders the fixed-order spreadsheet row: timestamp, the ten
// collected fields, and the sender's Telegram identifier.
func (s *Submission) Row() []interface{} {
	return []interface{}{
		s.CreatedAt.Format(rowTimeFormat),
		s.Name,
		s.Age,
		s.City,
		s.Goal,
		s.Result,
		s.Experience,
		s.Stress,
		s.TimeSlot,
		s.Budget,
		s.Contact,
		s.TelegramID,
	}
}

// AdminSummary builds the Markdown notification for the administrator.
func (s *Submission) AdminSummary() string {
	var b strings.Builder
	b.WriteString("📩 *Новая анкета!*\n\n")
	lines := []struct {
		label string
		value string
	}{
		{"Имя", s.Name},
		{"Возраст", s.Age},
		{"Город", s.City},
		{"Цель", s.Goal},
		{"Результат", s.Result},
		{"Опыт", s.Experience},
		{"Стресс", s.Stress},
		{"Время", s.TimeSlot},
		{"Бюджет", s.Budget},
		{"Контакт", s.Contact},
	}
	for _, line := range lines {
		b.WriteString(line.label)
		b.WriteString(": ")
		b.WriteString(escapeMD(line.value))
		b.WriteByte('\n')
	}
	b.WriteString(fmt.Sprintf("ID: %d", s.TelegramID))
	return b.String()
}

func escapeMD(text string) string {
	escaped, err := format.EscapeMarkdown(text, format.MarkdownV1)
	if err != nil {
		return text
	}
	return escaped
}
