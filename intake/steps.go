package intake

import (
	"strings"

	"github.com/solomat-bot/DemoProBot/core/telegram/state"
)

// Form states, one per question.
const (
	StateName       state.State = "form_name"
	StateAge        state.State = "form_age"
	StateCity       state.State = "form_city"
	StateGoal       state.State = "form_goal"
	StateResult     state.State = "form_result"
	StateExperience state.State = "form_experience"
	StateStress     state.State = "form_stress"
	StateTime       state.State = "form_time"
	StateBudget     state.State = "form_budget"
)

// Answer keys as stored in the session and exported to the spreadsheet.
const (
	KeyName       = "name"
	KeyAge        = "age"
	KeyCity       = "city"
	KeyGoal       = "goal"
	KeyResult     = "result"
	KeyExperience = "experience"
	KeyStress     = "stress"
	KeyTime       = "time"
	KeyBudget     = "budget"
	KeyContact    = "contact"
)

// User-facing texts.
const (
	Greeting = "Привет! 🌿\n" +
		"Давай подберу тренировочный план под тебя.\n" +
		"Ответы займут 1–2 минуты 🙌\n\n" +
		"Как тебя зовут?"

	ThanksMessage = "Спасибо! 🌱\n" +
		"Тренер получил твою анкету и свяжется в ближайшее время."

	FailureMessage = "Что-то пошло не так, попробуй ещё раз."

	NoSessionMessage = "Чтобы заполнить анкету, отправь /start 🙌"
)

// ContactSentinel is written when the user has no public username.
const ContactSentinel = "нет username"

// Step describes a single question of the intake form.
type Step struct {
	State   state.State
	Key     string
	Prompt  string
	Choices [][]string
}

var steps = []Step{
	{State: StateName, Key: KeyName, Prompt: "Как тебя зовут?"},
	{State: StateAge, Key: KeyAge, Prompt: "Сколько тебе лет?"},
	{State: StateCity, Key: KeyCity, Prompt: "Из какого ты города?"},
	{
		State:  StateGoal,
		Key:    KeyGoal,
		Prompt: "Какая твоя цель?",
		Choices: [][]string{
			{"Набрать массу 💪", "Похудение ✨"},
			{"Гибкость 🧘", "Здоровье 🌿"},
		},
	},
	{State: StateResult, Key: KeyResult, Prompt: "Сколько кг хочешь набрать/сбросить?"},
	{
		State:  StateExperience,
		Key:    KeyExperience,
		Prompt: "Какой у тебя тренировочный опыт?",
		Choices: [][]string{
			{"Нет опыта", "Домашние тренировки"},
			{"Самостоятельно в зале", "Персональные тренировки"},
		},
	},
	{
		State:  StateStress,
		Key:    KeyStress,
		Prompt: "Уровень стресса (1–5)?",
		Choices: [][]string{
			{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣"},
		},
	},
	{
		State:  StateTime,
		Key:    KeyTime,
		Prompt: "Сколько времени готов(а) уделять?",
		Choices: [][]string{
			{"2 раза/нед", "3 раза/нед"},
			{"4 раза/нед", "5+ раз/нед"},
		},
	},
	{
		State:  StateBudget,
		Key:    KeyBudget,
		Prompt: "Какой бюджет подходит?",
		Choices: [][]string{
			{"10–20 тыс", "20–30 тыс", "30–40 тыс", "40–50 тыс"},
			{"Гибкий бюджет"},
		},
	},
}

var stepsByState = func() map[state.State]int {
	idx := make(map[state.State]int, len(steps))
	for i, s := range steps {
		idx[s.State] = i
	}
	return idx
}()

// Steps returns the ordered question sequence.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// First returns the opening step of the form.
func First() Step {
	return steps[0]
}

// ByState looks up the step bound to the given state.
func ByState(st state.State) (Step, bool) {
	i, ok := stepsByState[st]
	if !ok {
		return Step{}, false
	}
	return steps[i], true
}

// Next returns the successor of the given state. The second result is
// false when st is the terminal question.
func Next(st state.State) (Step, bool) {
	i, ok := stepsByState[st]
	if !ok || i+1 >= len(steps) {
		return Step{}, false
	}
	return steps[i+1], true
}

// Terminal reports whether st is the last question of the form.
func Terminal(st state.State) bool {
	i, ok := stepsByState[st]
	return ok && i == len(steps)-1
}

// DeriveContact builds the contact field from the sender's public
// username, falling back to a fixed sentinel when absent.
func DeriveContact(username string) string {
	username = strings.TrimSpace(username)
	if username == "" {
		return ContactSentinel
	}
	return "@" + username
}
