package bot

import (
	"errors"
	"fmt"

	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/solomat-bot/DemoProBot/core/telegram/helpers"
	"github.com/solomat-bot/DemoProBot/core/telegram/keyboard"
	"github.com/solomat-bot/DemoProBot/core/telegram/state"
	"github.com/solomat-bot/DemoProBot/intake"
)

// handleStart (re)opens a session at the first question. The greeting
// already contains the opening prompt.
func (a *App) handleStart(c tele.Context) error {
	a.form.Start(c.Sender().ID)
	return tghelpers.SendText(c, intake.Greeting, &tele.SendOptions{
		ReplyMarkup: keyboard.RemoveKeyboard(),
	})
}

// handleFormAnswer stores the inbound text for the current step and
// either prompts the next question or completes the form.
func (a *App) handleFormAnswer(c tele.Context) error {
	userID := c.Sender().ID

	next, done, err := a.form.Advance(userID, c.Text())
	switch {
	case errors.Is(err, intake.ErrEmptyAnswer):
		// Re-ask the current question.
		if step, ok := intake.ByState(a.sessions.GetState(userID)); ok {
			return a.sendPrompt(c, step)
		}
		return nil
	case errors.Is(err, state.ErrNoActiveSession):
		return a.handleNoSession(c)
	case err != nil:
		return err
	}

	if done {
		return a.finish(c)
	}
	return a.sendPrompt(c, next)
}

// finish derives the contact field, submits the completed form, and
// acknowledges the user. A failed submission keeps the session so the
// user can retry by re-sending the last answer.
func (a *App) finish(c tele.Context) error {
	user := c.Sender()
	contact := intake.DeriveContact(user.Username)

	sub, err := intake.NewSubmission(a.form.Answers(user.ID), contact, user.ID)
	if err != nil {
		_ = tghelpers.SendText(c, intake.FailureMessage)
		return err
	}

	ctx := tghelpers.BuildContext(c)
	if err := a.submitter.Submit(ctx, sub); err != nil {
		_ = tghelpers.SendText(c, intake.FailureMessage)
		return err
	}

	a.form.Clear(user.ID)
	return tghelpers.SendText(c, intake.ThanksMessage, &tele.SendOptions{
		ReplyMarkup: keyboard.RemoveKeyboard(),
	})
}

func (a *App) sendPrompt(c tele.Context, step intake.Step) error {
	if len(step.Choices) > 0 {
		return tghelpers.SendText(c, step.Prompt, &tele.SendOptions{
			ReplyMarkup: keyboard.ReplyButtons(step.Choices...),
		})
	}
	return tghelpers.SendText(c, step.Prompt)
}

// handleNoSession nudges users who message outside of an active form.
func (a *App) handleNoSession(c tele.Context) error {
	return tghelpers.SendText(c, intake.NoSessionMessage)
}

// handleStats reports how many forms are archived. Admin-only.
func (a *App) handleStats(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	total, err := a.archive.Count(ctx)
	if err != nil {
		return err
	}
	return tghelpers.SendText(c, fmt.Sprintf("Всего анкет: %d", total))
}
