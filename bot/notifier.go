package bot

import (
	"context"
	"errors"

	tele "gopkg.in/telebot.v4"

	tgsender "github.com/solomat-bot/DemoProBot/core/telegram/sender"
)

// adminNotifier delivers submission summaries to the administrator,
// preferring the asynchronous sender with a synchronous fallback.
type adminNotifier struct {
	bot     *tele.Bot
	disp    *tgsender.Dispatcher
	adminID int64
}

func newAdminNotifier(bot *tele.Bot, disp *tgsender.Dispatcher, adminID int64) *adminNotifier {
	return &adminNotifier{bot: bot, disp: disp, adminID: adminID}
}

func (n *adminNotifier) NotifyAdmin(ctx context.Context, text string) error {
	run := func() error {
		_, err := n.bot.Send(
			&tele.User{ID: n.adminID},
			text,
			&tele.SendOptions{ParseMode: tele.ModeMarkdown},
		)
		return err
	}

	if n.disp == nil {
		return run()
	}
	if err := n.disp.Enqueue(ctx, "notify.admin", "sendMessage", run); err != nil {
		if errors.Is(err, tgsender.ErrQueueFull) || errors.Is(err, tgsender.ErrQueueClosed) {
			return run()
		}
		return err
	}
	return nil
}
