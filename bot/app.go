// Package bot assembles the intake form bot on top of the core runtime.
package bot

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/solomat-bot/DemoProBot/core/bootstrap"
	coreconfig "github.com/solomat-bot/DemoProBot/core/config"
	"github.com/solomat-bot/DemoProBot/core/logger"
	coretelegram "github.com/solomat-bot/DemoProBot/core/telegram"
	"github.com/solomat-bot/DemoProBot/core/telegram/commands"
	"github.com/solomat-bot/DemoProBot/core/telegram/router"
	"github.com/solomat-bot/DemoProBot/core/telegram/state"
	"github.com/solomat-bot/DemoProBot/intake"
	"github.com/solomat-bot/DemoProBot/sheets"
	"github.com/solomat-bot/DemoProBot/storage"
)

// App holds the long-lived collaborators of the intake bot.
type App struct {
	cfg      *coreconfig.Config
	sessions state.Manager
	form     *intake.Machine
	sheet    *sheets.Client
	archive  *storage.Submissions

	// submitter is completed in OnStart once the bot handle exists.
	submitter *intake.Submitter
}

// New runs the bootstrap pipeline and builds the application.
func New(cfg *coreconfig.Config) (*App, error) {
	res, err := bootstrap.Run(bootstrap.Options{Config: cfg})
	if err != nil {
		return nil, err
	}

	sheetClient, err := sheets.NewClient(context.Background(), cfg.Sheets)
	if err != nil {
		return nil, fmt.Errorf("bot: sheets client init failed: %w", err)
	}

	var archive *storage.Submissions
	if res.DB != nil {
		archive = storage.NewSubmissions(res.DB)
	}

	sessions := state.NewMemoryManager()
	return &App{
		cfg:      cfg,
		sessions: sessions,
		form:     intake.NewMachine(sessions),
		sheet:    sheetClient,
		archive:  archive,
	}, nil
}

// TelegramRunOptions wires commands, form states, and middleware.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Начать анкету",
	})
	if a.archive != nil {
		reg.RegisterCommand("/stats", commands.Command{
			Handler:     a.handleStats,
			Description: "Статистика анкет",
			AdminOnly:   true,
			Hidden:      true,
		})
	}
	reg.SetTextFallback(a.handleNoSession)

	for _, step := range intake.Steps() {
		state.RegisterHandler(step.State, a.handleFormAnswer)
	}

	routes := router.TextRoutes(a.sessions, reg, router.TextOptions{})
	routes = append(routes, router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
	})...)

	return coretelegram.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
		OnStart:     a.onStart,
	}, nil
}

func (a *App) onStart(ctx context.Context, rt coretelegram.Runtime) error {
	var notify intake.Notifier
	if a.cfg.Telegram.AdminID != 0 {
		notify = newAdminNotifier(rt.Bot, rt.Dispatcher, a.cfg.Telegram.AdminID)
	}

	var archive intake.Archiver
	if a.archive != nil {
		archive = a.archive
	}
	a.submitter = intake.NewSubmitter(a.sheet, archive, notify)

	logger.SVCIntake.Info("intake ready",
		slog.String("event", "ready"),
		slog.Int("steps", len(intake.Steps())),
		slog.Bool("archive", a.archive != nil),
		slog.Bool("admin_notify", notify != nil),
	)
	return nil
}
