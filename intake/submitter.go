package intake

import (
	"context"
	"time"

	"log/slog"

	"github.com/solomat-bot/DemoProBot/core/logger"
)

const logComponent = "service.intake"

// Appender persists one spreadsheet row per submission.
type Appender interface {
	AppendRow(ctx context.Context, row []interface{}) error
}

// Archiver mirrors submissions into the optional Postgres archive.
type Archiver interface {
	Save(ctx context.Context, sub *Submission) error
}

// Notifier delivers the formatted summary to the administrator.
type Notifier interface {
	NotifyAdmin(ctx context.Context, text string) error
}

// Submitter exports completed forms. The spreadsheet append gates the
// user acknowledgment; archive and notification are best-effort.
type Submitter struct {
	sheet   Appender
	archive Archiver
	notify  Notifier
}

// NewSubmitter wires the export pipeline. archive and notify may be nil.
func NewSubmitter(sheet Appender, archive Archiver, notify Notifier) *Submitter {
	return &Submitter{sheet: sheet, archive: archive, notify: notify}
}

// Submit writes the submission to the spreadsheet and, on success,
// archives it and notifies the administrator. A failed append returns
// a PersistenceError and nothing else is attempted.
func (s *Submitter) Submit(ctx context.Context, sub *Submission) error {
	start := time.Now()
	row := sub.Row()

	if err := s.sheet.AppendRow(ctx, row); err != nil {
		logger.Error(ctx, logComponent, "submission.persist",
			slog.String("status", "fail"),
			slog.String("submission_id", sub.ID.String()),
			slog.Int64("user_id", sub.TelegramID),
			slog.Int("cells", len(row)),
			slog.String("err", err.Error()),
		)
		return &PersistenceError{Op: "sheet append", Err: err}
	}

	if s.archive != nil {
		if err := s.archive.Save(ctx, sub); err != nil {
			logger.Warn(ctx, logComponent, "submission.archive",
				slog.String("status", "fail"),
				slog.String("submission_id", sub.ID.String()),
				slog.String("err", err.Error()),
			)
		}
	}

	if s.notify != nil {
		if err := s.notify.NotifyAdmin(ctx, sub.AdminSummary()); err != nil {
			nerr := &NotificationError{Err: err}
			logger.Warn(ctx, logComponent, "submission.notify",
				slog.String("status", "fail"),
				slog.String("submission_id", sub.ID.String()),
				slog.String("err", nerr.Error()),
				slog.String("err_code", nerr.Code()),
			)
		}
	}

	logger.Info(ctx, logComponent, "submission.completed",
		slog.String("status", "ok"),
		slog.String("submission_id", sub.ID.String()),
		slog.Int64("user_id", sub.TelegramID),
		slog.Int("cells", len(row)),
		slog.Duration("duration", logger.Took(start)),
	)
	return nil
}
