// Package storage provides the optional Postgres archive of completed
// intake forms.
package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/solomat-bot/DemoProBot/intake"
)

const insertSubmission = `
INSERT INTO submissions (
	id, created_at, name, age, city, goal, result,
	experience, stress, time_slot, budget, contact, telegram_id
) VALUES (
	:id, :created_at, :name, :age, :city, :goal, :result,
	:experience, :stress, :time_slot, :budget, :contact, :telegram_id
)`

// Submissions archives completed forms in Postgres.
type Submissions struct {
	db *sqlx.DB
}

// NewSubmissions wires the archive on top of an open connection pool.
func NewSubmissions(db *sqlx.DB) *Submissions {
	return &Submissions{db: db}
}

// Save inserts one completed submission.
func (s *Submissions) Save(ctx context.Context, sub *intake.Submission) error {
	if _, err := s.db.NamedExecContext(ctx, insertSubmission, sub); err != nil {
		return fmt.Errorf("storage: insert submission: %w", err)
	}
	return nil
}

// Count returns the total number of archived submissions.
func (s *Submissions) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM submissions`); err != nil {
		return 0, fmt.Errorf("storage: count submissions: %w", err)
	}
	return total, nil
}
