package intake

import (
	"context"
	"errors"
	"testing"
)

type fakeSheet struct {
	rows [][]interface{}
	err  error
}

func (f *fakeSheet) AppendRow(_ context.Context, row []interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, row)
	return nil
}

type fakeArchive struct {
	saved int
	err   error
}

func (f *fakeArchive) Save(_ context.Context, _ *Submission) error {
	if f.err != nil {
		return f.err
	}
	f.saved++
	return nil
}

type fakeNotify struct {
	texts []string
	err   error
}

func (f *fakeNotify) NotifyAdmin(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.texts = append(f.texts, text)
	return nil
}

func newTestSubmission(t *testing.T) *Submission {
	t.Helper()
	sub, err := NewSubmission(fullAnswers(), "@anna", 42)
	if err != nil {
		t.Fatalf("NewSubmission: %v", err)
	}
	return sub
}

func TestSubmitHappyPath(t *testing.T) {
	sheet := &fakeSheet{}
	archive := &fakeArchive{}
	notify := &fakeNotify{}
	s := NewSubmitter(sheet, archive, notify)

	if err := s.Submit(context.Background(), newTestSubmission(t)); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(sheet.rows) != 1 {
		t.Fatalf("appended %d rows, want 1", len(sheet.rows))
	}
	if archive.saved != 1 {
		t.Fatalf("archived %d, want 1", archive.saved)
	}
	if len(notify.texts) != 1 {
		t.Fatalf("notified %d times, want 1", len(notify.texts))
	}
}

func TestSubmitPersistenceFailureGatesEverything(t *testing.T) {
	sheet := &fakeSheet{err: errors.New("quota exceeded")}
	archive := &fakeArchive{}
	notify := &fakeNotify{}
	s := NewSubmitter(sheet, archive, notify)

	err := s.Submit(context.Background(), newTestSubmission(t))
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want PersistenceError", err)
	}
	if perr.Code() != "PERSISTENCE_FAILURE" {
		t.Fatalf("code = %s", perr.Code())
	}
	if archive.saved != 0 || len(notify.texts) != 0 {
		t.Fatal("archive/notify must not run after failed append")
	}
}

func TestSubmitNotificationFailureIsBestEffort(t *testing.T) {
	sheet := &fakeSheet{}
	notify := &fakeNotify{err: errors.New("chat not found")}
	s := NewSubmitter(sheet, nil, notify)

	if err := s.Submit(context.Background(), newTestSubmission(t)); err != nil {
		t.Fatalf("Submit should succeed despite notify error, got %v", err)
	}
	if len(sheet.rows) != 1 {
		t.Fatalf("appended %d rows, want 1", len(sheet.rows))
	}
}

func TestSubmitArchiveFailureIsBestEffort(t *testing.T) {
	sheet := &fakeSheet{}
	archive := &fakeArchive{err: errors.New("db down")}
	notify := &fakeNotify{}
	s := NewSubmitter(sheet, archive, notify)

	if err := s.Submit(context.Background(), newTestSubmission(t)); err != nil {
		t.Fatalf("Submit should succeed despite archive error, got %v", err)
	}
	if len(notify.texts) != 1 {
		t.Fatal("admin notification should still be delivered")
	}
}

func TestSubmitWithoutOptionalCollaborators(t *testing.T) {
	sheet := &fakeSheet{}
	s := NewSubmitter(sheet, nil, nil)
	if err := s.Submit(context.Background(), newTestSubmission(t)); err != nil {
		t.Fatalf("Submit: %v", err)
	}
}
