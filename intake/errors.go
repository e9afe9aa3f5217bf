package intake

import (
	"errors"
	"fmt"
)

// ErrEmptyAnswer is returned when an inbound message carries no usable text.
var ErrEmptyAnswer = errors.New("intake: empty answer")

// PersistenceError signals that the spreadsheet append failed. The
// submission must not be acknowledged to the user and the session is
// kept so the answer can be re-sent.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Code identifies the error class in handler summary logs.
func (e *PersistenceError) Code() string { return "PERSISTENCE_FAILURE" }

// NotificationError signals that the admin notification failed. It is
// logged and never surfaced to the end user.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification failure: %v", e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }

// Code identifies the error class in handler summary logs.
func (e *NotificationError) Code() string { return "NOTIFICATION_FAILURE" }
