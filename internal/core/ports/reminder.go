package ports

import (
	"context"
	"time"
)

// Email is a single outgoing plain-text message.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers one email through the external transport.
type Mailer interface {
	Send(ctx context.Context, msg Email) error
}

// GreetingRenderer builds the subject and body of a birthday email.
type GreetingRenderer interface {
	Greeting(username string) (subject, body string, err error)
}

// DispatchResult summarises a batch handed to a MailDispatcher.
type DispatchResult struct {
	Sent   int
	Failed []DispatchFailure
}

type DispatchFailure struct {
	Email Email
	Err   error
}

// MailDispatcher sends a batch and reports per-message outcomes. A failed
// message never prevents the others from being attempted.
type MailDispatcher interface {
	Dispatch(ctx context.Context, batch []Email) DispatchResult
}

// ReminderClaims records which (birthday, day) reminders were already sent so
// a re-run or a second replica does not send them twice.
type ReminderClaims interface {
	Claim(ctx context.Context, birthdayID string, day time.Time) (bool, error)
	Release(ctx context.Context, birthdayID string, day time.Time) error
}

// RunSummary describes one reminder run.
type RunSummary struct {
	RunID   string
	Matched int
	Skipped int
	Sent    int
	Failed  int
}

// ReminderService sends the birthday emails due on a given day.
type ReminderService interface {
	Run(ctx context.Context, now time.Time) (RunSummary, error)
}
