// Package metrics defines and registers all custom Prometheus metrics for the
// birthday API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation and exposed by the /metrics route.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/birthdaybook/birthday-api/internal/core/domain"
)

const namespace = "birthdays"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts sign-up attempts.
// Label:
//   - result: "ok", "conflict", "invalid" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user registrations, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "unauthorized", "not_found", "invalid" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRefreshesTotal counts refresh-token rotations.
var TokenRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of refresh token rotations, by result.",
	},
	[]string{"result"},
)

// ── Reminder metrics ──────────────────────────────────────────────────────────

// ReminderEmailsTotal counts individual reminder emails.
// Label:
//   - result: "sent" or "failed"
var ReminderEmailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminder_emails_total",
		Help:      "Total number of birthday reminder emails, by result.",
	},
	[]string{"result"},
)

// ReminderRunsTotal counts scheduled reminder runs.
// Label:
//   - result: "ok" or "error"
var ReminderRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminder_runs_total",
		Help:      "Total number of reminder job runs, by result.",
	},
	[]string{"result"},
)

// ReminderRunDuration measures a whole reminder run, query to last send.
var ReminderRunDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "reminder_run_duration_seconds",
		Help:      "Duration of a birthday reminder run.",
		Buckets:   []float64{.1, .5, 1, 5, 15, 30, 60, 120, 300, 600},
	},
)

// MailQueueDepth tracks emails waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var MailQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mail_queue_depth",
		Help:      "Current number of emails pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// Result maps an error onto the "result" label used by the account counters.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
