package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birthdaybook/birthday-api/internal/core/ports"
)

type stubReminder struct {
	calls   int
	lastNow time.Time
	hasDL   bool
	err     error
}

func (r *stubReminder) Run(ctx context.Context, now time.Time) (ports.RunSummary, error) {
	r.calls++
	r.lastNow = now
	_, r.hasDL = ctx.Deadline()
	return ports.RunSummary{RunID: "run-1", Sent: 1}, r.err
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{Schedule: "not a cron", Timezone: "UTC"}, &stubReminder{}, zerolog.Nop())
	assert.Error(t, err)

	_, err = New(Config{Schedule: "0 0 * * *", Timezone: "Mars/Olympus_Mons"}, &stubReminder{}, zerolog.Nop())
	assert.Error(t, err)
}

func TestRunOnce_UsesConfiguredZone(t *testing.T) {
	rem := &stubReminder{}
	s, err := New(Config{Schedule: "0 0 * * *", Timezone: "Asia/Tokyo"}, rem, zerolog.Nop())
	require.NoError(t, err)

	// 20:00 UTC on May 16 is already May 17 in Tokyo.
	s.now = func() time.Time { return time.Date(2024, time.May, 16, 20, 0, 0, 0, time.UTC) }

	summary, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 1, rem.calls)
	assert.Equal(t, 17, rem.lastNow.Day())
	assert.Equal(t, "Asia/Tokyo", rem.lastNow.Location().String())
	assert.True(t, rem.hasDL, "runs must carry a deadline")
}

func TestRunOnce_PropagatesError(t *testing.T) {
	rem := &stubReminder{err: errors.New("mongo down")}
	s, err := New(Config{Schedule: "@daily"}, rem, zerolog.Nop())
	require.NoError(t, err)

	_, err = s.RunOnce(context.Background())
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	s, err := New(Config{Schedule: "0 0 * * *"}, &stubReminder{}, zerolog.Nop())
	require.NoError(t, err)

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}
