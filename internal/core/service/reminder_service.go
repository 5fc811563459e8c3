package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/birthdaybook/birthday-api/internal/core/ports"
	"github.com/birthdaybook/birthday-api/internal/pkg/dates"
)

type reminderService struct {
	repo       ports.BirthdayRepository
	claims     ports.ReminderClaims
	dispatcher ports.MailDispatcher
	greetings  ports.GreetingRenderer
	log        zerolog.Logger
}

// NewReminderService returns the daily birthday notifier. claims may be nil,
// in which case every matching birthday is mailed on each run.
func NewReminderService(
	repo ports.BirthdayRepository,
	claims ports.ReminderClaims,
	dispatcher ports.MailDispatcher,
	greetings ports.GreetingRenderer,
	log zerolog.Logger,
) ports.ReminderService {
	return &reminderService{
		repo:       repo,
		claims:     claims,
		dispatcher: dispatcher,
		greetings:  greetings,
		log:        log,
	}
}

// Run mails everyone whose birthday falls on now's calendar date.
func (s *reminderService) Run(ctx context.Context, now time.Time) (ports.RunSummary, error) {
	summary := ports.RunSummary{RunID: uuid.NewString()}
	log := s.log.With().Str("run_id", summary.RunID).Logger()
	day := dates.Midnight(now)

	matches, err := s.repo.FindByMonthDay(ctx, dates.AnniversariesOn(now))
	if err != nil {
		log.Error().Err(err).Msg("birthday query failed, skipping run")
		return summary, fmt.Errorf("reminder run: %w", err)
	}
	summary.Matched = len(matches)

	var (
		batch   []ports.Email
		claimed = make(map[string][]string) // recipient -> birthday ids
	)
	for _, m := range matches {
		if m.Email == "" {
			log.Warn().Str("birthday_id", m.ID).Msg("owner has no email, skipping")
			summary.Skipped++
			continue
		}

		if s.claims != nil {
			ok, err := s.claims.Claim(ctx, m.ID, day)
			switch {
			case err != nil:
				log.Warn().Err(err).Str("birthday_id", m.ID).Msg("reminder claim failed, sending anyway")
			case !ok:
				log.Debug().Str("birthday_id", m.ID).Msg("reminder already sent")
				summary.Skipped++
				continue
			}
		}

		subject, body, err := s.greetings.Greeting(m.Username)
		if err != nil {
			log.Error().Err(err).Str("birthday_id", m.ID).Msg("render greeting failed")
			summary.Failed++
			s.release(ctx, log, m.ID, day)
			continue
		}

		batch = append(batch, ports.Email{To: m.Email, Subject: subject, Body: body})
		claimed[m.Email] = append(claimed[m.Email], m.ID)
	}

	if len(batch) > 0 {
		result := s.dispatcher.Dispatch(ctx, batch)
		summary.Sent += result.Sent
		summary.Failed += len(result.Failed)
		for _, f := range result.Failed {
			log.Error().Err(f.Err).Str("to", f.Email.To).Msg("birthday email failed")
			for _, id := range claimed[f.Email.To] {
				s.release(ctx, log, id, day)
			}
		}
	}

	log.Info().
		Int("matched", summary.Matched).
		Int("skipped", summary.Skipped).
		Int("sent", summary.Sent).
		Int("failed", summary.Failed).
		Msg("birthday reminder run finished")
	return summary, nil
}

func (s *reminderService) release(ctx context.Context, log zerolog.Logger, birthdayID string, day time.Time) {
	if s.claims == nil {
		return
	}
	if err := s.claims.Release(ctx, birthdayID, day); err != nil {
		log.Warn().Err(err).Str("birthday_id", birthdayID).Msg("release reminder claim failed")
	}
}
