package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/birthdaybook/birthday-api/internal/core/domain"
	"github.com/birthdaybook/birthday-api/internal/core/ports"
	"github.com/birthdaybook/birthday-api/internal/pkg/dates"
)

type BirthdayService struct {
	repo   ports.BirthdayRepository
	logger zerolog.Logger
}

func NewBirthdayService(repo ports.BirthdayRepository, logger zerolog.Logger) *BirthdayService {
	return &BirthdayService{repo: repo, logger: logger}
}

// Register stores the owner's birthday. Each owner has at most one record.
func (s *BirthdayService) Register(ctx context.Context, ownerID string, date time.Time) (*domain.Birthday, error) {
	if date.IsZero() {
		return nil, domain.Validation("the birthday field is empty")
	}

	if _, err := s.repo.FindByOwner(ctx, ownerID); err == nil {
		return nil, domain.ErrBirthdayExists
	} else if !errors.Is(err, domain.ErrBirthdayNotFound) {
		return nil, fmt.Errorf("register birthday: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Birthday{
		Owner:     ownerID,
		Date:      dates.Midnight(date),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("birthday_id", created.ID).Str("owner", ownerID).Msg("birthday registered")
	return created, nil
}

func (s *BirthdayService) Update(ctx context.Context, id string, date time.Time) (*domain.Birthday, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.Validation("birthday id is missing")
	}
	if date.IsZero() {
		return nil, domain.Validation("the birthday field is missing")
	}
	return s.repo.UpdateDate(ctx, id, dates.Midnight(date))
}

func (s *BirthdayService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.Validation("birthday id is missing")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("birthday_id", id).Msg("birthday deleted")
	return nil
}

func (s *BirthdayService) GetByID(ctx context.Context, id string) (*domain.BirthdayDetail, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.Validation("birthday id is missing")
	}
	return s.repo.FindDetail(ctx, id)
}

// ListUpcoming returns every birthday with the days left until its next
// occurrence, soonest first.
func (s *BirthdayService) ListUpcoming(ctx context.Context, now time.Time) ([]domain.UpcomingBirthday, error) {
	details, err := s.repo.ListWithOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("list upcoming birthdays: %w", err)
	}

	out := make([]domain.UpcomingBirthday, 0, len(details))
	for _, d := range details {
		out = append(out, domain.UpcomingBirthday{
			ID:       d.ID,
			Username: d.Username,
			Date:     d.Date,
			DaysLeft: dates.DaysUntilNext(d.Date, now),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DaysLeft != out[j].DaysLeft {
			return out[i].DaysLeft < out[j].DaysLeft
		}
		return out[i].Username < out[j].Username
	})
	return out, nil
}
