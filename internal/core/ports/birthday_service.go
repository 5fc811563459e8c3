package ports

import (
	"context"
	"time"

	"github.com/birthdaybook/birthday-api/internal/core/domain"
)

// BirthdayService defines use-case operations for birthdays.
type BirthdayService interface {
	Register(ctx context.Context, ownerID string, date time.Time) (*domain.Birthday, error)
	Update(ctx context.Context, id string, date time.Time) (*domain.Birthday, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.BirthdayDetail, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]domain.UpcomingBirthday, error)
}
