package ports

import (
	"context"
	"time"

	"github.com/birthdaybook/birthday-api/internal/core/domain"
	"github.com/birthdaybook/birthday-api/internal/pkg/dates"
)

// BirthdayRepository defines persistence operations for birthdays.
type BirthdayRepository interface {
	Create(ctx context.Context, b *domain.Birthday) (*domain.Birthday, error)
	FindByOwner(ctx context.Context, ownerID string) (*domain.Birthday, error)
	UpdateDate(ctx context.Context, id string, date time.Time) (*domain.Birthday, error)
	Delete(ctx context.Context, id string) error
	// FindDetail returns the birthday joined with its owner.
	FindDetail(ctx context.Context, id string) (*domain.BirthdayDetail, error)
	// ListWithOwners returns every birthday whose owner still exists.
	ListWithOwners(ctx context.Context) ([]domain.BirthdayDetail, error)
	// FindByMonthDay returns birthdays (joined with owners) falling on any of
	// the given month/day values, ignoring the year.
	FindByMonthDay(ctx context.Context, days []dates.MonthDay) ([]domain.BirthdayDetail, error)
}
