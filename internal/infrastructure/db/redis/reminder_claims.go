package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// claimTTL outlives the day it guards, so a run near midnight in any
// configured zone still sees the claim.
const claimTTL = 48 * time.Hour

// ReminderClaims marks birthday reminders as sent for a given day.
// Key format: reminder:<birthday_id>:<yyyy-mm-dd>
type ReminderClaims struct {
	client *redis.Client
}

func NewReminderClaims(client *redis.Client) *ReminderClaims {
	return &ReminderClaims{client: client}
}

// Claim reports whether the caller won the right to send the reminder.
func (c *ReminderClaims) Claim(ctx context.Context, birthdayID string, day time.Time) (bool, error) {
	ok, err := c.client.SetNX(ctx, claimKey(birthdayID, day), time.Now().UTC().Format(time.RFC3339), claimTTL).Result()
	if err != nil {
		return false, fmt.Errorf("claim reminder: %w", err)
	}
	return ok, nil
}

// Release drops a claim so a later run can retry the reminder.
func (c *ReminderClaims) Release(ctx context.Context, birthdayID string, day time.Time) error {
	if err := c.client.Del(ctx, claimKey(birthdayID, day)).Err(); err != nil {
		return fmt.Errorf("release reminder: %w", err)
	}
	return nil
}

func claimKey(birthdayID string, day time.Time) string {
	return fmt.Sprintf("reminder:%s:%s", birthdayID, day.Format("2006-01-02"))
}
