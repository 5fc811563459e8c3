package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"ACCESS_TOKEN_SECRET":  "access",
		"REFRESH_TOKEN_SECRET": "refresh",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, "birthdays", cfg.Mongo.Database)
	assert.Equal(t, 24*time.Hour, cfg.Token.AccessTTL)
	assert.Equal(t, 240*time.Hour, cfg.Token.RefreshTTL)
	assert.True(t, cfg.Cookie.Secure)
	assert.Equal(t, "0 0 * * *", cfg.Reminder.Schedule)
	assert.Equal(t, "UTC", cfg.Reminder.Timezone)
	assert.Equal(t, "16K", cfg.BodyLimit)
}

func TestLoad_MissingSecrets(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.Error(t, err)
}

func TestLoad_SecretsMustDiffer(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"ACCESS_TOKEN_SECRET":  "same",
		"REFRESH_TOKEN_SECRET": "same",
	}))
	require.Error(t, err)
}

func TestMailConfig_Sender(t *testing.T) {
	assert.Equal(t, "bot@example.com", MailConfig{User: "bot@example.com"}.Sender())
	assert.Equal(t, "Birthdays <hi@example.com>", MailConfig{User: "bot@example.com", From: "Birthdays <hi@example.com>"}.Sender())
}
