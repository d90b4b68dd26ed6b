package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setMinimalEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GUILD_NAME", "TEST_GUILD_NAME", "TESTING", "CATEGORY_NAME",
		"GENERAL_CHANNEL", "COMMAND_CHANNEL", "CAPTAINS_CHANNEL",
		"TIMEZONE", "PRACTICE_DAYS", "CUTOFF_HOUR",
		"REMINDER_CRON", "GREETING_CRON", "ROSTER_PATH", "LOCALE",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("DISCORD_TOKEN", "test-token")
}

func TestLoadDefaults(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.Token)
	assert.Equal(t, "Ravens Ultimate", cfg.GuildName)
	assert.Equal(t, "Bot Tester", cfg.TestGuildName)
	assert.False(t, cfg.Testing)
	assert.Equal(t, "All Teams", cfg.CategoryName)
	assert.Equal(t, "general", cfg.GeneralChannel)
	assert.Equal(t, "bot-commands", cfg.CommandChannel)
	assert.Equal(t, "captains", cfg.CaptainsChannel)
	assert.Equal(t, "America/Toronto", cfg.Timezone)
	assert.Equal(t, []time.Weekday{time.Tuesday, time.Wednesday, time.Friday}, cfg.PracticeDays)
	assert.Equal(t, 7, cfg.CutoffHour)
	assert.Equal(t, "0 19 * * *", cfg.ReminderCron)
	assert.Equal(t, "0 0 * * *", cfg.GreetingCron)
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoadMissingToken(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("DISCORD_TOKEN", "  ")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("TESTING", "true")
	t.Setenv("PRACTICE_DAYS", "1,4")
	t.Setenv("CUTOFF_HOUR", "9")
	t.Setenv("GREETING_CRON", "0 9 * * *")
	t.Setenv("COMMAND_CHANNEL", "staff")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Testing)
	assert.Equal(t, []time.Weekday{time.Monday, time.Thursday}, cfg.PracticeDays)
	assert.Equal(t, 9, cfg.CutoffHour)
	assert.Equal(t, "0 9 * * *", cfg.GreetingCron)
	assert.Equal(t, "staff", cfg.CommandChannel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad testing flag", "TESTING", "maybe"},
		{"weekday out of range", "PRACTICE_DAYS", "2,8"},
		{"weekday not a number", "PRACTICE_DAYS", "tuesday"},
		{"cutoff out of range", "CUTOFF_HOUR", "24"},
		{"unknown timezone", "TIMEZONE", "Mars/Olympus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setMinimalEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
