package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"ravensbot/pkg/tz"
)

// Defaults match the production server the bot was written for.
const (
	defaultGuildName       = "Ravens Ultimate"
	defaultTestGuildName   = "Bot Tester"
	defaultCategoryName    = "All Teams"
	defaultGeneralChannel  = "general"
	defaultCommandChannel  = "bot-commands"
	defaultCaptainsChannel = "captains"
	defaultPracticeDays    = "2,3,5" // Tue, Wed, Fri
	defaultCutoffHour      = 7
	defaultReminderCron    = "0 19 * * *"
	defaultGreetingCron    = "0 0 * * *"
	defaultLocale          = "en"
)

type Config struct {
	Token           string
	GuildName       string
	TestGuildName   string
	Testing         bool
	CategoryName    string
	GeneralChannel  string
	CommandChannel  string
	CaptainsChannel string
	Timezone        string
	PracticeDays    []time.Weekday
	CutoffHour      int
	ReminderCron    string
	GreetingCron    string
	RosterPath      string
	Locale          string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		Token:           os.Getenv("DISCORD_TOKEN"),
		GuildName:       os.Getenv("GUILD_NAME"),
		TestGuildName:   os.Getenv("TEST_GUILD_NAME"),
		CategoryName:    os.Getenv("CATEGORY_NAME"),
		GeneralChannel:  os.Getenv("GENERAL_CHANNEL"),
		CommandChannel:  os.Getenv("COMMAND_CHANNEL"),
		CaptainsChannel: os.Getenv("CAPTAINS_CHANNEL"),
		Timezone:        os.Getenv("TIMEZONE"),
		ReminderCron:    os.Getenv("REMINDER_CRON"),
		GreetingCron:    os.Getenv("GREETING_CRON"),
		RosterPath:      os.Getenv("ROSTER_PATH"),
		Locale:          os.Getenv("LOCALE"),
	}

	if v := os.Getenv("TESTING"); v != "" {
		testing, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("config: TESTING must be a boolean, got %q", v)
		}
		cfg.Testing = testing
	}

	days, err := parseWeekdays(envOr("PRACTICE_DAYS", defaultPracticeDays))
	if err != nil {
		return nil, err
	}
	cfg.PracticeDays = days

	cutoff, err := parseCutoffHour(os.Getenv("CUTOFF_HOUR"))
	if err != nil {
		return nil, err
	}
	cfg.CutoffHour = cutoff

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies every rule on the loaded configuration and fills defaults.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: DISCORD_TOKEN is required and cannot be empty")
	}

	applyDefault(&c.GuildName, defaultGuildName)
	applyDefault(&c.TestGuildName, defaultTestGuildName)
	applyDefault(&c.CategoryName, defaultCategoryName)
	applyDefault(&c.GeneralChannel, defaultGeneralChannel)
	applyDefault(&c.CommandChannel, defaultCommandChannel)
	applyDefault(&c.CaptainsChannel, defaultCaptainsChannel)
	applyDefault(&c.Timezone, tz.DefaultName)
	applyDefault(&c.ReminderCron, defaultReminderCron)
	applyDefault(&c.GreetingCron, defaultGreetingCron)
	applyDefault(&c.Locale, defaultLocale)

	if _, err := tz.Load(c.Timezone); err != nil {
		return fmt.Errorf("config: TIMEZONE %q is not a valid location: %w", c.Timezone, err)
	}

	return nil
}

func applyDefault(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseWeekdays parses a comma-separated weekday list, Sunday = 0.
func parseWeekdays(raw string) ([]time.Weekday, error) {
	parts := strings.Split(raw, ",")
	days := make([]time.Weekday, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("config: PRACTICE_DAYS entry %q must be a weekday number 0-6", p)
		}
		days = append(days, time.Weekday(n))
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("config: PRACTICE_DAYS cannot be empty")
	}
	return days, nil
}

func parseCutoffHour(raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return defaultCutoffHour, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 || n > 23 {
		return 0, fmt.Errorf("config: CUTOFF_HOUR %q must be an hour 0-23", raw)
	}
	return n, nil
}
