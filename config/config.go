package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Database configuration
	DatabaseURL string

	// Daily claim amount credited by /daily
	DailyAmount int64

	// Admin web console configuration
	WebAddr             string
	DiscordClientID     string
	DiscordClientSecret string
	OAuthRedirectURL    string
	AdminIDs            []string // Discord IDs allowed into the console

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from the environment, with .env as a fallback
// for local development
func load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		DailyAmount: 500,

		// Admin console
		WebAddr:             os.Getenv("WEB_ADDR"),
		DiscordClientID:     os.Getenv("DISCORD_CLIENT_ID"),
		DiscordClientSecret: os.Getenv("DISCORD_CLIENT_SECRET"),
		OAuthRedirectURL:    os.Getenv("OAUTH_REDIRECT_URL"),

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	if amount := os.Getenv("DAILY_AMOUNT"); amount != "" {
		if parsedAmount, err := strconv.ParseInt(amount, 10, 64); err == nil {
			config.DailyAmount = parsedAmount
		}
	}

	// Parse admin Discord IDs
	if adminIDs := os.Getenv("ADMIN_IDS"); adminIDs != "" {
		for _, id := range strings.Split(adminIDs, ",") {
			id = strings.TrimSpace(id)
			if id != "" {
				config.AdminIDs = append(config.AdminIDs, id)
			}
		}
	}

	if config.WebAddr == "" {
		config.WebAddr = ":8080"
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}

// IsAdmin reports whether a Discord ID is on the console allowlist
func (c *Config) IsAdmin(discordID string) bool {
	for _, id := range c.AdminIDs {
		if id == discordID {
			return true
		}
	}
	return false
}
