package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration loaded from the environment.
type Config struct {
	Port   string
	DBPath string

	// Tier B classifier settings; an empty endpoint disables the tier.
	AIEndpoint string
	AIAPIKey   string
	AIModel    string
	AITimeout  time.Duration

	// Timezone used for day windows and trip type derivation.
	Timezone string
}

// Load reads the configuration from environment variables, applying
// defaults for anything unset.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/carbon/carbon.db"
	}

	model := os.Getenv("AI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	timeout := 30 * time.Second
	if s := os.Getenv("AI_TIMEOUT_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	tz := os.Getenv("TIMEZONE")
	if tz == "" {
		tz = "Local"
	}

	return &Config{
		Port:       port,
		DBPath:     dbPath,
		AIEndpoint: os.Getenv("AI_ENDPOINT"),
		AIAPIKey:   os.Getenv("AI_API_KEY"),
		AIModel:    model,
		AITimeout:  timeout,
		Timezone:   tz,
	}
}

// Location resolves the configured timezone, falling back to the system
// local zone on failure.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
