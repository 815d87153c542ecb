package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the tracker process.
type Config struct {
	DataFile        string
	Env             string
	RefreshInterval time.Duration
}

// Load reads configuration from environment variables with sane
// defaults, consulting a local .env file when present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DataFile:        strings.TrimSpace(os.Getenv("KIDTASKS_DATA_FILE")),
		Env:             strings.TrimSpace(os.Getenv("KIDTASKS_ENV")),
		RefreshInterval: parseSeconds(strings.TrimSpace(os.Getenv("KIDTASKS_REFRESH_SECONDS"))),
	}

	if cfg.DataFile == "" {
		cfg.DataFile = "kid_tasks_data.json"
	}
	if cfg.Env == "" {
		cfg.Env = "production"
	}
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = time.Second
	}
	return cfg
}

func parseSeconds(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
