package cliparse

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	APIBaseURL string
	TelegramID int64
	StateDir   string
	Timeout    time.Duration
	Verbose    bool
}

// ParseFlags validates flags with env variable fallback
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("vitech-client", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "api", "", "Backend API base URL")
	fs.Int64Var(&cfg.TelegramID, "id", 0, "Telegram user id (remembered after first run)")
	fs.StringVar(&cfg.StateDir, "state", "", "Local state directory")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "Per-request timeout")
	fs.BoolVar(&cfg.Verbose, "v", false, "Log every request")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = os.Getenv("VITECH_API_URL")
	}
	if cfg.APIBaseURL == "" {
		return Config{}, errors.New("API base URL required (use -api or VITECH_API_URL env)")
	}

	if cfg.TelegramID == 0 {
		if idStr := os.Getenv("TELEGRAM_ID"); idStr != "" {
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid TELEGRAM_ID env variable")
			}
			cfg.TelegramID = id
		}
		// Zero is allowed: a saved identity may exist in the store.
	}

	if cfg.StateDir == "" {
		cfg.StateDir = os.Getenv("VITECH_STATE_DIR")
	}
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, errors.New("state dir required (use -state or VITECH_STATE_DIR env)")
		}
		cfg.StateDir = filepath.Join(home, ".vitech")
	}

	if cfg.Timeout == 0 {
		if s := os.Getenv("VITECH_TIMEOUT"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid VITECH_TIMEOUT env variable")
			}
			cfg.Timeout = d
		} else {
			cfg.Timeout = 15 * time.Second // default
		}
	}

	return cfg, nil
}
