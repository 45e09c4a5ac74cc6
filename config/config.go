package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":9090"`

	// memory, sqlite or postgres
	StoreDriver string        `envconfig:"STORE_DRIVER" default:"sqlite"`
	SQLitePath  string        `envconfig:"SQLITE_PATH" default:"courtdesk.db"`
	DatabaseURL string        `envconfig:"DATABASE_URL"`
	KeyPrefix   string        `envconfig:"KEY_PREFIX" default:"courtdesk-"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"2s"`

	DeskPIN    string `envconfig:"DESK_PIN" required:"true"`
	FacilityTZ string `envconfig:"FACILITY_TZ" default:"America/Argentina/Buenos_Aires"`

	BackupCheckInterval time.Duration `envconfig:"BACKUP_CHECK_INTERVAL" default:"1h"`

	DiscordBotToken  string `envconfig:"DISCORD_BOT_TOKEN"`
	DiscordChannelID string `envconfig:"DISCORD_CHANNEL_ID"`
}

func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Default().With("component", "config").Info("no .env file loaded", "err", err)
	}

	var c Config

	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}

	if c.DeskPIN == "" {
		return Config{}, fmt.Errorf("DESK_PIN cannot be empty")
	}

	switch c.StoreDriver {
	case "memory", "sqlite":
	case "postgres":
		if c.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required for the postgres store")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER '%v'", c.StoreDriver)
	}

	return c, nil
}

func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.FacilityTZ)

	if err != nil {
		return time.Local
	}

	return loc
}
