package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full process configuration, parsed from the environment.
// A .env file is honored when present so local runs need no exported vars.
type Config struct {
	Port           string        `env:"PORT" envDefault:"5200"`
	DatabaseURL    string        `env:"DATABASE_URL,required"`
	AllowedOrigins string        `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	// Seed credentials for the bootstrap admin and demo hunters. Seeding is
	// skipped entirely when AdminPassword is empty.
	AdminUsername string `env:"SEED_ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD"`
	DemoUsername  string `env:"SEED_DEMO_USERNAME" envDefault:"demo"`
	DemoPassword  string `env:"SEED_DEMO_PASSWORD"`
}

// Load reads .env (if any) and parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
