package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl      string
	ServerPort string
}

// Load reads the environment (a local .env is honored when present).
// DATABASE_URL and PORT are required, the process is useless without them.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBUrl:      os.Getenv("DATABASE_URL"),
		ServerPort: os.Getenv("PORT"),
	}

	if cfg.DBUrl == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.ServerPort == "" {
		log.Fatal("PORT is required")
	}

	return cfg
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
