package config

import (
	"fmt"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

// Config holds everything the process needs, bound from environment
// variables (a local .env file is picked up automatically in dev).
type Config struct {
	Port    string
	GinMode string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// RedisAddr enables the listing cache when non-empty.
	RedisAddr     string
	RedisPassword string

	// SubmissionMode is "direct" (publish immediately) or "moderated"
	// (stage into the submissions table).
	SubmissionMode string
}

// Load binds config from the environment with sane local-dev defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "stnh")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("SUBMISSION_MODE", "direct")

	cfg := &Config{
		Port:           v.GetString("PORT"),
		GinMode:        v.GetString("GIN_MODE"),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		DBSSLMode:      v.GetString("DB_SSLMODE"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		SubmissionMode: v.GetString("SUBMISSION_MODE"),
	}

	if cfg.SubmissionMode != "direct" && cfg.SubmissionMode != "moderated" {
		return nil, fmt.Errorf("invalid SUBMISSION_MODE %q (want direct or moderated)", cfg.SubmissionMode)
	}

	return cfg, nil
}

// DSN builds the postgres connection string the database package opens.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
