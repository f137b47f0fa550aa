package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type DBConfig struct {
	Path string
}

type Config struct {
	Environment string
	UserID      string
	DB          DBConfig
}

// Load reads configuration from an optional app.env file and the process
// environment, with the environment taking precedence.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("STARSOFTFLOW")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("ENV"),
		UserID:      v.GetString("USER_ID"),
		DB: DBConfig{
			Path: v.GetString("DB_PATH"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.DB.Path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DB.Path = filepath.Join(home, ".starsoftflow", "starsoftflow.db")
	}
	return cfg, nil
}
