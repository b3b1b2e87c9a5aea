package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "STOCKBOOK"

// Env variable names referenced by tests.
const (
	EnvLogLevel   = "STOCKBOOK_LOG_LEVEL"
	EnvDBPath     = "STOCKBOOK_DB_PATH"
	EnvSeedPath   = "STOCKBOOK_SEED_PATH"
	EnvBackupPath = "STOCKBOOK_BACKUP_PATH"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Files FilesConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	// Diagnostics default to warn so log lines do not interleave with the
	// interactive prompts.
	LogLevel  string `envconfig:"STOCKBOOK_LOG_LEVEL" default:"warn"`
	LogFormat string `envconfig:"STOCKBOOK_LOG_FORMAT" default:"console"`
}

type DBConfig struct {
	Path string `envconfig:"STOCKBOOK_DB_PATH" default:"inventory.db"`
}

type FilesConfig struct {
	SeedPath   string `envconfig:"STOCKBOOK_SEED_PATH" default:"inventory.csv"`
	BackupPath string `envconfig:"STOCKBOOK_BACKUP_PATH" default:"backup_inventory.csv"`
}
