package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Bookkeeping policy
	StrictEntries    bool   `env:"STRICT_ENTRIES"     envDefault:"false"`
	KeywordRulesPath string `env:"KEYWORD_RULES_PATH" envDefault:""`

	// Idempotency
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"1h"`

	// Backup (optional - leave the token empty to disable)
	BackupAPIBaseURL string `env:"BACKUP_API_BASE_URL" envDefault:"https://api.github.com"`
	BackupRepo       string `env:"BACKUP_REPO"         envDefault:""`
	BackupFilePath   string `env:"BACKUP_FILE_PATH"    envDefault:"backup/jurnal.json"`
	BackupBranch     string `env:"BACKUP_BRANCH"       envDefault:"main"`
	BackupToken      string `env:"BACKUP_TOKEN"        envDefault:""`
	BackupRetries    uint64 `env:"BACKUP_RETRIES"      envDefault:"0"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// BackupEnabled reports whether the remote backup boundary is configured.
func (c *Config) BackupEnabled() bool {
	return c.BackupRepo != "" && c.BackupToken != ""
}
