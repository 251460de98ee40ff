package importer

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds bulk import settings.
type Config struct {
	BatchSize int  `yaml:"batch_size" env:"IMPORT_BATCH_SIZE" env-default:"500"`
	DryRun    bool `yaml:"dry_run"    env:"IMPORT_DRY_RUN"`
}

// LoadConfig reads import configuration from a YAML file, or from the
// environment when path is empty. Priority: ENV > YAML > defaults.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("import config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("import config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("import config: read env: %w", err)
	}

	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("import config: batch_size must be positive, got %d", cfg.BatchSize)
	}
	return &cfg, nil
}
