package cmd

import (
	"github.com/caarlos0/env/v10"
)

// Config holds the configuration read from the environment.
// Command line flags take precedence over it.
type Config struct {
	LedgerFile string `env:"PERSISTENCE_FILE" envDefault:"ledger.jsonl"`
	Verbose    bool   `env:"PL_VERBOSE"       envDefault:"false"`
	LogFormat  string `env:"PL_LOG_FORMAT"    envDefault:"console"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
