package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "FUND_LEDGER"

type Config struct {
	Db         DbConfig         `mapstructure:"db"`
	Queue      QueueConfig      `mapstructure:"queue"`
	Server     ServerConfig     `mapstructure:"server"`
	Fund       FundConfig       `mapstructure:"fund"`
	Dispatcher DispatcherConfig `mapstructure:"dispatcher"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Db.Validate(); err != nil {
		return err
	}

	if err := cfg.Queue.Validate(); err != nil {
		return err
	}

	if err := cfg.Server.Validate(); err != nil {
		return err
	}

	if err := cfg.Fund.Validate(); err != nil {
		return err
	}

	if err := cfg.Dispatcher.Validate(); err != nil {
		return err
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}

	return nil
}

// New returns a fully parsed Config object from a given file path.
// Every key can be overridden by an environment variable, e.g.
// FUND_LEDGER_DB_ADDRESS overrides db.address.
func New(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgFile)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
