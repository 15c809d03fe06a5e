package config

import (
	"errors"
	"time"
)

const (
	defaultDispatcherBatchSize = 50
	defaultPublishRetries      = 3
	defaultRetryInterval       = 200 * time.Millisecond
)

type DispatcherConfig struct {
	PollingInterval time.Duration `mapstructure:"polling-interval"`
	BatchSize       int64         `mapstructure:"batch-size"`
	// MaxAttempts is the number of dispatch cycles an event may fail before
	// it is left in FAILED state for good.
	MaxAttempts    int           `mapstructure:"max-attempts"`
	PublishRetries uint          `mapstructure:"publish-retries"`
	RetryInterval  time.Duration `mapstructure:"retry-interval"`
}

func (cfg *DispatcherConfig) Validate() error {
	if cfg.PollingInterval <= 0 {
		return errors.New("polling-interval must be positive")
	}

	if cfg.MaxAttempts <= 0 {
		return errors.New("max-attempts must be positive")
	}

	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultDispatcherBatchSize
	}

	if cfg.PublishRetries == 0 {
		cfg.PublishRetries = defaultPublishRetries
	}

	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultRetryInterval
	}

	return nil
}
