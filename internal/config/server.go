package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	WriteTimeout time.Duration `mapstructure:"write-timeout"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle-timeout"`
	// EnableAirdrop exposes the development faucet endpoint.
	EnableAirdrop    bool   `mapstructure:"enable-airdrop"`
	MaxAirdropAmount uint64 `mapstructure:"max-airdrop-amount"`
	DefaultListLimit int64  `mapstructure:"default-list-limit"`
	MaxListLimit     int64  `mapstructure:"max-list-limit"`
}

func (cfg *ServerConfig) Validate() error {
	if cfg.Host == "" {
		return errors.New("server host cannot be empty")
	}

	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("server port must be between 0 and 65535")
	}

	if cfg.WriteTimeout <= 0 {
		return errors.New("write timeout must be positive")
	}

	if cfg.ReadTimeout <= 0 {
		return errors.New("read timeout must be positive")
	}

	if cfg.IdleTimeout <= 0 {
		return errors.New("idle timeout must be positive")
	}

	if cfg.EnableAirdrop && cfg.MaxAirdropAmount == 0 {
		return errors.New("max airdrop amount must be positive when airdrop is enabled")
	}

	if cfg.MaxListLimit <= 0 {
		cfg.MaxListLimit = maxListLimit
	}

	if cfg.DefaultListLimit <= 0 {
		cfg.DefaultListLimit = defaultListLimit
	}

	if cfg.DefaultListLimit > cfg.MaxListLimit {
		return errors.New("default list limit cannot exceed max list limit")
	}

	return nil
}
