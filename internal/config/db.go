package config

import (
	"fmt"
	"net/url"

	"go.mongodb.org/mongo-driver/mongo/options"
)

type DbConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"db-name"`
	Address  string `mapstructure:"address"`
}

func (cfg *DbConfig) Validate() error {
	if cfg.Address == "" {
		return fmt.Errorf("database address cannot be empty")
	}
	if _, err := url.Parse(cfg.Address); err != nil {
		return fmt.Errorf("invalid database address: %w", err)
	}

	if cfg.DbName == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	// credentials are optional, but a password without a user is a mistake
	if cfg.Username == "" && cfg.Password != "" {
		return fmt.Errorf("database username cannot be empty when password is set")
	}

	return nil
}

// ToClientOptions builds mongo client options. Credentials are attached only
// when a username is configured so that a replica set without auth works too.
func (cfg *DbConfig) ToClientOptions() *options.ClientOptions {
	opts := options.Client().ApplyURI(cfg.Address)
	if cfg.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}
	return opts
}
