package config

import (
	"errors"
	"time"
)

const (
	QueueTypeQuorum  = "quorum"
	QueueTypeClassic = "classic"

	defaultQueueName      = "donation_events_queue"
	defaultPublishTimeout = 5 * time.Second
)

type QueueConfig struct {
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	Url            string        `mapstructure:"url"`
	QueueName      string        `mapstructure:"queue-name"`
	QueueType      string        `mapstructure:"queue-type"`
	PublishTimeout time.Duration `mapstructure:"publish-timeout"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.User == "" {
		return errors.New("missing queue user")
	}

	if cfg.Password == "" {
		return errors.New("missing queue password")
	}

	if cfg.Url == "" {
		return errors.New("missing queue url")
	}

	if cfg.QueueName == "" {
		cfg.QueueName = defaultQueueName
	}

	switch cfg.QueueType {
	case "":
		cfg.QueueType = QueueTypeQuorum
	case QueueTypeQuorum, QueueTypeClassic:
	default:
		return errors.New("queue type must be either quorum or classic")
	}

	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = defaultPublishTimeout
	}

	return nil
}
