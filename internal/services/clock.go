package services

import (
	"context"
	"time"
)

// Clock supplies the timestamp recorded with donation events.
//
//go:generate mockery --name=Clock --output=../../tests/mocks --outpkg=mocks --filename=mock_clock.go
type Clock interface {
	Now(ctx context.Context) (time.Time, error)
}

type SystemClock struct{}

func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

func (c *SystemClock) Now(ctx context.Context) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	return time.Now().UTC(), nil
}
