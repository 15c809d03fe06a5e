package services

import (
	"context"

	"github.com/emergency-fund/fund-ledger/internal/config"
	"github.com/emergency-fund/fund-ledger/internal/db"
)

type Service struct {
	cfg   *config.Config
	db    db.DbInterface
	clock Clock
}

func NewService(cfg *config.Config, db db.DbInterface, clock Clock) *Service {
	return &Service{
		cfg:   cfg,
		db:    db,
		clock: clock,
	}
}

func (s *Service) DoHealthCheck(ctx context.Context) error {
	return s.db.Ping(ctx)
}
