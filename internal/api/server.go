package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/emergency-fund/fund-ledger/internal/api/handlers"
	"github.com/emergency-fund/fund-ledger/internal/config"
	"github.com/rs/zerolog/log"
)

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, service handlers.FundService) *Server {
	h := handlers.New(service)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      NewRouter(h, cfg.Server.EnableAirdrop),
			WriteTimeout: cfg.Server.WriteTimeout,
			ReadTimeout:  cfg.Server.ReadTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
}

// Start blocks until the server stops. A graceful shutdown is not an error.
func (s *Server) Start() error {
	log.Info().Msgf("Starting server on %s", s.httpServer.Addr)

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}
