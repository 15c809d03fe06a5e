package api

import (
	"context"
	"net/http"
	"time"

	"github.com/emergency-fund/fund-ledger/internal/api/handlers"
	"github.com/emergency-fund/fund-ledger/internal/observability/metrics"
	"github.com/emergency-fund/fund-ledger/internal/observability/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(h *handlers.Handler, enableAirdrop bool) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		requestLogger,
	)

	r.Get("/healthcheck", h.HealthCheck)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/funds", h.InitializeFund)
		r.Route("/funds/{address}", func(r chi.Router) {
			r.Get("/", h.GetFund)
			r.Get("/account", h.GetFundAccount)
			r.Post("/donations", h.Donate)
			r.Get("/donations", h.ListDonations)
		})

		r.Route("/balances/{address}", func(r chi.Router) {
			r.Get("/", h.GetBalance)
			if enableAirdrop {
				r.Post("/airdrop", h.Airdrop)
			}
		})
	})

	return r
}

// requestLogger attaches a trace id logger to the request context, logs the
// outcome of the request and records its latency.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()
		var ctx context.Context
		if id := r.Header.Get(tracing.TraceIDHeader); id != "" {
			ctx = tracing.WithTraceID(r.Context(), id)
		} else {
			ctx = tracing.InjectTraceID(r.Context())
		}
		w.Header().Set(tracing.TraceIDHeader, tracing.TraceID(ctx))
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		duration := time.Since(startTime)
		path := r.URL.Path
		if rctx := chi.RouteContext(ctx); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}
		metrics.RecordHttpRequestDuration(duration, r.Method, path, ww.Status())

		log.Ctx(ctx).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", duration).
			Msg("Request handled")
	})
}
