package handlers

import (
	"net/http"

	"github.com/emergency-fund/fund-ledger/internal/types"
)

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DoHealthCheck(r.Context()); err != nil {
		writeError(w, r, types.NewErrorWithMsg(
			http.StatusServiceUnavailable, types.InternalServiceError, "database is not reachable",
		))
		return
	}
	writeData(w, http.StatusOK, "ok")
}
