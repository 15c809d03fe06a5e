package handlers

import (
	"net/http"

	"github.com/emergency-fund/fund-ledger/internal/signer"
	"github.com/emergency-fund/fund-ledger/internal/types"
)

type DonateRequest struct {
	Donor        string `json:"donor"`
	Amount       uint64 `json:"amount"`
	InvocationID string `json:"invocation_id"`
	Signature    string `json:"signature"`
}

// Donate moves value from the signing donor into the fund.
func (h *Handler) Donate(w http.ResponseWriter, r *http.Request) {
	fund, err := parseAddressParam(r, "address")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req DonateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	donor, err := parseAddressField(req.Donor, "donor")
	if err != nil {
		writeError(w, r, err)
		return
	}

	invocation := signer.Invocation{
		Op:           signer.OpDonate,
		Fund:         fund.String(),
		Signer:       donor.String(),
		Amount:       req.Amount,
		InvocationID: req.InvocationID,
	}
	if err := verifySignature(invocation, req.Signature); err != nil {
		writeError(w, r, err)
		return
	}

	event, err := h.service.Donate(r.Context(), types.DonateRequest{
		Fund:         fund,
		Donor:        donor,
		Amount:       req.Amount,
		InvocationID: req.InvocationID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, event)
}

func (h *Handler) ListDonations(w http.ResponseWriter, r *http.Request) {
	fund, err := parseAddressParam(r, "address")
	if err != nil {
		writeError(w, r, err)
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	events, err := h.service.ListDonations(r.Context(), fund, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if events == nil {
		events = []types.DonationEvent{}
	}
	writeData(w, http.StatusOK, events)
}
