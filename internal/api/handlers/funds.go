package handlers

import (
	"encoding/base64"
	"net/http"
	"time"

	"github.com/emergency-fund/fund-ledger/internal/signer"
	"github.com/emergency-fund/fund-ledger/internal/types"
)

type InitializeFundRequest struct {
	Authority    string `json:"authority"`
	Seed         string `json:"seed"`
	InvocationID string `json:"invocation_id"`
	Signature    string `json:"signature"`
}

type FundPublic struct {
	Address     string    `json:"address"`
	Authority   string    `json:"authority"`
	TotalRaised uint64    `json:"total_raised"`
	Balance     uint64    `json:"balance"`
	CreatedAt   time.Time `json:"created_at"`
}

type FundAccountPublic struct {
	Address string `json:"address"`
	Size    int    `json:"size"`
	Data    string `json:"data"`
}

func fundPublic(fund *types.FundDetails) FundPublic {
	return FundPublic{
		Address:     fund.Address.String(),
		Authority:   fund.Authority.String(),
		TotalRaised: fund.TotalRaised,
		Balance:     fund.Balance,
		CreatedAt:   fund.CreatedAt,
	}
}

// InitializeFund creates a fund owned by the signing authority.
func (h *Handler) InitializeFund(w http.ResponseWriter, r *http.Request) {
	var req InitializeFundRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	authority, err := parseAddressField(req.Authority, "authority")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(req.Seed) > types.MaxSeedLength {
		writeError(w, r, types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "seed is too long"))
		return
	}

	// the signature covers the derived slot so it is only valid for this
	// deployment's program id
	fundAddress, err := h.service.FundAddress(authority, req.Seed)
	if err != nil {
		writeError(w, r, err)
		return
	}

	invocation := signer.Invocation{
		Op:           signer.OpInitialize,
		Fund:         fundAddress.String(),
		Signer:       authority.String(),
		Seed:         req.Seed,
		InvocationID: req.InvocationID,
	}
	if err := verifySignature(invocation, req.Signature); err != nil {
		writeError(w, r, err)
		return
	}

	fund, err := h.service.InitializeFund(r.Context(), authority, req.Seed)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, fundPublic(fund))
}

func (h *Handler) GetFund(w http.ResponseWriter, r *http.Request) {
	address, err := parseAddressParam(r, "address")
	if err != nil {
		writeError(w, r, err)
		return
	}

	fund, err := h.service.GetFund(r.Context(), address)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, fundPublic(fund))
}

// GetFundAccount returns the fund record in its binary account layout.
func (h *Handler) GetFundAccount(w http.ResponseWriter, r *http.Request) {
	address, err := parseAddressParam(r, "address")
	if err != nil {
		writeError(w, r, err)
		return
	}

	data, err := h.service.GetFundAccount(r.Context(), address)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, FundAccountPublic{
		Address: address.String(),
		Size:    len(data),
		Data:    base64.StdEncoding.EncodeToString(data),
	})
}

func verifySignature(invocation signer.Invocation, signature string) *types.Error {
	if signature == "" {
		return types.NewErrorWithMsg(http.StatusUnauthorized, types.Unauthorized, "missing signature")
	}
	if _, err := signer.Verify(invocation, signature); err != nil {
		return types.NewError(http.StatusUnauthorized, types.Unauthorized, err)
	}
	return nil
}
