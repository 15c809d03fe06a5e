package handlers

import (
	"net/http"

	"github.com/emergency-fund/fund-ledger/internal/types"
)

type AirdropRequest struct {
	Amount uint64 `json:"amount"`
}

type BalancePublic struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
	// Tokens is the balance in whole tokens, e.g. "1.5"
	Tokens string `json:"tokens"`
}

func balancePublic(address types.Address, balance uint64) BalancePublic {
	return BalancePublic{
		Address: address.String(),
		Balance: balance,
		Tokens:  types.FormatTokens(balance),
	}
}

func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	address, err := parseAddressParam(r, "address")
	if err != nil {
		writeError(w, r, err)
		return
	}

	balance, err := h.service.GetBalance(r.Context(), address)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, balancePublic(address, balance))
}

func (h *Handler) Airdrop(w http.ResponseWriter, r *http.Request) {
	address, err := parseAddressParam(r, "address")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req AirdropRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	balance, err := h.service.Airdrop(r.Context(), address, req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, balancePublic(address, balance))
}
