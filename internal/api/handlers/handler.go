package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/emergency-fund/fund-ledger/internal/types"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// maxBodySize bounds request bodies, every request payload is a small JSON object
const maxBodySize = 1 << 16

//go:generate mockery --name=FundService --output=../../../tests/mocks --outpkg=mocks --filename=mock_fund_service.go
type FundService interface {
	DoHealthCheck(ctx context.Context) error
	FundAddress(authority types.Address, seed string) (types.Address, *types.Error)
	InitializeFund(ctx context.Context, authority types.Address, seed string) (*types.FundDetails, *types.Error)
	GetFund(ctx context.Context, address types.Address) (*types.FundDetails, *types.Error)
	GetFundAccount(ctx context.Context, address types.Address) ([]byte, *types.Error)
	Donate(ctx context.Context, req types.DonateRequest) (*types.DonationEvent, *types.Error)
	ListDonations(ctx context.Context, fund types.Address, limit int64) ([]types.DonationEvent, *types.Error)
	GetBalance(ctx context.Context, address types.Address) (uint64, *types.Error)
	Airdrop(ctx context.Context, address types.Address, amount uint64) (uint64, *types.Error)
}

type Handler struct {
	service FundService
}

func New(service FundService) *Handler {
	return &Handler{
		service: service,
	}
}

type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

type Response[T any] struct {
	Data T `json:"data"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

func writeData[T any](w http.ResponseWriter, statusCode int, data T) {
	writeJSON(w, statusCode, Response[T]{Data: data})
}

// writeError renders err. Internal errors are logged and their details are
// not exposed to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err *types.Error) {
	message := err.Error()
	if err.StatusCode >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().
			Err(err).
			Str("errorCode", string(err.ErrorCode)).
			Msg("request failed")
		if err.ErrorCode == types.InternalServiceError {
			message = "Internal service error"
		}
	} else {
		log.Ctx(r.Context()).Debug().Err(err).Msg("request rejected")
	}

	writeJSON(w, err.StatusCode, ErrorResponse{
		ErrorCode: string(err.ErrorCode),
		Message:   message,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) *types.Error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return types.NewError(http.StatusBadRequest, types.BadRequest, fmt.Errorf("invalid request body: %w", err))
	}
	return nil
}

func parseAddressParam(r *http.Request, name string) (types.Address, *types.Error) {
	address, err := types.ParseAddress(chi.URLParam(r, name))
	if err != nil {
		return types.Address{}, types.NewValidationFailedError(fmt.Errorf("invalid %s: %w", name, err))
	}
	return address, nil
}

func parseAddressField(value, field string) (types.Address, *types.Error) {
	address, err := types.ParseAddress(value)
	if err != nil {
		return types.Address{}, types.NewValidationFailedError(fmt.Errorf("invalid %s: %w", field, err))
	}
	return address, nil
}

func parseLimit(r *http.Request) (int64, *types.Error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit <= 0 {
		return 0, types.NewValidationFailedError(errors.New("limit must be a positive integer"))
	}
	return limit, nil
}
