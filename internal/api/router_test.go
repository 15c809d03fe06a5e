package api_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/emergency-fund/fund-ledger/internal/api"
	"github.com/emergency-fund/fund-ledger/internal/api/handlers"
	"github.com/emergency-fund/fund-ledger/internal/observability/tracing"
	"github.com/emergency-fund/fund-ledger/internal/signer"
	"github.com/emergency-fund/fund-ledger/internal/types"
	"github.com/emergency-fund/fund-ledger/tests/mocks"
	"github.com/emergency-fund/fund-ledger/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, enableAirdrop bool) (http.Handler, *mocks.FundService) {
	service := mocks.NewFundService(t)
	return api.NewRouter(handlers.New(service), enableAirdrop), service
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		bz, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(bz)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func newKey(t *testing.T) (*btcec.PrivateKey, types.Address) {
	t.Helper()

	privKey, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	return privKey, signer.AddressOf(privKey)
}

func sign(t *testing.T, privKey *btcec.PrivateKey, inv signer.Invocation) string {
	t.Helper()

	sig, err := signer.Sign(privKey, inv)
	require.NoError(t, err)
	return sig
}

func TestHealthCheck(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		router, service := newTestRouter(t, false)
		service.On("DoHealthCheck", mock.Anything).Return(nil)

		rec := do(t, router, http.MethodGet, "/healthcheck", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(tracing.TraceIDHeader))
	})
	t.Run("database down", func(t *testing.T) {
		router, service := newTestRouter(t, false)
		service.On("DoHealthCheck", mock.Anything).Return(errors.New("connection refused"))

		rec := do(t, router, http.MethodGet, "/healthcheck", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
	t.Run("trace id is propagated", func(t *testing.T) {
		router, service := newTestRouter(t, false)
		service.On("DoHealthCheck", mock.Anything).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set(tracing.TraceIDHeader, "trace-1")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "trace-1", rec.Header().Get(tracing.TraceIDHeader))
	})
}

func TestInitializeFund(t *testing.T) {
	privKey, authority := newKey(t)
	fund := testutil.RandomAddress(t)
	invocationID := gofakeit.UUID()

	request := func(seed, signature string) handlers.InitializeFundRequest {
		return handlers.InitializeFundRequest{
			Authority:    authority.String(),
			Seed:         seed,
			InvocationID: invocationID,
			Signature:    signature,
		}
	}
	invocation := func(seed string) signer.Invocation {
		return signer.Invocation{
			Op:           signer.OpInitialize,
			Fund:         fund.String(),
			Signer:       authority.String(),
			Seed:         seed,
			InvocationID: invocationID,
		}
	}

	t.Run("ok", func(t *testing.T) {
		router, service := newTestRouter(t, false)
		createdAt := time.Unix(1_700_000_000, 0).UTC()
		service.On("FundAddress", authority, "relief").Return(fund, nil)
		service.On("InitializeFund", mock.Anything, authority, "relief").Return(&types.FundDetails{
			Address:   fund,
			Authority: authority,
			Balance:   1000,
			CreatedAt: createdAt,
		}, nil)

		rec := do(t, router, http.MethodPost, "/v1/funds", request("relief", sign(t, privKey, invocation("relief"))))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp handlers.Response[handlers.FundPublic]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, fund.String(), resp.Data.Address)
		assert.Equal(t, authority.String(), resp.Data.Authority)
		assert.Zero(t, resp.Data.TotalRaised)
		assert.Equal(t, uint64(1000), resp.Data.Balance)
		assert.True(t, createdAt.Equal(resp.Data.CreatedAt))
	})
	t.Run("signature over a different seed", func(t *testing.T) {
		router, service := newTestRouter(t, false)
		service.On("FundAddress", authority, "relief").Return(fund, nil)

		rec := do(t, router, http.MethodPost, "/v1/funds", request("relief", sign(t, privKey, invocation("other"))))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, string(types.Unauthorized), decodeError(t, rec).ErrorCode)
	})
	t.Run("signature bound to another deployment", func(t *testing.T) {
		router, service := newTestRouter(t, false)
		// same authority and seed derive a different slot under another program id
		service.On("FundAddress", authority, "relief").Return(fund, nil)
		inv := invocation("relief")
		inv.Fund = testutil.RandomAddress(t).String()

		rec := do(t, router, http.MethodPost, "/v1/funds", request("relief", sign(t, privKey, inv)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
	t.Run("signature without fund address", func(t *testing.T) {
		router, service := newTestRouter(t, false)
		service.On("FundAddress", authority, "relief").Return(fund, nil)
		inv := invocation("relief")
		inv.Fund = ""

		rec := do(t, router, http.MethodPost, "/v1/funds", request("relief", sign(t, privKey, inv)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
	t.Run("missing signature", func(t *testing.T) {
		router, service := newTestRouter(t, false)
		service.On("FundAddress", authority, "relief").Return(fund, nil)

		rec := do(t, router, http.MethodPost, "/v1/funds", request("relief", ""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
	t.Run("already initialized", func(t *testing.T) {
		router, service := newTestRouter(t, false)
		service.On("FundAddress", authority, "").Return(fund, nil)
		service.On("InitializeFund", mock.Anything, authority, "").Return(nil, types.NewErrorWithMsg(
			http.StatusConflict, types.AlreadyInitialized, "fund is already initialized",
		))

		rec := do(t, router, http.MethodPost, "/v1/funds", request("", sign(t, privKey, invocation(""))))
		assert.Equal(t, http.StatusConflict, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, string(types.AlreadyInitialized), resp.ErrorCode)
		assert.Equal(t, "fund is already initialized", resp.Message)
	})
	t.Run("invalid authority", func(t *testing.T) {
		router, _ := newTestRouter(t, false)
		req := request("relief", "00")
		req.Authority = "not-an-address"

		rec := do(t, router, http.MethodPost, "/v1/funds", req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, string(types.ValidationError), decodeError(t, rec).ErrorCode)
	})
	t.Run("unknown field", func(t *testing.T) {
		router, _ := newTestRouter(t, false)

		rec := do(t, router, http.MethodPost, "/v1/funds", map[string]string{"owner": authority.String()})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, string(types.BadRequest), decodeError(t, rec).ErrorCode)
	})
	t.Run("internal errors are not exposed", func(t *testing.T) {
		router, service := newTestRouter(t, false)
		service.On("FundAddress", authority, "relief").Return(fund, nil)
		service.On("InitializeFund", mock.Anything, authority, "relief").Return(
			nil, types.NewInternalServiceError(errors.New("mongo: socket closed")),
		)

		rec := do(t, router, http.MethodPost, "/v1/funds", request("relief", sign(t, privKey, invocation("relief"))))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, decodeError(t, rec).Message, "mongo")
	})
}

func TestGetFund(t *testing.T) {
	fund := testutil.RandomAddress(t)

	t.Run("ok", func(t *testing.T) {
		router, service := newTestRouter(t, false)
		service.On("GetFund", mock.Anything, fund).Return(&types.FundDetails{
			Address:     fund,
			Authority:   testutil.RandomAddress(t),
			TotalRaised: 351,
			Balance:     1351,
		}, nil)

		rec := do(t, router, http.MethodGet, "/v1/funds/"+fund.String(), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handlers.Response[handlers.FundPublic]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, uint64(351), resp.Data.TotalRaised)
		assert.Equal(t, uint64(1351), resp.Data.Balance)
	})
	t.Run("not found", func(t *testing.T) {
		router, service := newTestRouter(t, false)
		service.On("GetFund", mock.Anything, fund).Return(nil, types.NewErrorWithMsg(
			http.StatusNotFound, types.NotFound, "fund not found",
		))

		rec := do(t, router, http.MethodGet, "/v1/funds/"+fund.String(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
	t.Run("invalid address", func(t *testing.T) {
		router, _ := newTestRouter(t, false)

		rec := do(t, router, http.MethodGet, "/v1/funds/0OIl", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("account", func(t *testing.T) {
		router, service := newTestRouter(t, false)
		account := types.FundAccount{Authority: testutil.RandomAddress(t), TotalRaised: 42}
		data, err := account.MarshalBinary()
		require.NoError(t, err)
		service.On("GetFundAccount", mock.Anything, fund).Return(data, nil)

		rec := do(t, router, http.MethodGet, "/v1/funds/"+fund.String()+"/account", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handlers.Response[handlers.FundAccountPublic]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, len(data), resp.Data.Size)

		raw, err := base64.StdEncoding.DecodeString(resp.Data.Data)
		require.NoError(t, err)
		var decoded types.FundAccount
		require.NoError(t, decoded.UnmarshalBinary(raw))
		assert.Equal(t, account, decoded)
	})
}

func TestDonate(t *testing.T) {
	privKey, donor := newKey(t)
	fund := testutil.RandomAddress(t)
	path := "/v1/funds/" + fund.String() + "/donations"

	request := func(amount uint64, invocationID string) (handlers.DonateRequest, signer.Invocation) {
		inv := signer.Invocation{
			Op:           signer.OpDonate,
			Fund:         fund.String(),
			Signer:       donor.String(),
			Amount:       amount,
			InvocationID: invocationID,
		}
		return handlers.DonateRequest{
			Donor:        donor.String(),
			Amount:       amount,
			InvocationID: invocationID,
		}, inv
	}

	t.Run("ok", func(t *testing.T) {
		router, service := newTestRouter(t, false)
		req, inv := request(250, gofakeit.UUID())
		req.Signature = sign(t, privKey, inv)

		event := types.NewDonationEvent(req.InvocationID, fund.String(), donor.String(), 250, 1_700_000_000)
		service.On("Donate", mock.Anything, types.DonateRequest{
			Fund:         fund,
			Donor:        donor,
			Amount:       250,
			InvocationID: req.InvocationID,
		}).Return(&event, nil)

		rec := do(t, router, http.MethodPost, path, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp handlers.Response[types.DonationEvent]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, event, resp.Data)
	})
	t.Run("amount differs from signed amount", func(t *testing.T) {
		router, _ := newTestRouter(t, false)
		req, inv := request(250, gofakeit.UUID())
		req.Signature = sign(t, privKey, inv)
		req.Amount = 2500

		rec := do(t, router, http.MethodPost, path, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
	t.Run("signed for another fund", func(t *testing.T) {
		router, _ := newTestRouter(t, false)
		req, inv := request(250, gofakeit.UUID())
		inv.Fund = testutil.RandomAddress(t).String()
		req.Signature = sign(t, privKey, inv)

		rec := do(t, router, http.MethodPost, path, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
	t.Run("signed by someone else", func(t *testing.T) {
		router, _ := newTestRouter(t, false)
		otherKey, _ := newKey(t)
		req, inv := request(250, gofakeit.UUID())
		req.Signature = sign(t, otherKey, inv)

		rec := do(t, router, http.MethodPost, path, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
	t.Run("service errors", func(t *testing.T) {
		testCases := []struct {
			name   string
			err    *types.Error
			status int
		}{
			{"transfer failed", types.NewErrorWithMsg(http.StatusUnprocessableEntity, types.TransferFailed, "insufficient balance"), http.StatusUnprocessableEntity},
			{"overflow", types.NewErrorWithMsg(http.StatusUnprocessableEntity, types.TotalRaisedOverflow, "total raised overflow"), http.StatusUnprocessableEntity},
			{"clock", types.NewErrorWithMsg(http.StatusServiceUnavailable, types.ClockUnavailable, "clock unavailable"), http.StatusServiceUnavailable},
			{"replay", types.NewErrorWithMsg(http.StatusConflict, types.InvocationReplayed, "invocation replayed"), http.StatusConflict},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				router, service := newTestRouter(t, false)
				req, inv := request(10, gofakeit.UUID())
				req.Signature = sign(t, privKey, inv)
				service.On("Donate", mock.Anything, mock.Anything).Return(nil, tc.err)

				rec := do(t, router, http.MethodPost, path, req)
				assert.Equal(t, tc.status, rec.Code)
				resp := decodeError(t, rec)
				assert.Equal(t, string(tc.err.ErrorCode), resp.ErrorCode)
				assert.Equal(t, tc.err.Error(), resp.Message)
			})
		}
	})
}

func TestListDonations(t *testing.T) {
	fund := testutil.RandomAddress(t)
	path := "/v1/funds/" + fund.String() + "/donations"

	t.Run("default limit", func(t *testing.T) {
		router, service := newTestRouter(t, false)
		events := []types.DonationEvent{
			types.NewDonationEvent(gofakeit.UUID(), fund.String(), testutil.RandomAddress(t).String(), 2, 20),
			types.NewDonationEvent(gofakeit.UUID(), fund.String(), testutil.RandomAddress(t).String(), 1, 10),
		}
		service.On("ListDonations", mock.Anything, fund, int64(0)).Return(events, nil)

		rec := do(t, router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handlers.Response[[]types.DonationEvent]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, events, resp.Data)
	})
	t.Run("empty", func(t *testing.T) {
		router, service := newTestRouter(t, false)
		service.On("ListDonations", mock.Anything, fund, int64(5)).Return(nil, nil)

		rec := do(t, router, http.MethodGet, path+"?limit=5", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
	})
	t.Run("invalid limit", func(t *testing.T) {
		router, _ := newTestRouter(t, false)

		for _, limit := range []string{"0", "-1", "ten"} {
			rec := do(t, router, http.MethodGet, path+"?limit="+limit, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, limit)
		}
	})
}

func TestBalances(t *testing.T) {
	address := testutil.RandomAddress(t)

	t.Run("get", func(t *testing.T) {
		router, service := newTestRouter(t, false)
		service.On("GetBalance", mock.Anything, address).Return(uint64(1_500_000_000), nil)

		rec := do(t, router, http.MethodGet, "/v1/balances/"+address.String(), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handlers.Response[handlers.BalancePublic]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, uint64(1_500_000_000), resp.Data.Balance)
		assert.Equal(t, types.FormatTokens(1_500_000_000), resp.Data.Tokens)
	})
	t.Run("airdrop", func(t *testing.T) {
		router, service := newTestRouter(t, true)
		service.On("Airdrop", mock.Anything, address, uint64(500)).Return(uint64(700), nil)

		rec := do(t, router, http.MethodPost, "/v1/balances/"+address.String()+"/airdrop", handlers.AirdropRequest{Amount: 500})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp handlers.Response[handlers.BalancePublic]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, uint64(700), resp.Data.Balance)
	})
	t.Run("airdrop route is absent when disabled", func(t *testing.T) {
		router, _ := newTestRouter(t, false)

		rec := do(t, router, http.MethodPost, "/v1/balances/"+address.String()+"/airdrop", handlers.AirdropRequest{Amount: 500})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
