package handler

import (
	"bytes"
	"context"
	"decision-engine/internal/api/handler/dto"
	"decision-engine/internal/domain/decision"
	"decision-engine/internal/pkg/apperrors"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDecisionService struct {
	mock.Mock
}

func (m *MockDecisionService) Decide(ctx context.Context, req decision.LoanRequest) (*decision.LoanOffer, error) {
	args := m.Called(ctx, req)
	if offer, ok := args.Get(0).(*decision.LoanOffer); ok {
		return offer, args.Error(1)
	}
	return nil, args.Error(1)
}

func newDecisionRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/loan/decision", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) dto.DecisionResponse {
	t.Helper()
	var resp dto.DecisionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestDecisionHandlerRequestDecision(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	t.Run("returns approved offer", func(t *testing.T) {
		mockService := new(MockDecisionService)
		handler := NewDecisionHandler(mockService, logger)

		mockService.On("Decide", mock.Anything, mock.MatchedBy(func(req decision.LoanRequest) bool {
			return req.PersonalCode == "49002010976" && req.LoanAmount != nil && *req.LoanAmount == 4000 && req.LoanPeriod == 12
		})).Return(&decision.LoanOffer{LoanAmount: 4000, LoanPeriod: 40, Decision: decision.OutcomeApproved}, nil)

		rec := httptest.NewRecorder()
		handler.RequestDecision(rec, newDecisionRequest(`{"personalCode":"49002010976","loanAmount":4000,"loanPeriod":12}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		resp := decodeResponse(t, rec)
		assert.Equal(t, "APPROVED", resp.Decision)
		assert.Equal(t, 4000, *resp.LoanAmount)
		assert.Equal(t, 40, *resp.LoanPeriod)
		assert.Empty(t, resp.ErrorMessage)
		mockService.AssertExpectations(t)
	})

	t.Run("passes missing amount through to the service", func(t *testing.T) {
		mockService := new(MockDecisionService)
		handler := NewDecisionHandler(mockService, logger)

		mockService.On("Decide", mock.Anything, mock.MatchedBy(func(req decision.LoanRequest) bool {
			return req.LoanAmount == nil
		})).Return(nil, fmt.Errorf("%w: amount is missing", apperrors.ErrInvalidLoanAmount))

		rec := httptest.NewRecorder()
		handler.RequestDecision(rec, newDecisionRequest(`{"personalCode":"49002010976","loanPeriod":12}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "REJECTED", resp.Decision)
		assert.Nil(t, resp.LoanAmount)
		assert.Contains(t, resp.ErrorMessage, "invalid loan amount")
	})

	errorCases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"invalid personal code", apperrors.ErrInvalidPersonalCode, http.StatusBadRequest, "invalid personal ID code"},
		{"invalid loan period", fmt.Errorf("%w: 60 months", apperrors.ErrInvalidLoanPeriod), http.StatusBadRequest, "invalid loan period: 60 months"},
		{"no valid loan", fmt.Errorf("%w: customer has debt", apperrors.ErrNoValidLoan), http.StatusNotFound, "no valid loan found: customer has debt"},
		{"unexpected failure", errors.New("boom"), http.StatusInternalServerError, "An unexpected error occurred."},
	}
	for _, tc := range errorCases {
		t.Run("maps "+tc.name, func(t *testing.T) {
			mockService := new(MockDecisionService)
			handler := NewDecisionHandler(mockService, logger)
			mockService.On("Decide", mock.Anything, mock.Anything).Return(nil, tc.err)

			rec := httptest.NewRecorder()
			handler.RequestDecision(rec, newDecisionRequest(`{"personalCode":"49002010965","loanAmount":4000,"loanPeriod":12}`))

			assert.Equal(t, tc.status, rec.Code)
			resp := decodeResponse(t, rec)
			assert.Equal(t, "REJECTED", resp.Decision)
			assert.Equal(t, tc.message, resp.ErrorMessage)
		})
	}

	t.Run("rejects malformed body without calling the service", func(t *testing.T) {
		mockService := new(MockDecisionService)
		handler := NewDecisionHandler(mockService, logger)

		rec := httptest.NewRecorder()
		handler.RequestDecision(rec, newDecisionRequest(`{"personalCode":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeResponse(t, rec).ErrorMessage, "invalid argument")
		mockService.AssertNotCalled(t, "Decide", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		mockService := new(MockDecisionService)
		handler := NewDecisionHandler(mockService, logger)

		rec := httptest.NewRecorder()
		handler.RequestDecision(rec, newDecisionRequest(`{"personalCode":"49002010976","loanAmount":4000,"loanPeriod":12,"currency":"EUR"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "Decide", mock.Anything, mock.Anything)
	})

	t.Run("passes overflowing amount to the service as out of range", func(t *testing.T) {
		mockService := new(MockDecisionService)
		handler := NewDecisionHandler(mockService, logger)

		mockService.On("Decide", mock.Anything, mock.MatchedBy(func(req decision.LoanRequest) bool {
			return req.LoanAmount != nil && *req.LoanAmount == math.MaxInt && req.PersonalCode == "49002010976"
		})).Return(nil, fmt.Errorf("%w: too large", apperrors.ErrInvalidLoanAmount))

		rec := httptest.NewRecorder()
		handler.RequestDecision(rec, newDecisionRequest(`{"personalCode":"49002010976","loanAmount":99999999999999999999,"loanPeriod":12}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeResponse(t, rec).ErrorMessage, "invalid loan amount")
		mockService.AssertExpectations(t)
	})

	t.Run("rejects fractional amount as malformed", func(t *testing.T) {
		mockService := new(MockDecisionService)
		handler := NewDecisionHandler(mockService, logger)

		rec := httptest.NewRecorder()
		handler.RequestDecision(rec, newDecisionRequest(`{"personalCode":"49002010976","loanAmount":4000.5,"loanPeriod":12}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "Decide", mock.Anything, mock.Anything)
	})
}

func TestNewDecisionHandlerPanics(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Panics(t, func() { NewDecisionHandler(nil, logger) })
	assert.Panics(t, func() { NewDecisionHandler(new(MockDecisionService), nil) })
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(apperrors.ErrInvalidArgument))
	assert.Equal(t, http.StatusBadRequest, statusFor(apperrors.ErrInvalidLoanAmount))
	assert.Equal(t, http.StatusNotFound, statusFor(apperrors.ErrNoValidLoan))
	assert.Equal(t, http.StatusInternalServerError, statusFor(apperrors.ErrCache))
}

func TestRespondDecisionErrorWrapsInternalFailures(t *testing.T) {
	var logs bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	rec := httptest.NewRecorder()
	respondDecisionError(rec, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "An unexpected error occurred.", decodeResponse(t, rec).ErrorMessage)
	assert.Contains(t, logs.String(), "internal server error: boom")
}

func TestRespondJSONMarshalFailure(t *testing.T) {
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusOK, map[string]interface{}{"value": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, apperrors.ErrInternalServer.Error(), resp.Error.Message)
}
