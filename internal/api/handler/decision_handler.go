package handler

import (
	"decision-engine/internal/api/handler/dto"
	"decision-engine/internal/domain/decision"
	"decision-engine/internal/pkg/apperrors"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

type DecisionHandler struct {
	service decision.DecisionService
	logger  *slog.Logger
}

func NewDecisionHandler(s decision.DecisionService, l *slog.Logger) *DecisionHandler {
	if s == nil {
		panic("decision service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &DecisionHandler{
		service: s,
		logger:  l.With("component", "DecisionHandler"),
	}
}

// RequestDecision handles POST /loan/decision
// @Summary Request a loan decision
// @Description Returns the largest loan amount and the period that can be approved for the applicant.
// @Tags Decisions
// @Accept json
// @Produce json
// @Param request body dto.DecisionRequest true "Loan decision request"
// @Success 200 {object} dto.DecisionResponse "Loan approved"
// @Failure 400 {object} dto.DecisionResponse "Invalid personal code, loan amount or loan period"
// @Failure 404 {object} dto.DecisionResponse "No valid loan found"
// @Failure 500 {object} dto.DecisionResponse "Internal server error"
// @Router /loan/decision [post]
func (h *DecisionHandler) RequestDecision(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received loan decision request")

	var req dto.DecisionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondDecisionError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	offer, err := h.service.Decide(r.Context(), req.ToDomain())
	if err != nil {
		level := slog.LevelInfo
		if !apperrors.IsClientError(err) && !errors.Is(err, apperrors.ErrNoValidLoan) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Loan decision rejected", slog.Any("error", err))
		respondDecisionError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Loan decision approved",
		slog.Int("loanAmount", offer.LoanAmount), slog.Int("loanPeriod", offer.LoanPeriod))
	respondJSON(w, http.StatusOK, dto.NewDecisionResponse(offer))
}
