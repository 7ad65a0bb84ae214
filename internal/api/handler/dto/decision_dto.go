package dto

import (
	"decision-engine/internal/domain/decision"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Amount is a whole-number loan amount. Integral values beyond the int range
// clamp to the nearest bound, so the engine reports them as an invalid loan
// amount after the personal code check instead of failing the decode.
type Amount int

func (a *Amount) UnmarshalJSON(data []byte) error {
	literal := string(data)
	if v, err := strconv.ParseInt(literal, 10, 0); err == nil {
		*a = Amount(v)
		return nil
	}

	f, err := strconv.ParseFloat(literal, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
	case err != nil:
		return fmt.Errorf("loanAmount must be a number, got %s", literal)
	case f != math.Trunc(f):
		return fmt.Errorf("loanAmount must be a whole number, got %s", literal)
	}

	switch {
	case f >= float64(math.MaxInt):
		*a = Amount(math.MaxInt)
	case f <= float64(math.MinInt):
		*a = Amount(math.MinInt)
	default:
		*a = Amount(int(f))
	}
	return nil
}

// DecisionRequest carries the raw input. Limits are checked by the decision
// engine so that the order of validation errors stays fixed.
type DecisionRequest struct {
	PersonalCode string  `json:"personalCode" example:"49002010976"`
	LoanAmount   *Amount `json:"loanAmount" swaggertype:"integer" example:"4000"`
	LoanPeriod   int     `json:"loanPeriod" example:"12"`
}

func (r *DecisionRequest) ToDomain() decision.LoanRequest {
	req := decision.LoanRequest{
		PersonalCode: r.PersonalCode,
		LoanPeriod:   r.LoanPeriod,
	}
	if r.LoanAmount != nil {
		amount := int(*r.LoanAmount)
		req.LoanAmount = &amount
	}
	return req
}

type DecisionResponse struct {
	LoanAmount   *int   `json:"loanAmount"`
	LoanPeriod   *int   `json:"loanPeriod"`
	Decision     string `json:"decision"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

func NewDecisionResponse(offer *decision.LoanOffer) DecisionResponse {
	if offer == nil {
		return DecisionResponse{Decision: string(decision.OutcomeRejected)}
	}
	amount, period := offer.LoanAmount, offer.LoanPeriod
	return DecisionResponse{
		LoanAmount: &amount,
		LoanPeriod: &period,
		Decision:   string(offer.Decision),
	}
}

func NewRejectedResponse(message string) DecisionResponse {
	return DecisionResponse{
		Decision:     string(decision.OutcomeRejected),
		ErrorMessage: message,
	}
}

type ErrorDetail struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
