package decision

import (
	"decision-engine/internal/domain/identity"
	"decision-engine/internal/pkg/apperrors"
	"fmt"
)

// Engine validates a request, classifies the applicant and searches for an
// offer. It keeps no per-call state and is safe for concurrent use.
type Engine struct {
	validator  identity.Validator
	classifier Classifier
}

// NewEngine builds an Engine. A nil classifier selects the built-in table.
func NewEngine(validator identity.Validator, classifier Classifier) *Engine {
	if validator == nil {
		panic("identity validator cannot be nil")
	}
	if classifier == nil {
		classifier = ClassifierFunc(Classify)
	}
	return &Engine{validator: validator, classifier: classifier}
}

// Decide returns an approved offer or one of the apperrors decision kinds.
// Validation order is personal code, amount, period, debt, feasibility.
func (e *Engine) Decide(req LoanRequest) (LoanOffer, error) {
	if err := e.Validate(req); err != nil {
		return LoanOffer{}, err
	}
	return e.evaluate(req)
}

// Validate runs the input checks of Decide without classifying the applicant.
func (e *Engine) Validate(req LoanRequest) error {
	return e.verifyInputs(req)
}

// evaluate expects a request that already passed Validate.
func (e *Engine) evaluate(req LoanRequest) (LoanOffer, error) {
	profile := e.classifier.Classify(req.PersonalCode)
	if profile.HasDebt() {
		return LoanOffer{}, fmt.Errorf("%w: customer has debt", apperrors.ErrNoValidLoan)
	}

	offer, ok := FindOffer(profile.Modifier, *req.LoanAmount, req.LoanPeriod)
	if !ok {
		return LoanOffer{}, fmt.Errorf("%w: no feasible amount and period combination", apperrors.ErrNoValidLoan)
	}

	return LoanOffer{
		LoanAmount: offer.Amount,
		LoanPeriod: offer.Period,
		Decision:   OutcomeApproved,
	}, nil
}

func (e *Engine) verifyInputs(req LoanRequest) error {
	if !e.validator.IsValid(req.PersonalCode) {
		return apperrors.ErrInvalidPersonalCode
	}
	if req.LoanAmount == nil {
		return fmt.Errorf("%w: amount is missing", apperrors.ErrInvalidLoanAmount)
	}
	if amount := *req.LoanAmount; amount < MinimumLoanAmount || amount > MaximumLoanAmount {
		return fmt.Errorf("%w: %d is outside [%d, %d]", apperrors.ErrInvalidLoanAmount, amount, MinimumLoanAmount, MaximumLoanAmount)
	}
	if period := req.LoanPeriod; period < MinimumLoanPeriod || period > MaximumLoanPeriod {
		return fmt.Errorf("%w: %d months is outside [%d, %d]", apperrors.ErrInvalidLoanPeriod, period, MinimumLoanPeriod, MaximumLoanPeriod)
	}
	return nil
}
