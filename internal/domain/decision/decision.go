// Package decision computes the largest loan amount and the period that can
// be approved for an applicant, given a requested amount and period.
package decision

const (
	MinimumLoanAmount = 2000
	MaximumLoanAmount = 10000
	MinimumLoanPeriod = 12
	MaximumLoanPeriod = 48
)

type Outcome string

const (
	OutcomeApproved Outcome = "APPROVED"
	OutcomeRejected Outcome = "REJECTED"
)

// LoanRequest is a single application. A nil LoanAmount means the amount was
// not supplied.
type LoanRequest struct {
	PersonalCode string
	LoanAmount   *int
	LoanPeriod   int
}

type LoanOffer struct {
	LoanAmount int     `json:"loanAmount"`
	LoanPeriod int     `json:"loanPeriod"`
	Decision   Outcome `json:"decision"`
}
