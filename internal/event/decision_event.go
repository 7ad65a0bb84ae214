package event

import (
	"context"
	"strings"
	"time"
)

const RoutingKeyDecisionEvaluated = "decision.evaluated"

// DecisionEvaluatedEvent describes the outcome of one loan decision. The
// personal code is masked before it leaves the service.
type DecisionEvaluatedEvent struct {
	PersonalCode    string    `json:"personalCode"`
	RequestedAmount *int      `json:"requestedAmount,omitempty"`
	RequestedPeriod int       `json:"requestedPeriod"`
	Decision        string    `json:"decision"`
	ApprovedAmount  *int      `json:"approvedAmount,omitempty"`
	ApprovedPeriod  *int      `json:"approvedPeriod,omitempty"`
	Reason          string    `json:"reason"`
	Timestamp       time.Time `json:"timestamp"`
}

type DecisionPublisher interface {
	PublishDecisionEvaluated(ctx context.Context, event DecisionEvaluatedEvent) error
}

// MaskPersonalCode keeps the last four characters of code.
func MaskPersonalCode(code string) string {
	const visible = 4
	if len(code) <= visible {
		return strings.Repeat("*", len(code))
	}
	return strings.Repeat("*", len(code)-visible) + code[len(code)-visible:]
}

// NoopPublisher is used when messaging is disabled.
type NoopPublisher struct{}

var _ DecisionPublisher = NoopPublisher{}

func (NoopPublisher) PublishDecisionEvaluated(context.Context, DecisionEvaluatedEvent) error {
	return nil
}
