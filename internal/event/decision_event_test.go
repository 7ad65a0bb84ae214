package event

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskPersonalCode(t *testing.T) {
	assert.Equal(t, "*******0976", MaskPersonalCode("49002010976"))
	assert.Equal(t, "****", MaskPersonalCode("1234"))
	assert.Equal(t, "", MaskPersonalCode(""))
}

func TestDecisionEvaluatedEventJSON(t *testing.T) {
	amount, approvedAmount, approvedPeriod := 4000, 4000, 40
	evt := DecisionEvaluatedEvent{
		PersonalCode:    MaskPersonalCode("49002010976"),
		RequestedAmount: &amount,
		RequestedPeriod: 12,
		Decision:        "APPROVED",
		ApprovedAmount:  &approvedAmount,
		ApprovedPeriod:  &approvedPeriod,
		Reason:          "none",
		Timestamp:       time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
	}

	body, err := json.Marshal(evt)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "*******0976", decoded["personalCode"])
	assert.Equal(t, float64(40), decoded["approvedPeriod"])
	assert.Equal(t, "APPROVED", decoded["decision"])
}

func TestRejectedEventOmitsApprovedTerms(t *testing.T) {
	body, err := json.Marshal(DecisionEvaluatedEvent{Decision: "REJECTED", Reason: "invalid_loan_amount"})
	require.NoError(t, err)

	assert.NotContains(t, string(body), "approvedAmount")
	assert.NotContains(t, string(body), "requestedAmount")
}

func TestNoopPublisher(t *testing.T) {
	var p DecisionPublisher = NoopPublisher{}
	assert.NoError(t, p.PublishDecisionEvaluated(context.Background(), DecisionEvaluatedEvent{}))
}

func TestNewRabbitMQEventPublisherValidation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	_, err := NewRabbitMQEventPublisher(nil, "decision-engine", logger)
	assert.Error(t, err)
}
