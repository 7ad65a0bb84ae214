package decision

import (
	"context"
	"decision-engine/internal/event"
	"decision-engine/internal/infrastructure/monitoring"
	"decision-engine/internal/pkg/apperrors"
	"log/slog"
	"os"
	"time"
)

// OfferCache remembers approved offers for identical requests.
type OfferCache interface {
	Get(ctx context.Context, personalCode string, amount, period int) (*LoanOffer, bool, error)
	Set(ctx context.Context, personalCode string, amount, period int, offer LoanOffer) error
}

type DecisionService interface {
	Decide(ctx context.Context, req LoanRequest) (*LoanOffer, error)
}

var _ DecisionService = (*decisionService)(nil)

type decisionService struct {
	engine *Engine
	cache  OfferCache
	pub    event.DecisionPublisher
	now    func() time.Time
	logger *slog.Logger
}

// NewDecisionService wraps engine. cache may be nil; a nil publisher drops events.
func NewDecisionService(engine *Engine, cache OfferCache, pub event.DecisionPublisher, logger *slog.Logger) DecisionService {
	if engine == nil {
		panic("decision engine cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewDecisionService, using default stderr handler")
	}
	if pub == nil {
		pub = event.NoopPublisher{}
	}
	return &decisionService{
		engine: engine,
		cache:  cache,
		pub:    pub,
		now:    time.Now,
		logger: logger.With(slog.String("component", "decisionService")),
	}
}

func (s *decisionService) Decide(ctx context.Context, req LoanRequest) (*LoanOffer, error) {
	logger := s.logger.With(
		slog.String("personalCode", event.MaskPersonalCode(req.PersonalCode)),
		slog.Int("loanPeriod", req.LoanPeriod),
	)
	logger.DebugContext(ctx, "Evaluating loan decision")

	if err := s.engine.Validate(req); err != nil {
		return nil, s.reject(ctx, logger, req, err)
	}

	if cached, ok := s.lookup(ctx, req); ok {
		logger.InfoContext(ctx, "Returning cached loan offer",
			slog.Int("approvedAmount", cached.LoanAmount), slog.Int("approvedPeriod", cached.LoanPeriod))
		monitoring.RecordDecision(string(cached.Decision), apperrors.Reason(nil))
		s.publish(ctx, req, cached, apperrors.Reason(nil))
		return cached, nil
	}

	offer, err := s.engine.evaluate(req)
	if err != nil {
		return nil, s.reject(ctx, logger, req, err)
	}

	reason := apperrors.Reason(nil)
	logger.InfoContext(ctx, "Loan approved",
		slog.Int("approvedAmount", offer.LoanAmount), slog.Int("approvedPeriod", offer.LoanPeriod))
	monitoring.RecordDecision(string(offer.Decision), reason)
	s.store(ctx, req, offer)
	s.publish(ctx, req, &offer, reason)
	return &offer, nil
}

func (s *decisionService) reject(ctx context.Context, logger *slog.Logger, req LoanRequest, err error) error {
	reason := apperrors.Reason(err)
	logger.InfoContext(ctx, "Loan rejected", slog.String("reason", reason), slog.Any("error", err))
	monitoring.RecordDecision(string(OutcomeRejected), reason)
	s.publish(ctx, req, nil, reason)
	return err
}

func (s *decisionService) lookup(ctx context.Context, req LoanRequest) (*LoanOffer, bool) {
	if s.cache == nil || req.LoanAmount == nil {
		return nil, false
	}
	offer, ok, err := s.cache.Get(ctx, req.PersonalCode, *req.LoanAmount, req.LoanPeriod)
	if err != nil {
		s.logger.WarnContext(ctx, "Offer cache lookup failed", slog.Any("error", err))
		monitoring.RecordCacheLookup("error")
		return nil, false
	}
	if !ok {
		monitoring.RecordCacheLookup("miss")
		return nil, false
	}
	monitoring.RecordCacheLookup("hit")
	return offer, true
}

func (s *decisionService) store(ctx context.Context, req LoanRequest, offer LoanOffer) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, req.PersonalCode, *req.LoanAmount, req.LoanPeriod, offer); err != nil {
		s.logger.WarnContext(ctx, "Failed to cache loan offer", slog.Any("error", err))
	}
}

func (s *decisionService) publish(ctx context.Context, req LoanRequest, offer *LoanOffer, reason string) {
	evt := event.DecisionEvaluatedEvent{
		PersonalCode:    event.MaskPersonalCode(req.PersonalCode),
		RequestedAmount: req.LoanAmount,
		RequestedPeriod: req.LoanPeriod,
		Decision:        string(OutcomeRejected),
		Reason:          reason,
		Timestamp:       s.now().UTC(),
	}
	if offer != nil {
		evt.Decision = string(offer.Decision)
		evt.ApprovedAmount = &offer.LoanAmount
		evt.ApprovedPeriod = &offer.LoanPeriod
	}

	if err := s.pub.PublishDecisionEvaluated(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish decision event", slog.Any("error", err))
		monitoring.RecordPublishError()
	}
}
