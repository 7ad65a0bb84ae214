package identity

import (
	"log/slog"
	"os"
	"time"
)

const (
	DefaultMinAge = 18
	DefaultMaxAge = 74
)

// Validator decides whether a personal code may apply for a loan at all.
type Validator interface {
	IsValid(personalCode string) bool
}

var _ Validator = (*EstonianValidator)(nil)

type EstonianValidator struct {
	minAge int
	maxAge int
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*EstonianValidator)

// WithClock replaces the wall clock used for the age check.
func WithClock(now func() time.Time) Option {
	return func(v *EstonianValidator) {
		v.now = now
	}
}

// WithAgeLimits sets the accepted age window. Non-positive bounds keep the
// default for that side; an inverted window falls back to both defaults.
func WithAgeLimits(minAge, maxAge int) Option {
	return func(v *EstonianValidator) {
		if minAge <= 0 || maxAge <= 0 {
			v.logger.Warn("Ignoring non-positive age limit", slog.Int("minAge", minAge), slog.Int("maxAge", maxAge))
		}
		if minAge > 0 {
			v.minAge = minAge
		}
		if maxAge > 0 {
			v.maxAge = maxAge
		}
		if v.minAge > v.maxAge {
			v.logger.Error("Inverted age limits, using defaults",
				slog.Int("minAge", v.minAge), slog.Int("maxAge", v.maxAge))
			v.minAge, v.maxAge = DefaultMinAge, DefaultMaxAge
		}
	}
}

func NewEstonianValidator(logger *slog.Logger, opts ...Option) *EstonianValidator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	v := &EstonianValidator{
		minAge: DefaultMinAge,
		maxAge: DefaultMaxAge,
		now:    time.Now,
		logger: logger.With(slog.String("component", "EstonianValidator")),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *EstonianValidator) IsValid(personalCode string) bool {
	code, err := ParsePersonalCode(personalCode)
	if err != nil {
		v.logger.Debug("Personal code rejected", slog.Any("error", err))
		return false
	}

	now := v.now()
	if code.BirthDate.After(now) {
		v.logger.Debug("Personal code rejected: birth date in the future")
		return false
	}

	age := code.Age(now)
	if age < v.minAge || age > v.maxAge {
		v.logger.Debug("Personal code rejected: age outside eligible range",
			slog.Int("age", age), slog.Int("minAge", v.minAge), slog.Int("maxAge", v.maxAge))
		return false
	}
	return true
}
