package subset

import (
	"fmt"

	"github.com/rs/zerolog"

	"array-subset/compare"
	"array-subset/container"
	"array-subset/export"
	"array-subset/options"
)

// Matcher evaluates actual values against one subset.
// It is immutable after New and safe for concurrent use.
type Matcher struct {
	subset     *container.Container
	strict     bool
	allowed    options.CategoryEnum
	exporter   export.Exporter
	signaler   Signaler
	normalizer *container.Normalizer
	logger     zerolog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithStrict selects strict comparison: identical types, values and key order.
func WithStrict(strict bool) Option {
	return func(m *Matcher) {
		m.strict = strict
	}
}

// WithCoercions sets the coercions permitted by loose comparison.
// Defaults to options.CategoryDefault.
func WithCoercions(allowed options.CategoryEnum) Option {
	return func(m *Matcher) {
		m.allowed = allowed
	}
}

// WithExporter sets the exporter used for descriptions and failures.
func WithExporter(exporter export.Exporter) Option {
	return func(m *Matcher) {
		m.exporter = exporter
	}
}

// WithSignaler sets the signaler receiving failures from Evaluate.
func WithSignaler(signaler Signaler) Option {
	return func(m *Matcher) {
		m.signaler = signaler
	}
}

// WithLogger sets the logger. Evaluations log at debug level, mismatches at trace level.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Matcher) {
		m.logger = logger
	}
}

// WithNormalizer sets the normalizer applied to the subset and to actual values.
func WithNormalizer(normalizer *container.Normalizer) Option {
	return func(m *Matcher) {
		m.normalizer = normalizer
	}
}

// New creates a Matcher for subset. The subset is normalized once, so
// single-pass iterators are accepted.
func New(subset any, opts ...Option) (*Matcher, error) {
	m := &Matcher{
		allowed:    options.CategoryDefault,
		exporter:   export.New(),
		signaler:   ErrorSignaler{},
		normalizer: container.NewNormalizer(),
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(m)
	}

	normalized, err := m.normalizer.Normalize(subset)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize subset: %w", err)
	}

	m.subset = normalized

	return m, nil
}

// Matches reports whether actual contains subset under the given mode.
func Matches(actual, subset any, strict bool) (bool, error) {
	m, err := New(subset, WithStrict(strict))
	if err != nil {
		return false, err
	}

	return m.Matches(actual)
}

// Subset returns a copy of the normalized subset.
func (m *Matcher) Subset() *container.Container {
	return m.subset.Clone()
}

// Matches reports whether actual contains the subset.
func (m *Matcher) Matches(actual any) (bool, error) {
	_, _, ok, err := m.evaluate(actual)
	if err != nil {
		return false, err
	}

	m.logger.Debug().Bool("strict", m.strict).Bool("matched", ok).Msg("subset evaluated")

	return ok, nil
}

// Check returns nil when actual contains the subset, and the failure otherwise.
func (m *Matcher) Check(actual any) (*Failure, error) {
	return m.check(actual, "")
}

// Evaluate checks actual against the subset.
//
// With returnResult set, it returns the verdict and never signals. Otherwise a
// match returns true and a mismatch hands a Failure carrying description to
// the signaler, returning false and whatever the signaler returned.
func (m *Matcher) Evaluate(actual any, description string, returnResult bool) (bool, error) {
	if returnResult {
		return m.Matches(actual)
	}

	failure, err := m.check(actual, description)
	if err != nil {
		return false, err
	}

	if failure == nil {
		return true, nil
	}

	return false, m.signaler.Signal(failure)
}

// String describes the matcher as "has the subset " followed by the exported subset.
func (m *Matcher) String() string {
	return "has the subset " + m.exporter.Export(m.subset)
}

// FailureDescription is String prefixed with "an array ".
func (m *Matcher) FailureDescription() string {
	return "an array " + m.String()
}

func (m *Matcher) comparator() compare.Comparator {
	if m.strict {
		return compare.Strict()
	}

	return compare.Loose(m.allowed)
}

func (m *Matcher) evaluate(actual any) (patched, normalized *container.Container, ok bool, err error) {
	normalized, err = m.normalizer.Normalize(actual)
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to normalize actual value: %w", err)
	}

	patched = Overlay(normalized, m.subset)

	return patched, normalized, m.comparator().Equal(patched, normalized), nil
}

func (m *Matcher) check(actual any, description string) (*Failure, error) {
	patched, normalized, ok, err := m.evaluate(actual)
	if err != nil {
		return nil, err
	}

	if ok {
		m.logger.Debug().Bool("strict", m.strict).Bool("matched", true).Msg("subset evaluated")
		return nil, nil
	}

	mismatches := m.comparator().Diff(patched, normalized)

	m.logger.Debug().
		Bool("strict", m.strict).
		Bool("matched", false).
		Int("mismatches", len(mismatches.Errors)).
		Msg("subset evaluated")

	for _, d := range mismatches.Errors {
		m.logger.Trace().Str("path", d.Path).Str("code", d.Code).Msg(d.Message)
	}

	return &Failure{
		Expected:       patched,
		Actual:         normalized,
		ExpectedString: m.exporter.Export(patched),
		ActualString:   m.exporter.Export(normalized),
		Assertion:      m.FailureDescription(),
		Description:    description,
		Mismatches:     mismatches,
	}, nil
}
