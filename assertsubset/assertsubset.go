// Package assertsubset provides testify-style assertions on top of package subset.
//
//	assertsubset.Subset(t, response, map[string]any{"status": "ok"})
//	assertsubset.RequireStrictSubset(t, got, want, "user %d", id)
package assertsubset

import (
	"fmt"
	"slices"

	"github.com/stretchr/testify/assert"

	"array-subset/subset"
)

// TestingT is the part of *testing.T the assertions use.
type TestingT interface {
	Errorf(format string, args ...any)
}

type tHelper interface {
	Helper()
}

type failNower interface {
	FailNow()
}

// Signaler reports failures through testify's assert.Fail.
type Signaler struct {
	t          TestingT
	msgAndArgs []any
}

// NewSignaler returns a subset.Signaler failing t with the given message.
func NewSignaler(t TestingT, msgAndArgs ...any) *Signaler {
	return &Signaler{t: t, msgAndArgs: msgAndArgs}
}

// Signal marks the test as failed. The failure is reported, so nil is returned.
func (s *Signaler) Signal(failure *subset.Failure) error {
	if h, ok := s.t.(tHelper); ok {
		h.Helper()
	}

	assert.Fail(s.t, failure.Error(), s.msgAndArgs...)

	return nil
}

// Subset asserts that actual contains expected under loose comparison.
func Subset(t TestingT, actual, expected any, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return SubsetWith(t, actual, expected, nil, msgAndArgs...)
}

// StrictSubset asserts that actual contains expected with identical types, values and key order.
func StrictSubset(t TestingT, actual, expected any, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return SubsetWith(t, actual, expected, []subset.Option{subset.WithStrict(true)}, msgAndArgs...)
}

// SubsetWith asserts that actual contains expected using a matcher built from opts.
func SubsetWith(t TestingT, actual, expected any, opts []subset.Option, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	opts = append(slices.Clone(opts), subset.WithSignaler(NewSignaler(t, msgAndArgs...)))

	m, err := subset.New(expected, opts...)
	if err != nil {
		return assert.Fail(t, fmt.Sprintf("Invalid subset: %v", err), msgAndArgs...)
	}

	ok, err := m.Evaluate(actual, "", false)
	if err != nil {
		return assert.Fail(t, fmt.Sprintf("Invalid actual value: %v", err), msgAndArgs...)
	}

	return ok
}

// NotSubset asserts that actual does not contain expected under loose comparison.
func NotSubset(t TestingT, actual, expected any, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	m, err := subset.New(expected)
	if err != nil {
		return assert.Fail(t, fmt.Sprintf("Invalid subset: %v", err), msgAndArgs...)
	}

	ok, err := m.Evaluate(actual, "", true)
	if err != nil {
		return assert.Fail(t, fmt.Sprintf("Invalid actual value: %v", err), msgAndArgs...)
	}

	if ok {
		return assert.Fail(t, "Should not have "+m.String(), msgAndArgs...)
	}

	return true
}

// RequireSubset is like Subset but stops the test on failure.
func RequireSubset(t TestingT, actual, expected any, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if !Subset(t, actual, expected, msgAndArgs...) {
		failNow(t)
	}
}

// RequireStrictSubset is like StrictSubset but stops the test on failure.
func RequireStrictSubset(t TestingT, actual, expected any, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if !StrictSubset(t, actual, expected, msgAndArgs...) {
		failNow(t)
	}
}

func failNow(t TestingT) {
	if f, ok := t.(failNower); ok {
		f.FailNow()
	}
}
