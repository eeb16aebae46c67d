package subset

import (
	"errors"
	"io"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"array-subset/container"
	"array-subset/diagnostic"
)

// ErrMismatch matches every *Failure with errors.Is.
var ErrMismatch = errors.New("subset mismatch")

// Failure describes a failed subset evaluation.
type Failure struct {
	// Expected is the patched view: the actual value with the subset overlaid.
	Expected *container.Container
	// Actual is the normalized actual value.
	Actual *container.Container
	// ExpectedString and ActualString are the exported renderings of Expected and Actual.
	ExpectedString string
	ActualString   string
	// Assertion is the failure description of the matcher, "an array has the subset ...".
	Assertion string
	// Description is the caller supplied message, possibly empty.
	Description string
	// Mismatches lists every difference between Expected and Actual.
	Mismatches diagnostic.Diagnostics
}

// Diff returns a unified diff from ExpectedString to ActualString. When the
// diff cannot be produced both renderings are returned in full.
func (f *Failure) Diff() string {
	if f.ExpectedString == f.ActualString {
		return ""
	}

	var b strings.Builder
	if err := f.writeDiff(&b); err != nil {
		return f.fullRendering()
	}

	return strings.TrimRight(b.String(), "\n")
}

func (f *Failure) writeDiff(w io.Writer) error {
	return difflib.WriteUnifiedDiff(w, difflib.UnifiedDiff{
		A:        difflib.SplitLines(f.ExpectedString),
		B:        difflib.SplitLines(f.ActualString),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  1,
	})
}

func (f *Failure) fullRendering() string {
	return "--- Expected\n" + f.ExpectedString + "\n+++ Actual\n" + f.ActualString
}

// Error renders the failure as
//
//	<description>
//	Failed asserting that an array has the subset {...}.
//	--- Expected
//	+++ Actual
//	...
func (f *Failure) Error() string {
	var b strings.Builder

	if f.Description != "" {
		b.WriteString(f.Description)
		b.WriteByte('\n')
	}

	b.WriteString("Failed asserting that ")
	b.WriteString(f.Assertion)
	b.WriteByte('.')

	if diff := f.Diff(); diff != "" {
		b.WriteByte('\n')
		b.WriteString(diff)
	}

	return b.String()
}

// Is reports whether target is ErrMismatch.
func (f *Failure) Is(target error) bool {
	return target == ErrMismatch
}

// Signaler reports failures. The returned error is what Matcher.Evaluate returns.
type Signaler interface {
	Signal(failure *Failure) error
}

// SignalerFunc adapts a plain function to the Signaler interface.
type SignalerFunc func(failure *Failure) error

// Signal calls fn(failure).
func (fn SignalerFunc) Signal(failure *Failure) error {
	return fn(failure)
}

// ErrorSignaler returns the failure itself as the error.
type ErrorSignaler struct{}

// Signal returns failure.
func (ErrorSignaler) Signal(failure *Failure) error {
	return failure
}
