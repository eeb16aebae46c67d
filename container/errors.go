package container

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for use with [errors.Is].
var (
	// ErrTypeMismatch indicates an input the normalizer has no branch for.
	// It is only returned by a normalizer built with WithFailFast.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrDecode indicates a serialized document could not be decoded.
	ErrDecode = errors.New("decode error")
)

// TypeMismatchError is returned when fail-fast normalization meets an input
// outside the accepted domain.
type TypeMismatchError struct {
	// Type is the dynamic type of the rejected input.
	Type reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot normalize %s into a container", e.Type)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// DecodeError wraps a failure to decode a JSON or YAML document.
type DecodeError struct {
	// Format is "json" or "yaml".
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s document: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
