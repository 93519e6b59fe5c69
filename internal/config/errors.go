// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the two configuration failure classes. Both are
// fatal before invocation: a broken config is never partially logged or
// forwarded downstream.
var (
	// ErrMissingConfig is the sentinel error wrapped by MissingConfigError.
	ErrMissingConfig = errors.New("missing configuration")

	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid configuration")
)

type (
	// MissingConfigError reports every required key that is absent from
	// both the environment and the profile. All missing keys are collected
	// before the load fails so one run surfaces the complete list.
	MissingConfigError struct {
		Keys []Key
	}

	// InvalidConfigError reports every key whose value failed shape
	// validation. Keys that failed validation are not re-reported as
	// missing, and vice versa.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// FieldError ties a validation failure to the key and environment
	// variable it belongs to.
	FieldError struct {
		Key   Key
		Cause error
	}
)

// Error implements the error interface for MissingConfigError.
func (e *MissingConfigError) Error() string {
	names := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		names[i] = EnvVarFor(k)
	}
	return fmt.Sprintf("missing configuration: %s", strings.Join(names, ", "))
}

// Unwrap returns ErrMissingConfig for errors.Is() compatibility.
func (e *MissingConfigError) Unwrap() error { return ErrMissingConfig }

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Error implements the error interface for FieldError.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", EnvVarFor(e.Key), e.Cause)
}

// Unwrap returns the underlying validation error.
func (e *FieldError) Unwrap() error { return e.Cause }
