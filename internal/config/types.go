// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors wrapped by the value-level error types below.
var (
	ErrInvalidFlagValue    = errors.New("invalid flag value")
	ErrInvalidPrimer       = errors.New("invalid primer sequence")
	ErrInvalidStepSelector = errors.New("invalid step selector")
)

// iupacCodes is the nucleotide alphabet accepted in primer sequences,
// including ambiguity codes (e.g. W = A/T, V = A/C/G) and U for RNA.
const iupacCodes = "ACGTURYSWKMBDHVN"

type (
	// FlagValue is a boolean-like configuration value. The accepted
	// spellings are true/false, yes/no, and 1/0, case-insensitive. The
	// original text is forwarded downstream verbatim; only the shape is
	// validated here.
	FlagValue string

	// PrimerSequence is a primer given as IUPAC nucleotide codes.
	PrimerSequence string

	// StepSelector names the pipeline steps to execute: "all" or a
	// comma-separated list of step tokens. The downstream script owns the
	// meaning of each token; the launcher validates only the shape.
	StepSelector string

	// InvalidFlagValueError is returned for text that is not a recognized
	// boolean spelling.
	InvalidFlagValueError struct {
		Value FlagValue
	}

	// InvalidPrimerError is returned for a primer that is empty or
	// contains characters outside the IUPAC nucleotide alphabet.
	InvalidPrimerError struct {
		Value PrimerSequence
	}

	// InvalidStepSelectorError is returned for a selector that is empty
	// or contains malformed tokens.
	InvalidStepSelectorError struct {
		Value StepSelector
	}
)

// String returns the verbatim text of the FlagValue.
func (f FlagValue) String() string { return string(f) }

// IsValid returns whether the FlagValue is a recognized boolean spelling.
func (f FlagValue) IsValid() (bool, []error) {
	switch strings.ToLower(string(f)) {
	case "true", "false", "yes", "no", "1", "0":
		return true, nil
	}
	return false, []error{&InvalidFlagValueError{Value: f}}
}

// Bool returns the boolean meaning of the FlagValue.
func (f FlagValue) Bool() (bool, error) {
	switch strings.ToLower(string(f)) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0":
		return false, nil
	}
	return false, &InvalidFlagValueError{Value: f}
}

// String returns the verbatim text of the PrimerSequence.
func (p PrimerSequence) String() string { return string(p) }

// IsValid returns whether the PrimerSequence is non-empty and made up of
// IUPAC nucleotide codes only.
func (p PrimerSequence) IsValid() (bool, []error) {
	if len(p) == 0 {
		return false, []error{&InvalidPrimerError{Value: p}}
	}
	for _, c := range strings.ToUpper(string(p)) {
		if !strings.ContainsRune(iupacCodes, c) {
			return false, []error{&InvalidPrimerError{Value: p}}
		}
	}
	return true, nil
}

// String returns the verbatim text of the StepSelector.
func (s StepSelector) String() string { return string(s) }

// IsValid returns whether the StepSelector is "all" or a comma-separated
// list of non-empty tokens of letters, digits, '_' and '-'.
func (s StepSelector) IsValid() (bool, []error) {
	if strings.EqualFold(string(s), "all") {
		return true, nil
	}
	if s == "" {
		return false, []error{&InvalidStepSelectorError{Value: s}}
	}
	for _, token := range strings.Split(string(s), ",") {
		if !isStepToken(token) {
			return false, []error{&InvalidStepSelectorError{Value: s}}
		}
	}
	return true, nil
}

// isStepToken reports whether token is a non-empty run of [A-Za-z0-9_-].
func isStepToken(token string) bool {
	if token == "" {
		return false
	}
	for _, c := range token {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}

// Error implements the error interface for InvalidFlagValueError.
func (e *InvalidFlagValueError) Error() string {
	return fmt.Sprintf("invalid flag value %q: want true/false, yes/no or 1/0", e.Value)
}

// Unwrap returns ErrInvalidFlagValue for errors.Is() compatibility.
func (e *InvalidFlagValueError) Unwrap() error { return ErrInvalidFlagValue }

// Error implements the error interface for InvalidPrimerError.
func (e *InvalidPrimerError) Error() string {
	return fmt.Sprintf("invalid primer sequence %q: want IUPAC nucleotide codes (%s)", e.Value, iupacCodes)
}

// Unwrap returns ErrInvalidPrimer for errors.Is() compatibility.
func (e *InvalidPrimerError) Unwrap() error { return ErrInvalidPrimer }

// Error implements the error interface for InvalidStepSelectorError.
func (e *InvalidStepSelectorError) Error() string {
	return fmt.Sprintf("invalid step selector %q: want \"all\" or a comma-separated list of step names", e.Value)
}

// Unwrap returns ErrInvalidStepSelector for errors.Is() compatibility.
func (e *InvalidStepSelectorError) Unwrap() error { return ErrInvalidStepSelector }
