// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name: "operation only",
			err: &ActionableError{
				Operation: "load configuration",
			},
			expected: "failed to load configuration",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "load profile",
				Resource:  "./cluster16s.cue",
			},
			expected: "failed to load profile: ./cluster16s.cue",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "parse profile",
				Cause:     errors.New("syntax error at line 5"),
			},
			expected: "failed to parse profile: syntax error at line 5",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "launch pipeline script",
				Resource:  "./run.sh",
				Cause:     errors.New("permission denied"),
			},
			expected: "failed to launch pipeline script: ./run.sh: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := &ActionableError{Operation: "load configuration", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is() should find the cause through Unwrap")
	}
}

func TestActionableError_Format(t *testing.T) {
	err := &ActionableError{
		Operation:   "launch pipeline script",
		Resource:    "./run.sh",
		Suggestions: []string{"Check the script path", "Run 'cluster16s run --dry-run'"},
		Cause:       errors.New("no such file"),
	}

	plain := err.Format(false)
	if !strings.Contains(plain, "failed to launch pipeline script") {
		t.Errorf("Format(false) missing main message: %q", plain)
	}
	if !strings.Contains(plain, "Check the script path") {
		t.Errorf("Format(false) missing suggestion: %q", plain)
	}
	if strings.Contains(plain, "Error chain") {
		t.Errorf("Format(false) should not include the error chain: %q", plain)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain") {
		t.Errorf("Format(true) should include the error chain: %q", verbose)
	}
}

func TestErrorContext_Build(t *testing.T) {
	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("load profile").
		WithResource("./cluster16s.cue").
		WithSuggestion("Run 'cluster16s config init' to create one").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("Build() returned nil with an operation set")
	}
	if err.Operation != "load profile" {
		t.Errorf("Operation = %q", err.Operation)
	}
	if err.Resource != "./cluster16s.cue" {
		t.Errorf("Resource = %q", err.Resource)
	}
	if !err.HasSuggestions() {
		t.Error("HasSuggestions() = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
}

func TestErrorContext_BuildRequiresOperation(t *testing.T) {
	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build() without operation = %v, want nil", got)
	}
	if got := NewErrorContext().BuildError(); got != nil {
		t.Errorf("BuildError() without operation = %v, want nil", got)
	}
}

func TestErrorContext_WithSuggestions(t *testing.T) {
	err := NewErrorContext().
		WithOperation("validate configuration").
		WithSuggestions("Run 'cluster16s config show'", "Run 'cluster16s env'").
		Build()

	if len(err.Suggestions) != 2 {
		t.Errorf("Suggestions count = %d, want 2", len(err.Suggestions))
	}
}

func TestWrapWithOperation(t *testing.T) {
	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}

	cause := errors.New("boom")
	err := WrapWithOperation(cause, "load configuration")
	if err == nil {
		t.Fatal("WrapWithOperation() returned nil")
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
}
