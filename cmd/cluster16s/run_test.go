// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"

	"cluster16s-cli/internal/config"
	"cluster16s-cli/internal/invoker"
)

func TestConfigExitErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want invoker.ExitCode
	}{
		{
			name: "missing config",
			err:  &config.MissingConfigError{Keys: []config.Key{config.KeyInputDir}},
			want: invoker.ExitMissingConfig,
		},
		{
			name: "invalid config",
			err:  &config.InvalidConfigError{FieldErrors: []error{errors.New("bad")}},
			want: invoker.ExitInvalidConfig,
		},
		{
			name: "missing wins over invalid",
			err: errors.Join(
				&config.MissingConfigError{Keys: []config.Key{config.KeyInputDir}},
				&config.InvalidConfigError{FieldErrors: []error{errors.New("bad")}},
			),
			want: invoker.ExitMissingConfig,
		},
		{
			name: "profile parse failure",
			err:  errors.New("profile: expected string"),
			want: invoker.ExitInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := configExitError(tt.err)

			var exitErr *ExitError
			if !errors.As(err, &exitErr) {
				t.Fatalf("configExitError() = %T, want *ExitError", err)
			}
			if exitErr.Code != tt.want {
				t.Errorf("Code = %d, want %d", exitErr.Code, tt.want)
			}
			if !errors.Is(err, tt.err) && exitErr.Err == nil {
				t.Error("underlying error was dropped")
			}
		})
	}
}

func TestResultExitError(t *testing.T) {
	tests := []struct {
		name    string
		result  *invoker.Result
		want    invoker.ExitCode
		wantNil bool
	}{
		{
			name:    "success",
			result:  invoker.NewExitCodeResult(0),
			wantNil: true,
		},
		{
			name:   "downstream failure passes through",
			result: invoker.NewExitCodeResult(127),
			want:   127,
		},
		{
			name:   "timeout",
			result: invoker.NewErrorResult(invoker.ExitTimeout, invoker.FailureTimeout, errors.New("deadline")),
			want:   invoker.ExitTimeout,
		},
		{
			name:   "cancelled",
			result: invoker.NewErrorResult(invoker.ExitCancelled, invoker.FailureCancelled, errors.New("interrupt")),
			want:   invoker.ExitCancelled,
		},
		{
			name:   "launch failure",
			result: invoker.NewErrorResult(invoker.ExitLaunchFailure, invoker.FailureLaunch, errors.New("not found")),
			want:   invoker.ExitLaunchFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := resultExitError(tt.result)

			if tt.wantNil {
				if err != nil {
					t.Fatalf("resultExitError() = %v, want nil", err)
				}
				return
			}

			var exitErr *ExitError
			if !errors.As(err, &exitErr) {
				t.Fatalf("resultExitError() = %T, want *ExitError", err)
			}
			if exitErr.Code != tt.want {
				t.Errorf("Code = %d, want %d", exitErr.Code, tt.want)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	cause := errors.New("boom")
	err := &ExitError{Code: 84, Err: cause}
	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want %q", err.Error(), "boom")
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}

	bare := &ExitError{Code: 85}
	if bare.Error() != "exit status 85" {
		t.Errorf("Error() = %q, want %q", bare.Error(), "exit status 85")
	}
}
