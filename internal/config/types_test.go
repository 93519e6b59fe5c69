// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestFlagValueIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value FlagValue
		want  bool
	}{
		{name: "true", value: "true", want: true},
		{name: "false", value: "false", want: true},
		{name: "yes", value: "yes", want: true},
		{name: "no", value: "no", want: true},
		{name: "one", value: "1", want: true},
		{name: "zero", value: "0", want: true},
		{name: "mixed case", value: "TrUe", want: true},
		{name: "upper yes", value: "YES", want: true},
		{name: "empty", value: "", want: false},
		{name: "maybe", value: "maybe", want: false},
		{name: "numeric two", value: "2", want: false},
		{name: "padded", value: " true", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, errs := tt.value.IsValid()
			if got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
			if !tt.want && !errors.Is(errs[0], ErrInvalidFlagValue) {
				t.Errorf("errs[0] = %v, want ErrInvalidFlagValue", errs[0])
			}
		})
	}
}

func TestFlagValueBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   FlagValue
		want    bool
		wantErr bool
	}{
		{value: "true", want: true},
		{value: "YES", want: true},
		{value: "1", want: true},
		{value: "false", want: false},
		{value: "No", want: false},
		{value: "0", want: false},
		{value: "on", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			t.Parallel()

			got, err := tt.value.Bool()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Bool() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Bool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrimerSequenceIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value PrimerSequence
		want  bool
	}{
		{name: "plain bases", value: "ACGT", want: true},
		{name: "default forward", value: DefaultForwardPrimer, want: true},
		{name: "default reverse", value: DefaultReversePrimer, want: true},
		{name: "ambiguity codes", value: "RYSWKMBDHVN", want: true},
		{name: "rna uracil", value: "ACGU", want: true},
		{name: "lowercase", value: "acgt", want: true},
		{name: "empty", value: "", want: false},
		{name: "digit", value: "ACGT7", want: false},
		{name: "whitespace", value: "ACG T", want: false},
		{name: "non-iupac letter", value: "ACGTX", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, errs := tt.value.IsValid()
			if got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
			if !tt.want && !errors.Is(errs[0], ErrInvalidPrimer) {
				t.Errorf("errs[0] = %v, want ErrInvalidPrimer", errs[0])
			}
		})
	}
}

func TestStepSelectorIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value StepSelector
		want  bool
	}{
		{name: "all", value: "all", want: true},
		{name: "all upper", value: "ALL", want: true},
		{name: "single step", value: "qc", want: true},
		{name: "step list", value: "qc,merge,cluster", want: true},
		{name: "numbered steps", value: "step_01,step-02", want: true},
		{name: "empty", value: "", want: false},
		{name: "trailing comma", value: "qc,", want: false},
		{name: "empty token", value: "qc,,merge", want: false},
		{name: "spaces", value: "qc, merge", want: false},
		{name: "slash", value: "qc/merge", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, errs := tt.value.IsValid()
			if got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
			if !tt.want && !errors.Is(errs[0], ErrInvalidStepSelector) {
				t.Errorf("errs[0] = %v, want ErrInvalidStepSelector", errs[0])
			}
		})
	}
}
