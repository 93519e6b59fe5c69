// SPDX-License-Identifier: MPL-2.0

package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cluster16s-cli/internal/config"
	"cluster16s-cli/internal/invoker"
)

func loadTestConfig(t *testing.T) *config.PipelineConfig {
	t.Helper()
	dir := t.TempDir()

	inputDir := filepath.Join(dir, "input")
	if err := os.Mkdir(inputDir, 0o755); err != nil {
		t.Fatalf("failed to create input dir: %v", err)
	}
	t.Setenv("C16S_INPUT_DIR", inputDir)

	for env, name := range map[string]string{
		"C16S_CHIMERA_DB":         "pr2.fasta",
		"C16S_FORWARD_ADAPTER_3P": "fwd_3p.fasta",
		"C16S_REVERSE_ADAPTER_3P": "rev_3p.fasta",
		"C16S_FORWARD_ADAPTER_5P": "fwd_5p.fasta",
		"C16S_REVERSE_ADAPTER_5P": "rev_5p.fasta",
	} {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(">seq\nACGT\n"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
		t.Setenv(env, p)
	}

	for env, value := range map[string]string{
		"C16S_CORE_COUNT":                  "4",
		"C16S_CUTADAPT_MIN_LENGTH":         "100",
		"C16S_PEAR_MIN_OVERLAP":            "10",
		"C16S_PEAR_MAX_ASSEMBLY_LENGTH":    "0",
		"C16S_PEAR_MIN_ASSEMBLY_LENGTH":    "0",
		"C16S_VSEARCH_FILTER_MAXEE":        "1.0",
		"C16S_VSEARCH_FILTER_TRUNCLEN":     "0",
		"C16S_VSEARCH_DEREP_MINUNIQUESIZE": "2",
		"C16S_FORWARD_PRIMER_3P":           config.DefaultForwardPrimer,
		"C16S_REVERSE_PRIMER_3P":           config.DefaultReversePrimer,
		"C16S_FORWARD_PRIMER_5P":           config.DefaultForwardPrimer,
		"C16S_REVERSE_PRIMER_5P":           config.DefaultReversePrimer,
		"C16S_MULTIPLE_RUNS":               "false",
		"C16S_PAIRED_ENDS":                 "true",
		"C16S_STEPS":                       "all",
		"C16S_DEBUG":                       "false",
	} {
		t.Setenv(env, value)
	}

	cfg, err := config.NewProvider().Load(context.Background(), config.LoadOptions{
		ProfileDirPath: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("failed to load test config: %v", err)
	}
	return cfg
}

func TestConfigDumpOneLinePerKey(t *testing.T) {
	cfg := loadTestConfig(t)

	var buf bytes.Buffer
	New(&buf).Config(cfg)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	specs := config.Schema()
	// 22 value lines plus the two group headings.
	if len(lines) != len(specs)+2 {
		t.Fatalf("dump has %d lines, want %d:\n%s", len(lines), len(specs)+2, buf.String())
	}

	var valueLines []string
	for _, line := range lines {
		if strings.Contains(line, ": ") {
			valueLines = append(valueLines, line)
		}
	}
	if len(valueLines) != len(specs) {
		t.Fatalf("dump has %d value lines, want %d", len(valueLines), len(specs))
	}
	for i, spec := range specs {
		want := string(spec.Key) + ": " + cfg.Value(spec.Key)
		if valueLines[i] != want {
			t.Errorf("value line %d = %q, want %q", i, valueLines[i], want)
		}
	}
}

func TestConfigDumpGroupOrder(t *testing.T) {
	cfg := loadTestConfig(t)

	var buf bytes.Buffer
	New(&buf).Config(cfg)
	out := buf.String()

	inputs := strings.Index(out, "Inputs")
	params := strings.Index(out, "Parameters")
	firstKey := strings.Index(out, string(config.KeyInputDir)+": ")
	firstParam := strings.Index(out, string(config.KeyCoreCount)+": ")

	if inputs < 0 || params < 0 {
		t.Fatalf("dump is missing group headings:\n%s", out)
	}
	if !(inputs < firstKey && firstKey < params && params < firstParam) {
		t.Errorf("headings out of order: Inputs=%d key=%d Parameters=%d param=%d",
			inputs, firstKey, params, firstParam)
	}
}

func TestStartedAndCompletedMarkers(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Started("./run.sh")
	r.Completed(invoker.NewExitCodeResult(0))

	out := buf.String()
	if !strings.Contains(out, "Started") {
		t.Errorf("log is missing the Started marker:\n%s", out)
	}
	if !strings.Contains(out, "Ended") {
		t.Errorf("log is missing the Ended marker:\n%s", out)
	}
}

func TestCompletedReportsFailures(t *testing.T) {
	tests := []struct {
		name   string
		result *invoker.Result
		want   string
	}{
		{
			name:   "timeout",
			result: invoker.NewErrorResult(invoker.ExitTimeout, invoker.FailureTimeout, nil),
			want:   "timeout",
		},
		{
			name:   "cancelled",
			result: invoker.NewErrorResult(invoker.ExitCancelled, invoker.FailureCancelled, nil),
			want:   "cancelled",
		},
		{
			name:   "launch",
			result: invoker.NewErrorResult(invoker.ExitLaunchFailure, invoker.FailureLaunch, nil),
			want:   "launch failed",
		},
		{
			name:   "downstream exit",
			result: invoker.NewExitCodeResult(7),
			want:   "7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf).Completed(tt.result)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("Completed() output %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}
