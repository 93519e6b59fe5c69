// SPDX-License-Identifier: MPL-2.0

// Package report emits the run log: timestamped Started/Ended markers
// around a grouped dump of every configuration value. The dump is part
// of the launcher's observable behavior, so its shape (one "<key>:
// <value>" line per key, in schema order) stays stable.
package report

import (
	"fmt"
	"io"

	"cluster16s-cli/internal/config"
	"cluster16s-cli/internal/invoker"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// headingStyle renders the "Inputs" and "Parameters" group headings.
var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))

// Reporter writes the run log for one invocation.
type Reporter struct {
	logger *log.Logger
	out    io.Writer
}

// New creates a Reporter writing to out.
func New(out io.Writer) *Reporter {
	return &Reporter{
		logger: log.NewWithOptions(out, log.Options{
			Prefix:          "cluster16s",
			ReportTimestamp: true,
		}),
		out: out,
	}
}

// SetDebug raises the log level to debug.
func (r *Reporter) SetDebug(on bool) {
	if on {
		r.logger.SetLevel(log.DebugLevel)
	}
}

// Started emits the timestamped start marker.
func (r *Reporter) Started(script string) {
	r.logger.Info("Started", "script", script)
}

// Config dumps every configuration value: the Inputs group first, then
// Parameters, one "<key>: <value>" line per key in schema order.
func (r *Reporter) Config(cfg *config.PipelineConfig) {
	var current config.Group
	for _, spec := range config.Schema() {
		if spec.Group != current {
			current = spec.Group
			fmt.Fprintln(r.out, headingStyle.Render(string(current)))
		}
		fmt.Fprintf(r.out, "%s: %s\n", spec.Key, cfg.Value(spec.Key))
	}
}

// Completed emits the timestamped end marker. It runs for every
// completed invocation, successful or not.
func (r *Reporter) Completed(result *invoker.Result) {
	switch result.Failure {
	case invoker.FailureTimeout:
		r.logger.Error("Ended", "status", "timeout")
	case invoker.FailureCancelled:
		r.logger.Error("Ended", "status", "cancelled")
	case invoker.FailureLaunch:
		r.logger.Error("Ended", "status", "launch failed")
	default:
		r.logger.Info("Ended", "exit_code", result.ExitCode)
	}
}

// Debugf logs a debug-level message.
func (r *Reporter) Debugf(format string, args ...any) {
	r.logger.Debugf(format, args...)
}
