// SPDX-License-Identifier: MPL-2.0

// Package invoker launches the downstream pipeline script with the
// validated configuration as a fixed-order positional argument vector.
//
// The launcher never interprets the values it forwards: arguments are
// passed directly to the child process without shell involvement, and
// the child's exit code is propagated unchanged. Launcher-level failures
// (script not found, timeout, cancellation) use reserved exit codes so
// callers can tell them apart from downstream failures.
package invoker
