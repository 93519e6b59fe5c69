// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines error types that include remediation steps and
// Markdown-formatted help for every way a pipeline run can fail before
// or during invocation: incomplete configuration, malformed values, a
// missing pipeline script, a broken profile file.
package issue
