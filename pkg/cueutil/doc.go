// SPDX-License-Identifier: MPL-2.0

// Package cueutil wraps the CUE evaluation flow used for profile files:
// compile an embedded schema, unify it with user data, validate, and
// decode, with error messages that carry file and JSON-path context.
package cueutil
