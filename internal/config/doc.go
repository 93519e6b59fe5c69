// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the launcher's configuration.
//
// The pipeline takes a fixed set of 22 named values. Each value is read
// from a C16S_-prefixed environment variable, optionally pre-seeded from a
// CUE profile file (the environment always wins). The key set, its order,
// and its grouping are defined once in Schema() and shared by the argument
// builder, the config dump, and the env-var reference.
//
// Loading is strict: every key is required, all missing keys are collected
// into a single MissingConfigError and all shape failures into a single
// InvalidConfigError before the load fails. A silently empty value can
// never reach the downstream argument vector.
package config
