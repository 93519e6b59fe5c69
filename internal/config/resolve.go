// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"fmt"
	"os"
)

// Value sources, in precedence order.
const (
	SourceEnvironment Source = "environment"
	SourceProfile     Source = "profile"
	SourceUnset       Source = "unset"
)

type (
	// Source names where a key's value came from.
	Source string

	// ResolvedValue pairs a key spec with its current text and origin.
	ResolvedValue struct {
		Spec   KeySpec
		Value  string
		Source Source
	}

	// Resolution is the per-key view of the merged configuration, used by
	// inspection commands. Unlike Load it never fails on missing or
	// malformed values; every key is reported as-is.
	Resolution struct {
		Values []ResolvedValue
		// ProfilePath is the profile file that contributed values, or ""
		// when none was found.
		ProfilePath string
	}
)

// resolveWithOptions builds the per-key resolution without validating.
func resolveWithOptions(ctx context.Context, opts LoadOptions) (*Resolution, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("resolve config canceled: %w", ctx.Err())
	default:
	}

	v, profilePath, err := buildViper(opts)
	if err != nil {
		return nil, err
	}

	res := &Resolution{
		Values:      make([]ResolvedValue, 0, len(schema)),
		ProfilePath: profilePath,
	}
	for _, spec := range schema {
		rv := ResolvedValue{Spec: spec, Source: SourceUnset}
		if env, ok := os.LookupEnv(spec.EnvVar()); ok && env != "" {
			rv.Value = env
			rv.Source = SourceEnvironment
		} else if v.IsSet(string(spec.Key)) {
			rv.Value = v.GetString(string(spec.Key))
			rv.Source = SourceProfile
		}
		res.Values = append(res.Values, rv)
	}

	return res, nil
}
