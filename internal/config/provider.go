// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ProfilePath forces loading a specific profile file when set.
	ProfilePath string
	// ProfileDirPath overrides the user-level profile directory lookup
	// when set.
	ProfileDirPath string
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*PipelineConfig, error)
	Resolve(ctx context.Context, opts LoadOptions) (*Resolution, error)
}

type envProvider struct{}

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &envProvider{}
}

// Load reads and validates the full configuration.
func (p *envProvider) Load(ctx context.Context, opts LoadOptions) (*PipelineConfig, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Resolve reports where every key's value would come from without
// requiring the configuration to be complete or valid.
func (p *envProvider) Resolve(ctx context.Context, opts LoadOptions) (*Resolution, error) {
	return resolveWithOptions(ctx, opts)
}
