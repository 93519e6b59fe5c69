// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"cluster16s-cli/pkg/cueutil"
	"cluster16s-cli/pkg/types"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the profile directory.
	AppName = "cluster16s"
	// ProfileFileName is the name of the profile file (without extension).
	ProfileFileName = "profile"
	// ProfileFileExt is the profile file extension.
	ProfileFileExt = "cue"
	// LocalProfileName is the profile file looked up in the working
	// directory before the user-level profile.
	LocalProfileName = "cluster16s.cue"
)

//go:embed profile_schema.cue
var profileSchema string

// PipelineConfig is the validated launcher configuration: one typed field
// per schema key. It is constructed once at startup and immutable
// afterwards; the verbatim source text of every value is retained so the
// downstream argument vector forwards exactly what the caller supplied.
type PipelineConfig struct {
	InputDir  types.FilesystemPath
	ChimeraDB types.FilesystemPath

	ForwardAdapter3P types.FilesystemPath
	ReverseAdapter3P types.FilesystemPath
	ForwardAdapter5P types.FilesystemPath
	ReverseAdapter5P types.FilesystemPath

	CoreCount                 int
	CutadaptMinLength         int
	PearMinOverlap            int
	PearMaxAssemblyLength     int
	PearMinAssemblyLength     int
	VsearchFilterMaxEE        float64
	VsearchFilterTruncLen     int
	VsearchDerepMinUniqueSize int

	ForwardPrimer3P PrimerSequence
	ReversePrimer3P PrimerSequence
	ForwardPrimer5P PrimerSequence
	ReversePrimer5P PrimerSequence

	MultipleRuns FlagValue
	PairedEnds   FlagValue
	Steps        StepSelector
	Debug        FlagValue

	raw map[Key]string
}

// Value returns the verbatim text of a key as it was supplied by the
// caller. This is what gets forwarded downstream.
func (c *PipelineConfig) Value(key Key) string { return c.raw[key] }

// ProfileDir returns the user-level directory for the profile file,
// e.g. ~/.config/cluster16s on Linux.
func ProfileDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// loadWithOptions performs option-driven config loading. It returns the
// validated config and the resolved profile path ("" when no profile was
// found). Callers that only need the config should use Provider.Load.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*PipelineConfig, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v, profilePath, err := buildViper(opts)
	if err != nil {
		return nil, "", err
	}

	cfg := &PipelineConfig{raw: make(map[Key]string, len(schema))}

	var missing []Key
	var fieldErrs []error
	for _, spec := range schema {
		if !v.IsSet(string(spec.Key)) {
			missing = append(missing, spec.Key)
			continue
		}
		raw := v.GetString(string(spec.Key))
		cfg.raw[spec.Key] = raw
		if err := cfg.assign(spec, raw); err != nil {
			fieldErrs = append(fieldErrs, &FieldError{Key: spec.Key, Cause: err})
		}
	}

	switch {
	case len(missing) > 0 && len(fieldErrs) > 0:
		return nil, "", errors.Join(
			&MissingConfigError{Keys: missing},
			&InvalidConfigError{FieldErrors: fieldErrs},
		)
	case len(missing) > 0:
		return nil, "", &MissingConfigError{Keys: missing}
	case len(fieldErrs) > 0:
		return nil, "", &InvalidConfigError{FieldErrors: fieldErrs}
	}

	return cfg, profilePath, nil
}

// buildViper constructs a viper instance with every schema key bound to
// its C16S_ environment variable and the resolved profile file (if any)
// merged beneath the environment.
func buildViper(opts LoadOptions) (*viper.Viper, string, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	for _, spec := range schema {
		// Binding without an explicit name maps the key to
		// C16S_<UPPERCASED_KEY>; empty environment values count as unset.
		if err := v.BindEnv(string(spec.Key)); err != nil {
			return nil, "", fmt.Errorf("failed to bind %s: %w", spec.EnvVar(), err)
		}
	}

	profilePath, err := resolveProfilePath(opts)
	if err != nil {
		return nil, "", err
	}
	if profilePath != "" {
		if err := loadProfileIntoViper(v, profilePath); err != nil {
			return nil, "", err
		}
	}

	return v, profilePath, nil
}

// resolveProfilePath picks the profile file to load: the explicit option
// first, then ./cluster16s.cue, then the user-level profile. No profile
// at all is fine; the environment can carry the full configuration.
func resolveProfilePath(opts LoadOptions) (string, error) {
	if opts.ProfilePath != "" {
		if !fileExists(string(opts.ProfilePath)) {
			return "", fmt.Errorf("profile file not found: %s", opts.ProfilePath)
		}
		return string(opts.ProfilePath), nil
	}

	if fileExists(LocalProfileName) {
		return LocalProfileName, nil
	}

	dir, err := profileDirWithOverride(opts.ProfileDirPath)
	if err != nil {
		// No resolvable user config directory; env-only operation.
		return "", nil
	}
	userProfile := filepath.Join(dir, ProfileFileName+"."+ProfileFileExt)
	if fileExists(userProfile) {
		return userProfile, nil
	}

	return "", nil
}

// profileDirWithOverride resolves the profile directory, honoring
// explicit provider options before the platform default.
func profileDirWithOverride(dirPath string) (string, error) {
	if dirPath != "" {
		return dirPath, nil
	}
	return ProfileDir()
}

// loadProfileIntoViper parses a CUE profile file, validates it against
// the embedded #Profile schema, and merges its contents into viper.
func loadProfileIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	values, err := cueutil.ParseAndDecode[map[string]any](
		[]byte(profileSchema), data, "#Profile", cueutil.WithFilename(path))
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(*values); err != nil {
		return fmt.Errorf("failed to merge profile: %w", err)
	}
	return nil
}

// assign validates raw against the spec's kind and stores the typed value.
func (c *PipelineConfig) assign(spec KeySpec, raw string) error {
	switch spec.Kind {
	case KindDirectory, KindFile:
		if isValid, errs := types.FilesystemPath(raw).IsValid(); !isValid {
			return errs[0]
		}
		if err := statPath(spec.Kind, raw); err != nil {
			return err
		}
		c.setPath(spec.Key, types.FilesystemPath(raw))
	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", raw)
		}
		if n < spec.Min {
			return fmt.Errorf("must be at least %d, got %d", spec.Min, n)
		}
		c.setInt(spec.Key, n)
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("expected a number, got %q", raw)
		}
		if f <= 0 {
			return fmt.Errorf("must be greater than 0, got %s", raw)
		}
		c.VsearchFilterMaxEE = f
	case KindPrimer:
		p := PrimerSequence(raw)
		if isValid, errs := p.IsValid(); !isValid {
			return errs[0]
		}
		c.setPrimer(spec.Key, p)
	case KindFlag:
		f := FlagValue(raw)
		if isValid, errs := f.IsValid(); !isValid {
			return errs[0]
		}
		c.setFlag(spec.Key, f)
	case KindSelector:
		s := StepSelector(raw)
		if isValid, errs := s.IsValid(); !isValid {
			return errs[0]
		}
		c.Steps = s
	}
	return nil
}

// statPath checks filesystem existence preconditions for path-kind keys.
func statPath(kind Kind, raw string) error {
	info, err := os.Stat(raw)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("path %q does not exist", raw)
	}
	if err != nil {
		return fmt.Errorf("cannot stat %q: %w", raw, err)
	}
	if kind == KindDirectory && !info.IsDir() {
		return fmt.Errorf("%q is not a directory", raw)
	}
	if kind == KindFile && info.IsDir() {
		return fmt.Errorf("%q is a directory, want a file", raw)
	}
	return nil
}

func (c *PipelineConfig) setPath(key Key, p types.FilesystemPath) {
	switch key {
	case KeyInputDir:
		c.InputDir = p
	case KeyChimeraDB:
		c.ChimeraDB = p
	case KeyForwardAdapter3P:
		c.ForwardAdapter3P = p
	case KeyReverseAdapter3P:
		c.ReverseAdapter3P = p
	case KeyForwardAdapter5P:
		c.ForwardAdapter5P = p
	case KeyReverseAdapter5P:
		c.ReverseAdapter5P = p
	}
}

func (c *PipelineConfig) setInt(key Key, n int) {
	switch key {
	case KeyCoreCount:
		c.CoreCount = n
	case KeyCutadaptMinLength:
		c.CutadaptMinLength = n
	case KeyPearMinOverlap:
		c.PearMinOverlap = n
	case KeyPearMaxAssemblyLength:
		c.PearMaxAssemblyLength = n
	case KeyPearMinAssemblyLength:
		c.PearMinAssemblyLength = n
	case KeyVsearchFilterTruncLen:
		c.VsearchFilterTruncLen = n
	case KeyVsearchDerepMinUniqueSize:
		c.VsearchDerepMinUniqueSize = n
	}
}

func (c *PipelineConfig) setPrimer(key Key, p PrimerSequence) {
	switch key {
	case KeyForwardPrimer3P:
		c.ForwardPrimer3P = p
	case KeyReversePrimer3P:
		c.ReversePrimer3P = p
	case KeyForwardPrimer5P:
		c.ForwardPrimer5P = p
	case KeyReversePrimer5P:
		c.ReversePrimer5P = p
	}
}

func (c *PipelineConfig) setFlag(key Key, f FlagValue) {
	switch key {
	case KeyMultipleRuns:
		c.MultipleRuns = f
	case KeyPairedEnds:
		c.PairedEnds = f
	case KeyDebug:
		c.Debug = f
	}
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
