// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default primer sequences seeded into starter profiles. These target
// the 16S rRNA V4-V5 region and match the sequences the pipeline tools
// were tuned for.
const (
	DefaultForwardPrimer = "ATTAGAWACCCVNGTAGTCC"
	DefaultReversePrimer = "TTACCGCGGCKGCTGGCAC"
)

// DefaultProfilePath returns the user-level profile file path, e.g.
// ~/.config/cluster16s/profile.cue on Linux.
func DefaultProfilePath() (string, error) {
	dir, err := ProfileDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ProfileFileName+"."+ProfileFileExt), nil
}

// WriteStarterProfile writes a commented starter profile to path,
// creating parent directories as needed. It refuses to overwrite an
// existing file.
func WriteStarterProfile(path string) error {
	if fileExists(path) {
		return fmt.Errorf("profile file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(GenerateProfileCUE()), 0o644); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}
	return nil
}

// GenerateProfileCUE returns the starter profile contents: every key
// listed, paths commented out (they are machine-specific), parameters
// seeded with workable defaults.
func GenerateProfileCUE() string {
	return `// cluster16s profile.
//
// Values here pre-seed configuration keys; ` + EnvPrefix + `_* environment
// variables always take precedence. Uncomment and adjust the path keys
// for your machine.

// input_dir:  "/data/16S/run1"
// chimera_db: "/data/16S/pr2/pr2_gb203_version_4.5.fasta"

// forward_adapter_3p: "/data/16S/adapters/fwd_3p.fasta"
// reverse_adapter_3p: "/data/16S/adapters/rev_3p.fasta"
// forward_adapter_5p: "/data/16S/adapters/fwd_5p.fasta"
// reverse_adapter_5p: "/data/16S/adapters/rev_5p.fasta"

core_count:                  1
cutadapt_min_length:         100
pear_min_overlap:            10
pear_max_assembly_length:    0
pear_min_assembly_length:    0
vsearch_filter_maxee:        1.0
vsearch_filter_trunclen:     0
vsearch_derep_minuniquesize: 2

forward_primer_3p: "` + DefaultForwardPrimer + `"
reverse_primer_3p: "` + DefaultReversePrimer + `"
forward_primer_5p: "` + DefaultForwardPrimer + `"
reverse_primer_5p: "` + DefaultReversePrimer + `"

multiple_runs: "false"
paired_ends:   "true"
steps:         "all"
debug:         "false"
`
}
