// SPDX-License-Identifier: MPL-2.0

package config

import (
	"slices"
	"strings"
)

// EnvPrefix is the prefix shared by all configuration environment variables.
const EnvPrefix = "C16S"

// Configuration keys, in downstream argument order. The order of this
// block is documentation only; the wire contract lives in schema below.
const (
	KeyInputDir  Key = "input_dir"
	KeyChimeraDB Key = "chimera_db"

	KeyForwardAdapter3P Key = "forward_adapter_3p"
	KeyReverseAdapter3P Key = "reverse_adapter_3p"
	KeyForwardAdapter5P Key = "forward_adapter_5p"
	KeyReverseAdapter5P Key = "reverse_adapter_5p"

	KeyCoreCount                 Key = "core_count"
	KeyCutadaptMinLength         Key = "cutadapt_min_length"
	KeyPearMinOverlap            Key = "pear_min_overlap"
	KeyPearMaxAssemblyLength     Key = "pear_max_assembly_length"
	KeyPearMinAssemblyLength     Key = "pear_min_assembly_length"
	KeyVsearchFilterMaxEE        Key = "vsearch_filter_maxee"
	KeyVsearchFilterTruncLen     Key = "vsearch_filter_trunclen"
	KeyVsearchDerepMinUniqueSize Key = "vsearch_derep_minuniquesize"

	KeyForwardPrimer3P Key = "forward_primer_3p"
	KeyReversePrimer3P Key = "reverse_primer_3p"
	KeyForwardPrimer5P Key = "forward_primer_5p"
	KeyReversePrimer5P Key = "reverse_primer_5p"

	KeyMultipleRuns Key = "multiple_runs"
	KeyPairedEnds   Key = "paired_ends"
	KeySteps        Key = "steps"
	KeyDebug        Key = "debug"
)

// Value kinds determine shape validation for a key.
const (
	KindDirectory Kind = iota // existing directory
	KindFile                  // existing regular file
	KindInt                   // integer with a per-key minimum
	KindFloat                 // positive decimal number
	KindPrimer                // IUPAC nucleotide sequence
	KindFlag                  // boolean-like text (true/false/yes/no/1/0)
	KindSelector              // step selector ("all" or comma-separated tokens)
)

// Key groups, in dump order.
const (
	GroupInputs     Group = "Inputs"
	GroupParameters Group = "Parameters"
)

type (
	// Key identifies one configuration value. Keys are fixed at compile
	// time; their position in the schema is the downstream wire contract.
	Key string

	// Kind is the shape a key's value must have.
	Kind int

	// Group is the heading a key is listed under in the config dump.
	Group string

	// KeySpec describes one configuration key.
	KeySpec struct {
		Key   Key
		Kind  Kind
		Group Group
		// Min is the inclusive minimum for KindInt values.
		Min int
		// Help is a one-line description used by the env reference.
		Help string
	}
)

// schema is the single source of truth for the downstream invocation:
// the 22 keys in the exact positional order the pipeline script expects.
// Reordering entries changes the wire contract.
var schema = []KeySpec{
	{Key: KeyInputDir, Kind: KindDirectory, Group: GroupInputs, Help: "directory containing the raw fastq input files"},
	{Key: KeyChimeraDB, Kind: KindFile, Group: GroupInputs, Help: "reference database for vsearch --uchime_ref"},
	{Key: KeyForwardAdapter3P, Kind: KindFile, Group: GroupInputs, Help: "forward 3' adapter file for cutadapt"},
	{Key: KeyReverseAdapter3P, Kind: KindFile, Group: GroupInputs, Help: "reverse 3' adapter file for cutadapt"},
	{Key: KeyForwardAdapter5P, Kind: KindFile, Group: GroupInputs, Help: "forward 5' adapter file for cutadapt"},
	{Key: KeyReverseAdapter5P, Kind: KindFile, Group: GroupInputs, Help: "reverse 5' adapter file for cutadapt"},
	{Key: KeyCoreCount, Kind: KindInt, Group: GroupParameters, Min: 1, Help: "number of cores passed to the pipeline tools"},
	{Key: KeyCutadaptMinLength, Kind: KindInt, Group: GroupParameters, Min: 1, Help: "minimum read length kept after trimming (cutadapt -m)"},
	{Key: KeyPearMinOverlap, Kind: KindInt, Group: GroupParameters, Min: 1, Help: "minimum assembly overlap (pear --min-overlap)"},
	{Key: KeyPearMaxAssemblyLength, Kind: KindInt, Group: GroupParameters, Min: 0, Help: "maximum assembly length (pear --max-assembly-length, 0 disables)"},
	{Key: KeyPearMinAssemblyLength, Kind: KindInt, Group: GroupParameters, Min: 0, Help: "minimum assembly length (pear --min-assembly-length, 0 disables)"},
	{Key: KeyVsearchFilterMaxEE, Kind: KindFloat, Group: GroupParameters, Help: "maximum expected errors (vsearch --fastq_maxee)"},
	{Key: KeyVsearchFilterTruncLen, Kind: KindInt, Group: GroupParameters, Min: 0, Help: "truncation length (vsearch --fastq_trunclen, 0 disables)"},
	{Key: KeyVsearchDerepMinUniqueSize, Kind: KindInt, Group: GroupParameters, Min: 1, Help: "minimum unique size kept by dereplication (vsearch --minuniquesize)"},
	{Key: KeyForwardPrimer3P, Kind: KindPrimer, Group: GroupParameters, Help: "forward 3' primer sequence to clip"},
	{Key: KeyReversePrimer3P, Kind: KindPrimer, Group: GroupParameters, Help: "reverse 3' primer sequence to clip"},
	{Key: KeyForwardPrimer5P, Kind: KindPrimer, Group: GroupParameters, Help: "forward 5' primer sequence to clip"},
	{Key: KeyReversePrimer5P, Kind: KindPrimer, Group: GroupParameters, Help: "reverse 5' primer sequence to clip"},
	{Key: KeyMultipleRuns, Kind: KindFlag, Group: GroupParameters, Help: "whether the input directory holds multiple sequencing runs"},
	{Key: KeyPairedEnds, Kind: KindFlag, Group: GroupParameters, Help: "whether reads are paired-end"},
	{Key: KeySteps, Kind: KindSelector, Group: GroupParameters, Help: "pipeline steps to execute (\"all\" or a comma-separated list)"},
	{Key: KeyDebug, Kind: KindFlag, Group: GroupParameters, Help: "enable downstream debug output"},
}

// Schema returns the ordered key specs. The returned slice is a copy;
// callers cannot mutate the wire contract.
func Schema() []KeySpec {
	return slices.Clone(schema)
}

// EnvVarFor returns the environment variable name for a key, e.g.
// "C16S_INPUT_DIR" for KeyInputDir. Names are stable: they are part of
// the launcher's documented interface.
func EnvVarFor(key Key) string {
	return EnvPrefix + "_" + strings.ToUpper(string(key))
}

// EnvVar returns the environment variable name for the spec's key.
func (s KeySpec) EnvVar() string { return EnvVarFor(s.Key) }
