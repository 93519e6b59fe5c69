// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	MissingConfigId Id = iota + 1
	InvalidConfigId
	ProfileParseErrorId
	PipelineScriptNotFoundId
	DownstreamFailedId
	RunTimedOutId
	RunInterruptedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	missingConfigIssue = &Issue{
		id: MissingConfigId,
		mdMsg: `
# Configuration is incomplete!

One or more required configuration values are not set. Every value must
come from a C16S_* environment variable or from a profile file; nothing
is defaulted or skipped.

## Things you can try:
- List every key, its environment variable and its current value:
~~~
$ cluster16s config show
~~~

- See the full environment variable reference:
~~~
$ cluster16s env
~~~

- Create a starter profile so parameters do not have to live in the
  environment:
~~~
$ cluster16s config init
~~~

Note that an environment variable set to an empty string counts as
unset.`,
	}

	invalidConfigIssue = &Issue{
		id: InvalidConfigId,
		mdMsg: `
# Configuration has invalid values!

One or more configuration values failed validation. The error message
above names every offending variable and why it was rejected.

## Common issues:
- A path that does not exist, or a directory where a file is expected
- A count that is not a whole number, or below its minimum
- A primer containing characters outside the IUPAC nucleotide codes
- A flag that is not one of true/false, yes/no, 1/0
- A steps value that is neither "all" nor a comma-separated list

## Things you can try:
- Check each reported variable:
~~~
$ cluster16s config show
~~~

- Validate without running anything:
~~~
$ cluster16s validate
~~~`,
	}

	profileParseErrorIssue = &Issue{
		id: ProfileParseErrorId,
		mdMsg: `
# Failed to parse the profile file!

Your profile file contains syntax errors or fields that are not
configuration keys.

## Things you can try:
- Check the error message above for the specific line/column
- Compare against a fresh starter profile:
~~~
$ cluster16s config init
~~~

## Example of a valid profile:
~~~cue
core_count:        4
forward_primer_3p: "ATTAGAWACCCVNGTAGTCC"
paired_ends:       "true"
steps:             "all"
~~~`,
	}

	pipelineScriptNotFoundIssue = &Issue{
		id: PipelineScriptNotFoundId,
		mdMsg: `
# Pipeline script not found!

The downstream pipeline script could not be launched.

## Things you can try:
- Check the script path (default ./run.sh, override with --script)
- Check the script is executable:
~~~
$ chmod +x ./run.sh
~~~

- Preview the exact command line without running it:
~~~
$ cluster16s run --dry-run
~~~`,
	}

	downstreamFailedIssue = &Issue{
		id: DownstreamFailedId,
		mdMsg: `
# The pipeline reported a failure!

The pipeline script ran and exited with a nonzero status. The exit code
is the script's own and is passed through unchanged; it is not a
launcher error.

## Things you can try:
- Read the pipeline's log output above for the failing step
- Re-run with downstream debugging enabled:
~~~
$ C16S_DEBUG=true cluster16s run
~~~

- Run a single step at a time:
~~~
$ C16S_STEPS=qc cluster16s run
~~~`,
	}

	runTimedOutIssue = &Issue{
		id: RunTimedOutId,
		mdMsg: `
# The run timed out!

The pipeline exceeded the --timeout deadline and was terminated.

## Things you can try:
- Raise or drop the timeout:
~~~
$ cluster16s run --timeout 12h
~~~

- Run fewer steps per invocation:
~~~
$ C16S_STEPS=qc,merge cluster16s run
~~~

- Raise the core count if the machine has idle CPUs`,
	}

	runInterruptedIssue = &Issue{
		id: RunInterruptedId,
		mdMsg: `
# The run was interrupted!

The launcher received an interrupt and terminated the pipeline script.
Partial outputs from the interrupted step may be left behind in the
work directory.

## Things you can try:
- Remove partial outputs before re-running the interrupted step
- Re-run only the remaining steps:
~~~
$ C16S_STEPS=cluster cluster16s run
~~~`,
	}

	issues = map[Id]*Issue{
		missingConfigIssue.Id():          missingConfigIssue,
		invalidConfigIssue.Id():          invalidConfigIssue,
		profileParseErrorIssue.Id():      profileParseErrorIssue,
		pipelineScriptNotFoundIssue.Id(): pipelineScriptNotFoundIssue,
		downstreamFailedIssue.Id():       downstreamFailedIssue,
		runTimedOutIssue.Id():            runTimedOutIssue,
		runInterruptedIssue.Id():         runInterruptedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
