// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

const (
	ConfigLoadFailedId Id = iota + 1
	UnknownCommandId
	NoCommandsId
	UnexpectedTokenId
	MissingArgumentId
	CommandFailedId
	EnvFileNotFoundId
)

type (
	// Id identifies an entry in the issue catalog.
	Id int

	// MarkdownMsg is guidance text rendered with glamour.
	MarkdownMsg string

	// Issue is a catalog entry with Markdown guidance for one failure class.
	Issue struct {
		id    Id
		mdMsg MarkdownMsg
		// seeAlso lists cmdseq invocations that help diagnose the issue.
		seeAlso []string
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) SeeAlso() []string {
	return slices.Clone(i.seeAlso)
}

// Markdown returns the full Markdown document including the see-also list.
func (i *Issue) Markdown() string {
	var sb strings.Builder
	sb.WriteString(string(i.mdMsg))
	if len(i.seeAlso) > 0 {
		sb.WriteString("\n\n## See also\n")
		for _, s := range i.seeAlso {
			sb.WriteString("- `")
			sb.WriteString(s)
			sb.WriteString("`\n")
		}
	}
	return sb.String()
}

// Render renders the issue for the terminal. stylePath is a glamour style
// name ("dark", "light", "notty", "ascii") or a JSON style file.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

cmdseq reads ` + "`config.cue`" + ` from its config directory and from the
current directory, then applies ` + "`CMDSEQ_*`" + ` environment overrides.

## Things you can try:
- Print the effective configuration and compare it with your file
- Recreate a default file and merge your changes back in
- Check environment overrides such as ` + "`CMDSEQ_DISPATCH_USAGE_EXIT_CODE`",
		seeAlso: []string{"cmdseq config show", "cmdseq config init", "cmdseq config path"},
	}

	unknownCommandIssue = &Issue{
		id: UnknownCommandId,
		mdMsg: `
# Unknown command!

Every ` + "`--name`" + ` token must match a registered alias or a configured
alias. Names are matched case-insensitively.

## Things you can try:
- Check the suggestions printed next to the command name
- List every alias with its required arguments`,
		seeAlso: []string{"cmdseq list"},
	}

	noCommandsIssue = &Issue{
		id: NoCommandsId,
		mdMsg: `
# No commands given!

Arguments were parsed but no command marker was found, so nothing ran.

## Example:
~~~
$ cmdseq run --echo -msg hello --printvar -key HOME
~~~`,
		seeAlso: []string{"cmdseq list"},
	}

	unexpectedTokenIssue = &Issue{
		id: UnexpectedTokenId,
		mdMsg: `
# Unexpected value!

A value appeared before any ` + "`--command`" + ` or ` + "`-flag`" + ` marker.
Values always belong to the marker that precedes them.

## Things you can try:
- Put a flag before the value: ` + "`-msg hello`" + `
- Quote values that contain spaces`,
	}

	missingArgumentIssue = &Issue{
		id: MissingArgumentId,
		mdMsg: `
# Missing argument!

A command requires an argument that was neither passed as a flag nor found
in the environment. Environment names are matched case-insensitively and
dotenv files from ` + "`dispatch.env_files`" + ` are consulted last.

## Things you can try:
- Pass the flag explicitly: ` + "`-key value`" + `
- Export it: ` + "`export KEY=value`",
		seeAlso: []string{"cmdseq list", "cmdseq config show"},
	}

	commandFailedIssue = &Issue{
		id: CommandFailedId,
		mdMsg: `
# Command failed!

A command returned a non-zero exit code. Commands after it were not run and
cmdseq exits with the same code.`,
	}

	envFileNotFoundIssue = &Issue{
		id: EnvFileNotFoundId,
		mdMsg: `
# Env file not found!

A file listed in ` + "`dispatch.env_files`" + ` does not exist.

## Things you can try:
- Fix the path; relative paths resolve against the working directory
- Append ` + "`?`" + ` to make the file optional: ` + "`\".env.local?\"`",
		seeAlso: []string{"cmdseq config show"},
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		unknownCommandIssue.Id():   unknownCommandIssue,
		noCommandsIssue.Id():       noCommandsIssue,
		unexpectedTokenIssue.Id():  unexpectedTokenIssue,
		missingArgumentIssue.Id():  missingArgumentIssue,
		commandFailedIssue.Id():    commandFailedIssue,
		envFileNotFoundIssue.Id():  envFileNotFoundIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := maps.Values(issues)
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

// Get returns the entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
