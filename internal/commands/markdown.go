// SPDX-License-Identifier: MPL-2.0

package commands

import (
	"os"
	"strconv"

	"github.com/cmdseq/cmdseq/internal/registry"
	"github.com/cmdseq/cmdseq/pkg/types"

	"github.com/charmbracelet/glamour"
)

const (
	// DefaultMarkdownStyle picks a dark or light style from the terminal
	// background.
	DefaultMarkdownStyle = "auto"
	// DefaultMarkdownWidth is the word-wrap width of rendered Markdown.
	DefaultMarkdownWidth = 80
)

// Markdown renders the Markdown file named by -file for the terminal.
// -style selects a glamour style (auto, dark, light, notty, ascii, ...) and
// -width the wrap width.
type Markdown struct{}

func (m *Markdown) Aliases() []string       { return []string{"markdown", "md"} }
func (m *Markdown) MandatoryArgs() []string { return []string{"file"} }
func (m *Markdown) Description() string     { return "Render the Markdown -file for the terminal" }

// Execute implements registry.Command.
func (m *Markdown) Execute(c *registry.Context) types.ExitCode {
	path := value(c, "file")

	data, err := os.ReadFile(path)
	if err != nil {
		return fail(c, "markdown", types.ExitUsage, "%v", err)
	}

	width := DefaultMarkdownWidth
	if w, ok := c.CasedArgs.Lookup("width"); ok {
		n, err := strconv.Atoi(w)
		if err != nil || n <= 0 {
			return fail(c, "markdown", types.ExitUsage, "invalid -width %q", w)
		}
		width = n
	}

	style, _ := c.CasedArgs.Lookup("style")
	if style == "" {
		style = DefaultMarkdownStyle
	}

	styleOpt := glamour.WithStandardStyle(style)
	if style == DefaultMarkdownStyle {
		styleOpt = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return fail(c, "markdown", types.ExitUsage, "failed to create renderer: %v", err)
	}

	out, err := renderer.RenderBytes(data)
	if err != nil {
		return fail(c, "markdown", types.ExitUsage, "failed to render %s: %v", path, err)
	}
	if _, err := c.Stdout.Write(out); err != nil {
		c.Logger.Debug("write failed", "error", err)
		return types.ExitUsage
	}
	return types.ExitSuccess
}
