package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/cfgsplit/pkg/config"
	"github.com/arthur-debert/cfgsplit/pkg/environment"
	"github.com/arthur-debert/cfgsplit/pkg/split"
)

// ExplainMarkdown describes how r was resolved.
func ExplainMarkdown(r *config.Resolved) string {
	var b strings.Builder

	b.WriteString("# Configuration splits\n\n")
	b.WriteString("Each environment enables at most one split. Splits already enabled by ")
	b.WriteString("settings stay enabled; an environment never disables a split.\n\n")

	b.WriteString("| Environment | Split |\n|---|---|\n")
	for _, env := range environment.Known() {
		id, ok := split.Name(env)
		if !ok {
			id = "_none_"
		} else {
			id = "`" + id + "`"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", env, id)
	}

	fmt.Fprintf(&b, "\n## This run\n\n- Environment: `%s`\n", r.Environment)
	if id, ok := split.Name(r.Environment); ok {
		fmt.Fprintf(&b, "- Enabled by environment: `%s`\n", id)
	} else {
		b.WriteString("- Enabled by environment: _none_\n")
	}
	if len(r.Applied) == 0 {
		b.WriteString("- Applied splits: _none_\n")
	} else {
		b.WriteString("- Applied splits, in merge order:\n")
		for _, id := range r.Applied {
			fmt.Fprintf(&b, "  - `%s` (weight %d)\n", id, r.Flags[id].Weight)
		}
	}
	b.WriteString("- Settings layers, lowest precedence first:\n")
	for _, source := range r.Sources {
		fmt.Fprintf(&b, "  - %s\n", source)
	}

	return b.String()
}

// MarkdownRenderer renders markdown through glamour in terminal mode.
type MarkdownRenderer struct {
	Style string // "auto", "dark", "light", "notty" or a style file path
	Width int    // 0 keeps glamour's default
}

// NewMarkdownRenderer creates a renderer with auto-detected style.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// Render returns content unchanged unless f is FormatTerminal. Glamour
// failures fall back to the raw markdown.
func (r *MarkdownRenderer) Render(content string, f Format) string {
	if f != FormatTerminal {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// RenderExplain writes ExplainMarkdown(r) to w.
func RenderExplain(w io.Writer, r *config.Resolved, f Format) error {
	f = Resolve(f, w)
	if f == FormatJSON || f == FormatTOML || f == FormatYAML {
		return encode(w, BuildSplitsReport(r), f)
	}
	_, err := io.WriteString(w, NewMarkdownRenderer().Render(ExplainMarkdown(r), f))
	return wrapWrite(err)
}
