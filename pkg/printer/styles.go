package printer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	sectionColor = lipgloss.Color("#7D56F4")
	keyColor     = lipgloss.Color("#00D7FF")
	flagColor    = lipgloss.Color("#666666")
	parentColor  = lipgloss.Color("#FFA500")
)

type renderFunc func(strs ...string) string

func plain(strs ...string) string { return strings.Join(strs, " ") }

// styles renders parts of the text output.
type styles struct {
	section renderFunc
	key     renderFunc
	flags   renderFunc
	parent  renderFunc
}

func newStyles(color bool) styles {
	if !color {
		return styles{section: plain, key: plain, flags: plain, parent: plain}
	}
	return styles{
		section: lipgloss.NewStyle().Bold(true).Foreground(sectionColor).Render,
		key:     lipgloss.NewStyle().Foreground(keyColor).Render,
		flags:   lipgloss.NewStyle().Foreground(flagColor).Italic(true).Render,
		parent:  lipgloss.NewStyle().Foreground(parentColor).Render,
	}
}
