package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/pulse/internal/models"
)

var styles = NewPalette(Colors{
	Title:  "#E0457B",
	OK:     "#04B575",
	Err:    "#FF5F5F",
	Warn:   "#FFA500",
	Help:   "#7A7A7A",
	Accent: "#7D56F4",
})

// Colors holds the hex colors a [Palette] is built from.
type Colors struct {
	Title, OK, Err, Warn, Help, Accent string
}

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title  lipgloss.Style
	ok     lipgloss.Style
	err    lipgloss.Style
	warn   lipgloss.Style
	help   lipgloss.Style
	accent lipgloss.Style
}

func NewPalette(c Colors) *Palette {
	return &Palette{
		title:  NewBold(c.Title).MarginBottom(1),
		ok:     NewBold(c.OK),
		err:    NewBold(c.Err),
		warn:   NewStyle(c.Warn),
		help:   NewEm(c.Help),
		accent: NewBold(c.Accent),
	}
}

// Mood renders the dominant emotion of a as a highlighted one-liner, or "" when there is none.
func (p *Palette) Mood(a *models.Analysis) string {
	if a == nil {
		return ""
	}
	top, ok := a.Top()
	if !ok {
		return ""
	}
	return fmt.Sprintf("Mood: %s %s", p.accent.Render(top.Label), p.help.Render(fmt.Sprintf("(%.0f%%)", top.Score*100)))
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
